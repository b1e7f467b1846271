// Package dinopet loads hierarchical sprite creatures from a directory
// naming convention and composites them onto RGBA pixel buffers.
//
// A creature is built from named parts (tail, body, legs, arms, head), each
// part optionally having appearance variants and animation frame sequences.
// The filesystem layout is the wire format:
//
//	dino.png                  single default part
//	legs_01.png, legs_02.png  two-frame default animation for "legs"
//	head_happy.png            "happy" variant of "head"
//	legs/blue_01.png          "blue" variant of "legs", declared by directory
//
// # Quick start
//
// Load an asset tree and render it onto a canvas:
//
//	tree, err := dinopet.Load("assets/rex")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	canvas := dinopet.NewCanvas(600, 400)
//	sel := dinopet.NewSelection()
//	dinopet.Render(canvas, tree, 300, 200, sel, false, 1.0)
//
// The canvas is a plain straight-alpha RGBA byte buffer; hand it to any
// display layer, or save it with [Canvas.SavePNG].
//
// # Host application
//
// The package also ships the interactive pet host: [Pet] drives movement,
// hunger, and animation timing; [App] wraps a Pet in an ebiten game with
// keyboard input and live asset reloading via [Watcher]. See examples/pet.
//
//	app, err := dinopet.NewApp(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dinopet.Run(app, dinopet.RunConfig{Title: "Dino Pet"})
//
// # Concurrency
//
// The package is single-threaded by contract. An AssetTree must not be
// merged into while it is being read, and a Canvas has exactly one writer
// per frame. The host loop enforces this; the package does no locking.
package dinopet
