package dinopet

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig controls the window Run creates.
type RunConfig struct {
	Title   string
	Width   int // window width in pixels; 0 means canvas size * WindowScale
	Height  int
	ShowFPS bool
}

// App is the interactive pet host: an ebiten game that renders the pet onto
// a Canvas each frame, uploads it to the screen, handles keyboard input,
// and merges hot-reloaded assets.
//
// Keys: F feeds, P plays, S saves a screenshot, 1–5 cycle the variant of
// the corresponding draw-order part (tail, body, legs, arms, head), click
// sets the walk target.
type App struct {
	cfg    Config
	pet    *Pet
	canvas *Canvas
	bg     RGBA

	frame  *ebiten.Image // canvas-sized upload target
	upload []byte        // premultiplied staging buffer for WritePixels

	watcher *Watcher
	showFPS bool
}

// NewApp loads the configured asset tree and builds the host around it.
// When cfg.WatchAsset is set, the asset directory is watched and new image
// files are merged into the live tree.
func NewApp(cfg Config) (*App, error) {
	tree, err := Load(cfg.AssetPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		pet:     NewPet(tree, cfg),
		canvas:  NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight),
		bg:      cfg.BackgroundRGBA(),
		showFPS: cfg.ShowFPS,
	}

	if cfg.WatchAsset {
		w, err := NewWatcher(cfg.AssetPath)
		if err != nil {
			return nil, fmt.Errorf("dinopet: watch %s: %w", cfg.AssetPath, err)
		}
		a.watcher = w
	}
	return a, nil
}

// Pet returns the simulated pet for direct host manipulation.
func (a *App) Pet() *Pet { return a.pet }

// Close releases the asset watcher, if any.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// Update implements ebiten.Game. It drains pending hot-reload events,
// processes input, and steps the simulation by one tick.
func (a *App) Update() error {
	a.drainWatcher()
	a.handleInput()

	dt := 1.0 / float64(ebiten.TPS())
	a.pet.Update(dt)
	return nil
}

// Draw implements ebiten.Game: clear, render the pet, upload the canvas.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Clear(a.bg)
	a.pet.Render(a.canvas)

	if a.frame == nil {
		a.frame = ebiten.NewImage(a.canvas.Width, a.canvas.Height)
		a.upload = make([]byte, len(a.canvas.Pix))
	}

	// WritePixels wants premultiplied alpha; the canvas is straight.
	premultiply(a.upload, a.canvas.Pix)
	a.frame.WritePixels(a.upload)

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterNearest
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(a.canvas.Width), float64(sh)/float64(a.canvas.Height))
	screen.DrawImage(a.frame, &op)

	if a.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nHunger: %.0f/100", ebiten.ActualFPS(), a.pet.Hunger()))
	}
}

// Layout implements ebiten.Game; the logical screen is the canvas size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.canvas.Width, a.canvas.Height
}

func (a *App) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.pet.Feed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.pet.Play()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.saveScreenshot()
	}
	for i, key := range [...]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5} {
		if inpututil.IsKeyJustPressed(key) {
			a.pet.CycleVariant(RenderOrder[i])
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		bounds := Rect{Width: float64(a.canvas.Width), Height: float64(a.canvas.Height)}
		if bounds.Contains(float64(mx), float64(my)) {
			a.pet.MoveTo(float64(mx), float64(my))
		}
	}
}

// drainWatcher merges every pending hot-reload event. A merge failure is
// reported to stderr and leaves the tree as it was before the failing file.
func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			if err := a.pet.Tree.Merge(path, ""); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "[dinopet] reload %s: %v\n", path, err)
				continue
			}
			debugf("reloaded %s", path)
		case err := <-a.watcher.Errors:
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "[dinopet] watcher: %v\n", err)
			}
		default:
			return
		}
	}
}

func (a *App) saveScreenshot() {
	if err := os.MkdirAll(a.cfg.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[dinopet] screenshot: mkdir %s: %v\n", a.cfg.ScreenshotDir, err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(a.cfg.ScreenshotDir, stamp+".png")
	if err := a.canvas.SavePNG(path); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[dinopet] screenshot: %v\n", err)
	}
}

// premultiply converts a straight-alpha RGBA buffer into dst, multiplying
// color channels by alpha as the GPU upload path expects.
func premultiply(dst, src []byte) {
	for i := 0; i < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i] = uint8(uint32(src[i]) * a / 255)
		dst[i+1] = uint8(uint32(src[i+1]) * a / 255)
		dst[i+2] = uint8(uint32(src[i+2]) * a / 255)
		dst[i+3] = src[i+3]
	}
}

// Run opens a window sized for the app's canvas and runs the game loop
// until the window closes.
func Run(app *App, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = app.cfg.Title
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w = app.canvas.Width * app.cfg.WindowScale
		h = app.canvas.Height * app.cfg.WindowScale
	}
	if cfg.ShowFPS {
		app.showFPS = true
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	defer app.Close()
	return ebiten.RunGame(app)
}
