package dinopet

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeSolidPNG creates a w×h PNG filled with one color, making any parent
// directories first.
func writeSolidPNG(t *testing.T, path string, w, h int, c RGBA) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

var (
	red         = RGBA{R: 255, A: 255}
	green       = RGBA{G: 255, A: 255}
	blue        = RGBA{B: 255, A: 255}
	transparent = RGBA{}
)

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rex.png")
	writeSolidPNG(t, path, 2, 2, red)

	tree, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Name != "rex" {
		t.Errorf("Name = %q, want \"rex\"", tree.Name)
	}
	parts := tree.PartNames()
	if len(parts) != 1 || parts[0] != "rex" {
		t.Fatalf("PartNames = %v, want [rex]", parts)
	}
	seq := tree.Resolve("rex", DefaultVariant)
	if seq == nil || seq.Len() != 1 || seq.Variant != DefaultVariant {
		t.Fatalf("Resolve(rex) = %v", seq)
	}
	img, err := seq.Frame(0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 2 || img.At(0, 0) != red {
		t.Errorf("frame 0 = %dx%d %v", img.Width, img.Height, img.At(0, 0))
	}
	if img.AnchorX != 1 || img.AnchorY != 1 {
		t.Errorf("anchor = (%v, %v), want center (1, 1)", img.AnchorX, img.AnchorY)
	}
}

func TestLoadDirectoryScenario(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "legs_01.png"), 2, 2, red)
	writeSolidPNG(t, filepath.Join(dir, "legs_02.png"), 2, 2, green)
	writeSolidPNG(t, filepath.Join(dir, "head.png"), 2, 2, transparent)
	writeSolidPNG(t, filepath.Join(dir, "dino.png"), 2, 2, blue)

	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, partName := range []string{"dino", "head"} {
		seq := tree.Resolve(partName, DefaultVariant)
		if seq == nil || seq.Len() != 1 {
			t.Fatalf("part %q = %v", partName, seq)
		}
	}
	legs := tree.Resolve("legs", DefaultVariant)
	if legs == nil || legs.Len() != 2 {
		t.Fatalf("legs = %v, want 2 frames", legs)
	}

	// Frames follow file order: legs_01 then legs_02.
	first, _ := legs.Frame(0)
	second, _ := legs.Frame(1)
	if first.At(0, 0) != red || second.At(0, 0) != green {
		t.Errorf("legs frames out of order: %v, %v", first.At(0, 0), second.At(0, 0))
	}

	// Rendering with frame 1 selected for legs must show legs_02's content.
	// The head is transparent, so the legs pixel wins the stack.
	canvas := NewCanvas(20, 20)
	sel := NewSelection()
	sel.Frames["legs"] = 1
	Render(canvas, tree, 10, 10, sel, false, 1.0)
	if got := canvas.At(9, 9); got != green {
		t.Errorf("canvas at (9,9) = %v, want green", got)
	}
}

func TestLoadDepthRules(t *testing.T) {
	dir := t.TempDir()
	// Depth 1: variant from filename.
	writeSolidPNG(t, filepath.Join(dir, "head_happy.png"), 2, 2, red)
	// Depth 2: directory names the part, filename carries variant+frame.
	writeSolidPNG(t, filepath.Join(dir, "legs", "blue_01.png"), 2, 2, green)
	writeSolidPNG(t, filepath.Join(dir, "legs", "blue_02.png"), 2, 2, blue)
	// Depth 3: intermediate directory overrides the filename variant.
	writeSolidPNG(t, filepath.Join(dir, "arms", "red", "stripey_01.png"), 2, 2, red)

	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if seq := tree.Resolve("head", NamedVariant("happy")); seq == nil || seq.Variant != NamedVariant("happy") {
		t.Errorf("head happy = %v", seq)
	}
	if seq := tree.Resolve("legs", NamedVariant("blue")); seq == nil || seq.Len() != 2 {
		t.Errorf("legs blue = %v, want 2 frames", seq)
	}
	seq := tree.Resolve("arms", NamedVariant("red"))
	if seq == nil || seq.Len() != 1 {
		t.Fatalf("arms red = %v", seq)
	}
	if tree.Resolve("arms", NamedVariant("stripey")) != seq {
		// Only "red" exists, so the unknown name falls back to it.
		t.Error("directory variant did not override filename variant")
	}
	if vs := tree.Variants("arms"); len(vs) != 1 || vs[0] != NamedVariant("red") {
		t.Errorf("arms variants = %v, want [red]", vs)
	}
}

func TestLoadPathNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
}

func TestLoadDecodeFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "dino.png"), 2, 2, blue)
	if err := os.WriteFile(filepath.Join(dir, "head.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := Load(dir)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if tree != nil {
		t.Error("a partially loaded tree must not be returned")
	}
}

func TestMergeSingleFileParsedName(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "legs_01.png"), 2, 2, red)
	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	extra := filepath.Join(t.TempDir(), "legs_blue.png")
	writeSolidPNG(t, extra, 2, 2, blue)
	if err := tree.Merge(extra, ""); err != nil {
		t.Fatal(err)
	}

	if seq := tree.Resolve("legs", NamedVariant("blue")); seq == nil || seq.Len() != 1 {
		t.Fatalf("legs blue = %v", seq)
	}
	// The pre-existing default is untouched: the incoming file declared its
	// own variant, so there was no collision.
	if seq := tree.Resolve("legs", DefaultVariant); seq == nil || seq.Variant != DefaultVariant {
		t.Fatalf("legs default = %v", seq)
	}
}

func TestMergeDefaultCollision(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "dino.png"), 2, 2, blue)
	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	extra := filepath.Join(t.TempDir(), "shiny.png")
	writeSolidPNG(t, extra, 3, 3, green)
	if err := tree.Merge(extra, "dino"); err != nil {
		t.Fatal(err)
	}

	// Exactly one entry must remain resolvable as the part's default, and
	// no unnamed slot may survive the collision.
	vs := tree.Variants("dino")
	if len(vs) != 2 || vs[0] != NamedVariant("original") || vs[1] != NamedVariant("default") {
		t.Fatalf("dino variants = %v, want [original default]", vs)
	}
	for _, v := range vs {
		if !v.Named() {
			t.Fatal("an unnamed variant slot survived the merge")
		}
	}

	// The old image is reachable under "original", the new one under
	// "default"; an unqualified resolve deterministically yields the
	// first-inserted entry ("original") on every call.
	old := tree.Resolve("dino", NamedVariant("original"))
	if old == nil || old.Len() != 1 {
		t.Fatalf("dino original = %v", old)
	}
	if img, _ := old.Frame(0); img.Width != 2 {
		t.Errorf("original width = %d, want the pre-existing 2px image", img.Width)
	}
	fresh := tree.Resolve("dino", NamedVariant("default"))
	if img, _ := fresh.Frame(0); img.Width != 3 {
		t.Errorf("default width = %d, want the merged 3px image", img.Width)
	}
	if got := tree.Resolve("dino", DefaultVariant); got != old {
		t.Errorf("unqualified resolve = %v, want the original entry", got.Variant)
	}
}

func TestMergeDirectoryParsesFilenamesOnly(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "dino.png"), 2, 2, blue)
	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	// On the merge path, directory names carry no meaning: nested files are
	// parsed from their filename alone.
	extras := t.TempDir()
	writeSolidPNG(t, filepath.Join(extras, "arms_01.png"), 2, 2, red)
	writeSolidPNG(t, filepath.Join(extras, "deep", "tail_01.png"), 2, 2, green)
	if err := tree.Merge(extras, ""); err != nil {
		t.Fatal(err)
	}

	if seq := tree.Resolve("arms", DefaultVariant); seq == nil || seq.Len() != 1 {
		t.Errorf("arms = %v", seq)
	}
	if seq := tree.Resolve("tail", DefaultVariant); seq == nil || seq.Len() != 1 {
		t.Errorf("tail = %v (nested merge file should parse from filename)", seq)
	}
}

func TestMergePartialStateOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "dino.png"), 2, 2, blue)
	tree, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	extras := t.TempDir()
	writeSolidPNG(t, filepath.Join(extras, "arms_01.png"), 2, 2, red)
	if err := os.WriteFile(filepath.Join(extras, "zz_bad.png"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	err = tree.Merge(extras, "")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	// Files merged before the failure stay merged; the original tree state
	// is untouched otherwise.
	if seq := tree.Resolve("arms", DefaultVariant); seq == nil {
		t.Error("arms, merged before the failing file, should remain")
	}
	if seq := tree.Resolve("dino", DefaultVariant); seq == nil {
		t.Error("pre-merge parts must be intact after a failed merge")
	}
}

func TestMergePathNotFound(t *testing.T) {
	tree := NewAssetTree("rex", "")
	err := tree.Merge(filepath.Join(t.TempDir(), "missing"), "")
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
}
