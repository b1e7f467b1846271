package dinopet

// RenderOrder is the fixed back-to-front draw order of the creature's
// parts: the tail sits behind the body, the head draws on top of
// everything. The order is not configurable at runtime.
var RenderOrder = [...]string{PartTail, PartBody, PartLegs, PartArms, PartHead}

// Canonical part names produced by the asset naming convention.
const (
	PartTail = "tail"
	PartBody = "dino"
	PartLegs = "legs"
	PartArms = "arms"
	PartHead = "head"
)

// Selection is the caller's current appearance choice: which variant and
// which frame index to draw for each part. It is owned by the host loop
// (which advances frames and reacts to UI), never by the AssetTree.
//
// Missing entries mean "default variant, frame 0". Frame indices are free
// running; they wrap against each sequence's length at lookup time.
type Selection struct {
	Variants map[string]Variant
	Frames   map[string]int
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		Variants: make(map[string]Variant),
		Frames:   make(map[string]int),
	}
}

// Render composites the creature onto the canvas with its shared anchor
// point at (x, y). Parts are drawn in RenderOrder; every part resolves its
// selected variant through the tree's fallback chain and its selected frame
// cyclically. All parts share the one placement point, flip, and scale.
//
// Render never fails: parts the asset does not have, unknown variants, and
// out-of-range frames are normal during incremental authoring and are
// skipped or wrapped silently.
func Render(dst *Canvas, tree *AssetTree, x, y float64, sel *Selection, flipH bool, scale float64) {
	if dst == nil || tree == nil {
		return
	}

	for _, partName := range RenderOrder {
		v := DefaultVariant
		frame := 0
		if sel != nil {
			v = sel.Variants[partName]
			frame = sel.Frames[partName]
		}

		seq := tree.Resolve(partName, v)
		if seq == nil || seq.Len() == 0 {
			continue
		}
		img, err := seq.Frame(frame)
		if err != nil {
			continue
		}
		Composite(dst, img, x, y, flipH, false, scale)
	}
}
