package dinopet

// Stats is a small open-ended bag of pet statistics (hunger, mood, ...).
// It lives on the AssetTree because the tree is the one long-lived object
// per creature; gameplay code mutates it, the loading and rendering paths
// never touch it.
type Stats map[string]float64

// startingHunger is the hunger value a freshly loaded creature begins with.
const startingHunger = 50

// part holds the variant table for one named part. Variant insertion order
// is tracked explicitly: the resolution fallback and UI listings must be
// deterministic, and Go map iteration is not.
type part struct {
	seqs  map[Variant]*FrameSequence
	order []Variant
}

func (p *part) sequence(v Variant) (*FrameSequence, bool) {
	s, ok := p.seqs[v]
	return s, ok
}

func (p *part) add(name string, v Variant) *FrameSequence {
	if s, ok := p.seqs[v]; ok {
		return s
	}
	s := &FrameSequence{Part: name, Variant: v}
	p.seqs[v] = s
	p.order = append(p.order, v)
	return s
}

// rename moves the sequence under key from to key to, dropping from.
// If to already exists it is overwritten in place; otherwise to takes a new
// slot at the end of the variant order, matching how a plain re-insertion
// would behave.
func (p *part) rename(from, to Variant) {
	s, ok := p.seqs[from]
	if !ok {
		return
	}
	delete(p.seqs, from)
	for i, v := range p.order {
		if v == from {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	s.Variant = to
	if _, exists := p.seqs[to]; !exists {
		p.order = append(p.order, to)
	}
	p.seqs[to] = s
}

// AssetTree is a loaded creature: a display name plus a two-level mapping
// from part name to variant to frame sequence. Every part present has at
// least one variant entry and every entry's sequence is non-empty; Load
// and Merge maintain that invariant.
//
// Not safe for concurrent mutation and reads; the host loop must not
// interleave Merge with Resolve or Render.
type AssetTree struct {
	Name     string
	BasePath string
	Stats    Stats

	parts map[string]*part
	order []string // part insertion order
}

// NewAssetTree creates an empty tree with default stats.
func NewAssetTree(name, basePath string) *AssetTree {
	return &AssetTree{
		Name:     name,
		BasePath: basePath,
		Stats:    Stats{"hunger": startingHunger},
		parts:    make(map[string]*part),
	}
}

// AddFrame appends an image to the sequence for (partName, v), creating the
// part and variant entries on first use.
func (t *AssetTree) AddFrame(partName string, v Variant, img *Image) {
	p, ok := t.parts[partName]
	if !ok {
		p = &part{seqs: make(map[Variant]*FrameSequence)}
		t.parts[partName] = p
		t.order = append(t.order, partName)
	}
	p.add(partName, v).AddFrame(img)
}

// Resolve returns the frame sequence for a part, falling back when the
// requested variant is missing:
//
//  1. the exact requested variant, if present
//  2. the part's unnamed default, if present
//  3. the first-inserted variant that exists
//  4. nil if the part itself does not exist
//
// Requesting DefaultVariant collapses tiers 1 and 2. The fallback chain
// means rendering never silently drops a part just because the caller asked
// for an appearance the asset does not have.
func (t *AssetTree) Resolve(partName string, v Variant) *FrameSequence {
	p, ok := t.parts[partName]
	if !ok {
		return nil
	}
	if s, ok := p.sequence(v); ok {
		return s
	}
	if s, ok := p.sequence(DefaultVariant); ok {
		return s
	}
	if len(p.order) > 0 {
		return p.seqs[p.order[0]]
	}
	return nil
}

// HasPart reports whether the tree has any entry for the named part.
func (t *AssetTree) HasPart(partName string) bool {
	_, ok := t.parts[partName]
	return ok
}

// PartNames returns the part names in insertion order.
func (t *AssetTree) PartNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Variants returns the variants available for a part, in insertion order.
// An unknown part yields nil.
func (t *AssetTree) Variants(partName string) []Variant {
	p, ok := t.parts[partName]
	if !ok {
		return nil
	}
	out := make([]Variant, len(p.order))
	copy(out, p.order)
	return out
}
