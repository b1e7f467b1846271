package dinopet

// Variant identifies one appearance of a part: either the part's unnamed
// default, or a named alternate (a color, an expression). It is a small
// comparable value used directly as a map key, which avoids the ambiguity of
// an empty string meaning both "no variant" and a variant literally named "".
//
// The zero value is the default variant.
type Variant struct {
	name  string
	named bool
}

// DefaultVariant is the unnamed default appearance of a part.
var DefaultVariant = Variant{}

// NamedVariant returns the variant with the given name.
func NamedVariant(name string) Variant {
	return Variant{name: name, named: true}
}

// Named reports whether v is a named variant rather than the default.
func (v Variant) Named() bool { return v.named }

// Name returns the variant name, or "" for the default variant.
func (v Variant) Name() string { return v.name }

// String returns the variant name, or "default" for the default variant.
// Intended for display (dropdowns, debug output).
func (v Variant) String() string {
	if !v.named {
		return "default"
	}
	return v.name
}
