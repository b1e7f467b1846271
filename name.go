package dinopet

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ParsedName is the result of parsing an asset file stem.
type ParsedName struct {
	Base     string
	Variant  Variant
	Frame    int
	HasFrame bool
}

// ParseStem parses a filename stem (no extension) into a base name, an
// optional variant, and an optional frame index:
//
//	"dino"         -> (dino, default, no frame)
//	"legs_01"      -> (legs, default, frame 1)
//	"head_happy"   -> (head, "happy", no frame)
//	"legs_blue_03" -> (legs, "blue", frame 3)
//
// A trailing _<digits> run is always consumed as the frame index, never
// treated as a variant name. Only ASCII decimal digits count. The remainder
// is split on the first underscore: base before it, variant (if any) after.
func ParseStem(stem string) ParsedName {
	var p ParsedName

	// Trailing frame index: _<digits> anchored at the end.
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i < len(stem) && i > 0 && stem[i-1] == '_' {
		// The run is all digits, so Atoi can only fail on range overflow,
		// where it saturates to the max int. The suffix is consumed as a
		// frame index either way; it must never leak into the variant.
		n, _ := strconv.Atoi(stem[i:])
		p.Frame = n
		p.HasFrame = true
		stem = stem[:i-1]
	}

	base, rest, found := strings.Cut(stem, "_")
	p.Base = base
	if found {
		p.Variant = NamedVariant(rest)
	}
	return p
}

// ParseFilename strips the extension from a filename and parses the stem.
func ParseFilename(name string) ParsedName {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return ParseStem(stem)
}
