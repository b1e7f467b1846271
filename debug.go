package dinopet

import (
	"fmt"
	"os"
)

// globalDebug gates stderr diagnostics from the loading and host paths.
// Plain bool, no atomic; the package is single-threaded.
var globalDebug bool

// SetDebug toggles stderr diagnostics ([dinopet] prefixed). Off by default;
// the core never logs on behalf of the host.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dinopet] "+format+"\n", args...)
}

// DumpTree writes a summary of the tree's parts, variants, and frame counts
// to stderr regardless of the debug flag. Intended for asset authors
// checking what their directory layout parsed into.
func DumpTree(t *AssetTree) {
	if t == nil {
		_, _ = fmt.Fprintln(os.Stderr, "[dinopet] tree: <nil>")
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dinopet] tree %q (%s)\n", t.Name, t.BasePath)
	for _, partName := range t.PartNames() {
		for _, v := range t.Variants(partName) {
			seq := t.Resolve(partName, v)
			_, _ = fmt.Fprintf(os.Stderr, "[dinopet]   %s/%s: %d frame(s)\n", partName, v, seq.Len())
		}
	}
}
