package dinopet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for the loading paths. Callers match with errors.Is.
var (
	// ErrPathNotFound means a Load or Merge target is neither an existing
	// file nor an existing directory.
	ErrPathNotFound = errors.New("asset path not found")

	// ErrDecode means the image codec rejected an asset file. Load never
	// commits a partial tree on this; Merge keeps whatever it merged before
	// the failing file.
	ErrDecode = errors.New("image decode failed")
)

// Load builds an AssetTree from a file or directory.
//
// A single file becomes a tree with exactly one part, named after the file
// stem, holding a one-frame default sequence.
//
// A directory is scanned recursively. Files are processed in lexicographic
// order of their full relative path. Insertion order defines animation
// order, so frame filenames must be zero-padded by the asset author
// (legs_01, legs_02, ... legs_10). Path depth determines structure:
//
//   - root-level files are parsed per ParseStem;
//   - one directory deep, the directory names the part and the filename
//     carries variant and frame;
//   - deeper still, the first subdirectory names the variant, overriding
//     anything parsed from the filename.
//
// Any decode failure aborts the whole load; no partial tree is returned.
func Load(path string) (*AssetTree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dinopet: load %s: %w", path, ErrPathNotFound)
	}

	if !info.IsDir() {
		stem := fileStem(path)
		tree := NewAssetTree(stem, filepath.Dir(path))
		img, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}
		tree.AddFrame(stem, DefaultVariant, img)
		return tree, nil
	}

	tree := NewAssetTree(filepath.Base(path), path)
	files, err := collectImageFiles(path)
	if err != nil {
		return nil, fmt.Errorf("dinopet: scan %s: %w", path, err)
	}
	for _, rel := range files {
		partName, v := classify(rel)
		img, err := DecodeFile(filepath.Join(path, rel))
		if err != nil {
			return nil, err
		}
		tree.AddFrame(partName, v, img)
	}
	debugf("loaded %q: %d parts from %s", tree.Name, len(tree.order), path)
	return tree, nil
}

// Merge extends the tree in place from a new file or directory.
//
// For a single file, explicitPart names the part to add to; when it is ""
// the part and variant are parsed from the filename. An incoming image
// that declares a named variant never disturbs existing entries. When the
// incoming image has no variant and the target part already holds an
// unnamed default, that default is renamed to the "original" variant and
// the incoming image lands under "default". A part thus never carries two
// entries that both mean "no variant", and the previous appearance stays
// reachable.
//
// For a directory, every image under it (any depth) is parsed from its
// filename alone (directory names do not declare parts or variants on the
// merge path) and appended into existing or new entries. A decode failure
// stops the merge with an error; files merged before it stay in the tree.
func (t *AssetTree) Merge(path string, explicitPart string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("dinopet: merge %s: %w", path, ErrPathNotFound)
	}

	if !info.IsDir() {
		partName := explicitPart
		v := DefaultVariant
		if partName == "" {
			parsed := ParseFilename(filepath.Base(path))
			partName = parsed.Base
			v = parsed.Variant
		}
		img, err := DecodeFile(path)
		if err != nil {
			return err
		}
		t.addResolvingDefault(partName, v, img)
		return nil
	}

	files, err := collectImageFiles(path)
	if err != nil {
		return fmt.Errorf("dinopet: scan %s: %w", path, err)
	}
	for _, rel := range files {
		parsed := ParseFilename(filepath.Base(rel))
		img, err := DecodeFile(filepath.Join(path, rel))
		if err != nil {
			return err
		}
		t.AddFrame(parsed.Base, parsed.Variant, img)
	}
	debugf("merged %s into %q", path, t.Name)
	return nil
}

// addResolvingDefault inserts a single merged image, applying the
// default-collision policy described on Merge. The collision exists only
// when both the part's existing entry and the incoming image are unnamed.
func (t *AssetTree) addResolvingDefault(partName string, v Variant, img *Image) {
	if p, ok := t.parts[partName]; ok && !v.Named() {
		if _, hasDefault := p.sequence(DefaultVariant); hasDefault {
			v = NamedVariant("default")
			p.rename(DefaultVariant, NamedVariant("original"))
			debugf("part %q: default moved to variant \"original\"", partName)
		}
	}
	t.AddFrame(partName, v, img)
}

// classify maps a relative asset path to its (part, variant) pair per the
// naming convention.
func classify(rel string) (string, Variant) {
	comps := strings.Split(rel, string(filepath.Separator))
	if len(comps) == 1 {
		parsed := ParseFilename(comps[0])
		return parsed.Base, parsed.Variant
	}
	partName := comps[0]
	parsed := ParseFilename(comps[len(comps)-1])
	v := parsed.Variant
	if len(comps) > 2 {
		// Directory-declared variant wins over the filename's.
		v = NamedVariant(comps[1])
	}
	return partName, v
}

// collectImageFiles walks root and returns the relative paths of every
// image file beneath it, sorted lexicographically for reproducible frame
// ordering across platforms.
func collectImageFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isImageFile(p) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// fileStem returns the base of a path with its extension removed.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
