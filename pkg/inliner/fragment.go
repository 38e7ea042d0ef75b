package inliner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fragment is a single shader source to be embedded in the page.
type Fragment struct {
	Path   string // file the source was read from
	Tag    string // base name without extension, used for the element id
	Ext    string // extension including the leading dot
	Kind   Kind
	Source string
}

// ID returns the script element id, e.g. "tri-vs" for tri.vert.
func (f Fragment) ID() string {
	return f.Tag + "-" + f.Ext[1:2] + "s"
}

// NewFragment derives the tag and kind of a fragment from its path.
// Leading dots of the base name are not treated as an extension separator,
// so a file named ".vert" has no extension and is rejected.
func NewFragment(path, source string) (Fragment, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	kind, err := KindFor(ext)
	if err != nil {
		return Fragment{}, &UnknownKindError{Path: path, Ext: ext}
	}
	return Fragment{
		Path:   path,
		Tag:    strings.TrimSuffix(base, ext),
		Ext:    ext,
		Kind:   kind,
		Source: normalizeNewlines(source),
	}, nil
}

// LoadFragments reads every path in order. Kinds are checked before any file
// is opened so that a bad extension fails fast even if an earlier file is
// missing.
func LoadFragments(paths []string) ([]Fragment, error) {
	for _, p := range paths {
		if _, err := NewFragment(p, ""); err != nil {
			return nil, err
		}
	}

	out := make([]Fragment, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read fragment %s: %w", p, err)
		}
		f, err := NewFragment(p, string(b))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// normalizeNewlines turns CRLF and lone CR line endings into LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
