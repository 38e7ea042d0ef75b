package inliner

import (
	"errors"
	"fmt"
)

// Kind is the shader stage a fragment belongs to, as used in the
// x-shader/x-<kind> script type.
type Kind string

const (
	KindVertex   Kind = "vertex"
	KindFragment Kind = "fragment"
)

// kinds maps a file extension (with its leading dot) to a shader kind.
var kinds = map[string]Kind{
	".vert": KindVertex,
	".frag": KindFragment,
}

var (
	// ErrUnknownKind is matched by every UnknownKindError.
	ErrUnknownKind = errors.New("unknown shader kind")

	// ErrNoFragments is returned when a template has markers to fill but no
	// fragments were supplied.
	ErrNoFragments = errors.New("template has shader markers but no fragments were given")
)

// UnknownKindError reports a fragment whose extension is not in the kind table.
type UnknownKindError struct {
	Path string
	Ext  string
}

func (e *UnknownKindError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: extension %q", ErrUnknownKind, e.Ext)
	}
	return fmt.Sprintf("%s: %s has extension %q, want .vert or .frag", ErrUnknownKind, e.Path, e.Ext)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// KindFor looks up the shader kind for a file extension such as ".vert".
func KindFor(ext string) (Kind, error) {
	kind, ok := kinds[ext]
	if !ok {
		return "", &UnknownKindError{Ext: ext}
	}
	return kind, nil
}
