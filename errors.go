package nodeimg

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per stage that can fail a call. Use errors.Is to
// test for them; the *Error returned alongside carries the cause.
var (
	// ErrInvalidViewport is returned when a viewport has a zero definite
	// dimension or a non-positive font size or pixel ratio.
	ErrInvalidViewport = errors.New("nodeimg: invalid viewport")

	// ErrLayout is returned when the layout solver cannot lay out the tree.
	ErrLayout = errors.New("nodeimg: layout failed")

	// ErrImageResolve is returned by PutPersistentImage when the image
	// cannot be decoded. Renders never return it; unresolved images are
	// left out of the picture.
	ErrImageResolve = errors.New("nodeimg: image not resolved")

	// ErrFont is returned by LoadFont for data that is not a usable font.
	ErrFont = errors.New("nodeimg: font not loaded")

	// ErrEncode is returned when output cannot be encoded.
	ErrEncode = errors.New("nodeimg: encode failed")
)

// Stage names the part of the pipeline an error came from.
type Stage uint8

const (
	StageViewport Stage = iota
	StageImage
	StageFont
	StageLayout
	StageEncode
)

func (s Stage) String() string {
	switch s {
	case StageViewport:
		return "viewport"
	case StageImage:
		return "image"
	case StageFont:
		return "font"
	case StageLayout:
		return "layout"
	case StageEncode:
		return "encode"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

func (s Stage) sentinel() error {
	switch s {
	case StageViewport:
		return ErrInvalidViewport
	case StageImage:
		return ErrImageResolve
	case StageFont:
		return ErrFont
	case StageLayout:
		return ErrLayout
	case StageEncode:
		return ErrEncode
	}
	return nil
}

// Error is the error type returned by nodeimg calls. It matches the
// sentinel of its stage under errors.Is and unwraps to its cause.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Stage.sentinel().Error()
	}
	return fmt.Sprintf("%v: %v", e.Stage.sentinel(), e.Err)
}

// Is reports whether target is the sentinel of e's stage.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Stage.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(s Stage, err error) error {
	return &Error{Stage: s, Err: err}
}
