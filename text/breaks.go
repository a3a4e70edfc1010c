package text

import (
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/bidi"
)

// Break is a line-break opportunity before the rune at Offset.
type Break struct {
	Offset    int
	Mandatory bool
}

// Breaks returns the UAX #14 break opportunities of text in increasing
// offset order. The final entry is always at len(text).
func Breaks(text []rune) []Break {
	if len(text) == 0 {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.LineIterator()
	var out []Break
	for it.Next() {
		line := it.Line()
		out = append(out, Break{
			Offset:    line.Offset + len(line.Text),
			Mandatory: line.IsMandatoryBreak,
		})
	}
	return out
}

// Graphemes returns the offsets at which grapheme clusters end, used for
// breaking inside words.
func Graphemes(text []rune) []int {
	if len(text) == 0 {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.GraphemeIterator()
	var out []int
	for it.Next() {
		g := it.Grapheme()
		out = append(out, g.Offset+len(g.Text))
	}
	return out
}

// Dir is a paragraph direction.
type Dir uint8

const (
	LeftToRight Dir = iota
	RightToLeft
)

// Direction returns the base direction of a paragraph: the direction of
// its first strong character, left to right when there is none.
func Direction(text []rune) Dir {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return LeftToRight
}
