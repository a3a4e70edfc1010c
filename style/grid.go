package style

import (
	"fmt"
	"strconv"
	"strings"
)

// GridTrack is one track of a grid template: a length, a percentage,
// auto, or a flexible fraction when Fr is positive.
type GridTrack struct {
	Size Length
	Fr   float32
}

// Fr returns a flexible track.
func Fr(v float32) GridTrack { return GridTrack{Fr: v} }

// Track returns a track of fixed size l.
func Track(l Length) GridTrack { return GridTrack{Size: l} }

// IsFlexible reports whether t takes a share of the free space.
func (t GridTrack) IsFlexible() bool { return t.Fr > 0 }

func (t GridTrack) String() string {
	if t.IsFlexible() {
		return strconv.FormatFloat(float64(t.Fr), 'g', -1, 32) + "fr"
	}
	return t.Size.String()
}

// GridTracks is a grid-template-columns or grid-template-rows value.
type GridTracks []GridTrack

// ParseGridTracks parses a track list such as "100px 1fr 2fr",
// "repeat(3, 1fr)" or "auto 25%". A bare integer n is read as
// repeat(n, 1fr).
func ParseGridTracks(s string) (GridTracks, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		return repeatTracks(n, Fr(1))
	}
	var out GridTracks
	for s != "" {
		if rest, ok := strings.CutPrefix(s, "repeat("); ok {
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return nil, fmt.Errorf("style: unterminated repeat in %q", s)
			}
			countStr, trackStr, ok := strings.Cut(rest[:end], ",")
			if !ok {
				return nil, fmt.Errorf("style: invalid repeat %q", rest[:end])
			}
			n, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				return nil, fmt.Errorf("style: invalid repeat count %q", countStr)
			}
			inner, err := ParseGridTracks(trackStr)
			if err != nil {
				return nil, err
			}
			if n < 1 || n > maxRepeat {
				return nil, fmt.Errorf("style: repeat count %d out of range", n)
			}
			for range n {
				out = append(out, inner...)
			}
			s = strings.TrimSpace(rest[end+1:])
			continue
		}
		tok, rest, _ := strings.Cut(s, " ")
		t, err := parseTrack(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		s = strings.TrimSpace(rest)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("style: empty grid template")
	}
	return out, nil
}

const maxRepeat = 1000

func repeatTracks(n int, t GridTrack) (GridTracks, error) {
	if n < 1 || n > maxRepeat {
		return nil, fmt.Errorf("style: repeat count %d out of range", n)
	}
	out := make(GridTracks, n)
	for i := range out {
		out[i] = t
	}
	return out, nil
}

func parseTrack(s string) (GridTrack, error) {
	if num, ok := strings.CutSuffix(s, "fr"); ok {
		v, err := strconv.ParseFloat(num, 32)
		if err != nil || v <= 0 {
			return GridTrack{}, fmt.Errorf("style: invalid flexible track %q", s)
		}
		return Fr(float32(v)), nil
	}
	l, err := ParseLength(s)
	if err != nil {
		return GridTrack{}, err
	}
	return Track(l), nil
}

// UnmarshalJSON accepts a track list string or a column count.
func (g *GridTracks) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return err
		}
	}
	v, err := ParseGridTracks(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalText encodes g as a space-separated track list.
func (g GridTracks) MarshalText() ([]byte, error) {
	parts := make([]string, len(g))
	for i, t := range g {
		parts[i] = t.String()
	}
	return []byte(strings.Join(parts, " ")), nil
}
