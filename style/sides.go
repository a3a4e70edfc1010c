package style

import (
	"strconv"
	"strings"
)

// Sides holds one value per box edge.
type Sides[T any] struct {
	Top    T `json:"top"`
	Right  T `json:"right"`
	Bottom T `json:"bottom"`
	Left   T `json:"left"`
}

// AllSides sets every edge to v.
func AllSides[T any](v T) Sides[T] {
	return Sides[T]{v, v, v, v}
}

// SymmetricSides sets top/bottom to y and left/right to x.
func SymmetricSides[T any](y, x T) Sides[T] {
	return Sides[T]{y, x, y, x}
}

// UnmarshalJSON accepts an object with per-edge keys, a single value, or a
// CSS shorthand string of one to four space-separated values.
func (s *Sides[T]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj sidesObject[T]
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*s = Sides[T](obj)
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		str, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		parts := strings.Fields(str)
		if len(parts) > 1 && len(parts) <= 4 {
			vals := make([]T, len(parts))
			for i, p := range parts {
				if err := json.Unmarshal([]byte(strconv.Quote(p)), &vals[i]); err != nil {
					return err
				}
			}
			*s = expandShorthand(vals)
			return nil
		}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = AllSides(v)
	return nil
}

// sidesObject and cornersObject decode the object form without recursing
// into the UnmarshalJSON methods.
type sidesObject[T any] struct {
	Top    T `json:"top"`
	Right  T `json:"right"`
	Bottom T `json:"bottom"`
	Left   T `json:"left"`
}

type cornersObject[T any] struct {
	TopLeft     T `json:"topLeft"`
	TopRight    T `json:"topRight"`
	BottomRight T `json:"bottomRight"`
	BottomLeft  T `json:"bottomLeft"`
}

func expandShorthand[T any](v []T) Sides[T] {
	switch len(v) {
	case 1:
		return AllSides(v[0])
	case 2:
		return Sides[T]{v[0], v[1], v[0], v[1]}
	case 3:
		return Sides[T]{v[0], v[1], v[2], v[1]}
	default:
		return Sides[T]{v[0], v[1], v[2], v[3]}
	}
}

// Corners holds one value per box corner.
type Corners[T any] struct {
	TopLeft     T `json:"topLeft"`
	TopRight    T `json:"topRight"`
	BottomRight T `json:"bottomRight"`
	BottomLeft  T `json:"bottomLeft"`
}

// AllCorners sets every corner to v.
func AllCorners[T any](v T) Corners[T] {
	return Corners[T]{v, v, v, v}
}

// UnmarshalJSON accepts an object with per-corner keys or a single value.
func (c *Corners[T]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj cornersObject[T]
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*c = Corners[T](obj)
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = AllCorners(v)
	return nil
}

func mergeSides[T any](dst *Sides[Optional[T]], src Sides[Optional[T]]) {
	dst.Top.Merge(src.Top)
	dst.Right.Merge(src.Right)
	dst.Bottom.Merge(src.Bottom)
	dst.Left.Merge(src.Left)
}

func mergeCorners[T any](dst *Corners[Optional[T]], src Corners[Optional[T]]) {
	dst.TopLeft.Merge(src.TopLeft)
	dst.TopRight.Merge(src.TopRight)
	dst.BottomRight.Merge(src.BottomRight)
	dst.BottomLeft.Merge(src.BottomLeft)
}

func sidesOr[T any](s Sides[Optional[T]], def T) Sides[T] {
	return Sides[T]{s.Top.Or(def), s.Right.Or(def), s.Bottom.Or(def), s.Left.Or(def)}
}

func cornersOr[T any](c Corners[Optional[T]], def T) Corners[T] {
	return Corners[T]{c.TopLeft.Or(def), c.TopRight.Or(def), c.BottomRight.Or(def), c.BottomLeft.Or(def)}
}

// SomeSides wraps every edge of s in Some.
func SomeSides[T any](s Sides[T]) Sides[Optional[T]] {
	return Sides[Optional[T]]{Some(s.Top), Some(s.Right), Some(s.Bottom), Some(s.Left)}
}

// SomeCorners wraps every corner of c in Some.
func SomeCorners[T any](c Corners[T]) Corners[Optional[T]] {
	return Corners[Optional[T]]{Some(c.TopLeft), Some(c.TopRight), Some(c.BottomRight), Some(c.BottomLeft)}
}
