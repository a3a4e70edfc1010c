package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitEm
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
	UnitQ
)

var unitSuffixes = [...]string{
	UnitAuto:    "auto",
	UnitPx:      "px",
	UnitPercent: "%",
	UnitEm:      "em",
	UnitRem:     "rem",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitVmin:    "vmin",
	UnitVmax:    "vmax",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitIn:      "in",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitQ:       "q",
}

// Length is a CSS length, percentage or auto.
type Length struct {
	Value float32
	Unit  Unit
}

// Auto is the auto length.
var Auto = Length{Unit: UnitAuto}

func Px(v float32) Length      { return Length{v, UnitPx} }
func Percent(v float32) Length { return Length{v, UnitPercent} }
func Em(v float32) Length      { return Length{v, UnitEm} }
func Rem(v float32) Length     { return Length{v, UnitRem} }
func Vw(v float32) Length      { return Length{v, UnitVw} }
func Vh(v float32) Length      { return Length{v, UnitVh} }

// IsAuto reports whether l is auto.
func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

// IsPercent reports whether l is a percentage.
func (l Length) IsPercent() bool { return l.Unit == UnitPercent }

// Metrics carries what relative units resolve against.
type Metrics struct {
	// FontSize is the element's computed font size in device pixels.
	FontSize float32
	// RootFontSize is the viewport base font size in CSS pixels.
	RootFontSize float32
	// ViewportWidth and ViewportHeight are in device pixels, 0 when absent.
	ViewportWidth  float32
	ViewportHeight float32
	// DPR is the device pixel ratio.
	DPR float32
}

const (
	pxPerIn = 96
	pxPerCm = pxPerIn / 2.54
)

// Resolve converts l to device pixels. Percentages resolve against base,
// which is already in device pixels. Auto resolves to 0.
func (l Length) Resolve(m Metrics, base float32) float32 {
	dpr := m.DPR
	if dpr == 0 {
		dpr = 1
	}
	v := l.Value
	switch l.Unit {
	case UnitAuto:
		return 0
	case UnitPx:
		return v * dpr
	case UnitPercent:
		return v / 100 * base
	case UnitEm:
		return v * m.FontSize
	case UnitRem:
		return v * m.RootFontSize * dpr
	case UnitVw:
		return v * m.ViewportWidth / 100
	case UnitVh:
		return v * m.ViewportHeight / 100
	case UnitVmin:
		return v * min(m.ViewportWidth, m.ViewportHeight) / 100
	case UnitVmax:
		return v * max(m.ViewportWidth, m.ViewportHeight) / 100
	case UnitCm:
		return v * pxPerCm * dpr
	case UnitMm:
		return v * pxPerCm / 10 * dpr
	case UnitIn:
		return v * pxPerIn * dpr
	case UnitPt:
		return v * pxPerIn / 72 * dpr
	case UnitPc:
		return v * pxPerIn / 6 * dpr
	case UnitQ:
		return v * pxPerCm / 40 * dpr
	}
	return 0
}

func (l Length) String() string {
	if l.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(float64(l.Value), 'g', -1, 32) + unitSuffixes[l.Unit]
}

// ParseLength parses a single length such as "12px", "50%", "1.5rem",
// "auto" or a bare number, which is taken as pixels.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "auto" {
		return Auto, nil
	}
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= 'a' && c <= 'z') || c == '%' {
			end--
			continue
		}
		break
	}
	num, suffix := s[:end], s[end:]
	v, err := strconv.ParseFloat(num, 32)
	if err != nil || num == "" {
		return Length{}, fmt.Errorf("style: invalid length %q", s)
	}
	if suffix == "" {
		return Px(float32(v)), nil
	}
	for u, name := range unitSuffixes {
		if u != int(UnitAuto) && name == suffix {
			return Length{float32(v), Unit(u)}, nil
		}
	}
	return Length{}, fmt.Errorf("style: unknown length unit %q", suffix)
}

// UnmarshalJSON accepts a string length or a number of pixels.
func (l *Length) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		v, err := ParseLength(s)
		if err != nil {
			return err
		}
		*l = v
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 32)
	if err != nil {
		return fmt.Errorf("style: invalid length %s", data)
	}
	*l = Px(float32(v))
	return nil
}

// MarshalText encodes l in CSS notation.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
