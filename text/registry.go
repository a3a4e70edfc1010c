package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/nodeimg/internal/cache"
	"github.com/gogpu/nodeimg/style"
)

// Format is a font container format.
type Format uint8

const (
	// FormatAuto detects the format from the data.
	FormatAuto Format = iota
	FormatTTF
	FormatOTF
	FormatTTC
	FormatWOFF
	FormatWOFF2
)

var formatNames = [...]string{"auto", "ttf", "otf", "ttc", "woff", "woff2"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// DetectFormat inspects the leading signature of data.
// It returns FormatAuto when the signature is not recognized.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatAuto
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true":
		return FormatTTF
	case "OTTO":
		return FormatOTF
	case "ttcf":
		return FormatTTC
	case "wOFF":
		return FormatWOFF
	case "wOF2":
		return FormatWOFF2
	}
	return FormatAuto
}

// LoadOptions overrides what a font file says about itself.
type LoadOptions struct {
	// Format is a hint; FormatAuto sniffs the data.
	Format Format
	// Family replaces the family name from the name table.
	Family string
	// Weight replaces the weight from the OS/2 table when non-zero.
	Weight style.FontWeight
	// Style replaces the style when set.
	Style style.Optional[style.FontStyle]
	// Index selects a single face of a collection. When unset every face
	// in the collection is registered.
	Index style.Optional[int]
}

// DefaultOutlineCacheSize is the number of glyph outlines kept per shard.
const DefaultOutlineCacheSize = 2048

// Registry holds parsed fonts shared by every render.
//
// Fonts are stored as *font.Font, which is read-only and safe for concurrent
// use; sessions wrap them in their own font.Face.
type Registry struct {
	logger *slog.Logger

	mu      sync.RWMutex
	entries []entry
	ids     map[*font.Font]uint32
	files   int

	outlines *cache.Sharded[uint64, *font.GlyphOutline]
}

type entry struct {
	font     *font.Font
	desc     font.Description
	location fontscan.Location
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		logger:   logger,
		ids:      make(map[*font.Font]uint32),
		outlines: cache.NewSharded[uint64, *font.GlyphOutline](DefaultOutlineCacheSize, cache.Uint64Hasher),
	}
}

// Load parses data and registers its faces. It returns the number of faces
// added. A failure leaves previously loaded fonts untouched.
func (r *Registry) Load(data []byte, opts LoadOptions) (int, error) {
	faces, err := parse(data, opts)
	if err != nil {
		return 0, &FontError{Family: opts.Family, Reason: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.files++
	file := fmt.Sprintf("memory:%d", r.files)
	for i, face := range faces {
		desc := face.Font.Describe()
		if opts.Family != "" {
			desc.Family = opts.Family
		}
		if opts.Weight != 0 {
			desc.Aspect.Weight = font.Weight(opts.Weight)
		}
		if st, ok := opts.Style.Get(); ok {
			desc.Aspect.Style = fontStyle(st)
		}
		desc.Aspect.SetDefaults()

		index := uint16(i)
		if idx, ok := opts.Index.Get(); ok {
			index = uint16(idx)
		}
		r.ids[face.Font] = uint32(len(r.entries))
		r.entries = append(r.entries, entry{
			font:     face.Font,
			desc:     desc,
			location: fontscan.Location{File: file, Index: index},
		})
		r.logger.Debug("font loaded", "family", desc.Family, "weight", desc.Aspect.Weight, "style", desc.Aspect.Style)
	}
	return len(faces), nil
}

func parse(data []byte, opts LoadOptions) ([]*font.Face, error) {
	format := opts.Format
	if detected := DetectFormat(data); detected != FormatAuto {
		format = detected
	}
	switch format {
	case FormatAuto:
		return nil, ErrUnsupportedFormat
	case FormatWOFF2:
		return nil, ErrUnsupportedFormat
	}

	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		if format == FormatWOFF {
			return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
		}
		return nil, err
	}
	idx, ok := opts.Index.Get()
	if !ok {
		return faces, nil
	}
	if idx < 0 || idx >= len(faces) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, idx, len(faces))
	}
	return faces[idx : idx+1], nil
}

func fontStyle(s style.FontStyle) font.Style {
	if s == style.FontStyleNormal {
		return font.StyleNormal
	}
	return font.StyleItalic
}

// DefaultFamily is the family name of the embedded Go fonts.
const DefaultFamily = "Go"

// RegisterDefaults registers the embedded Go font family: regular, bold,
// italic, bold italic, and Go Mono under the monospace family.
func (r *Registry) RegisterDefaults() error {
	defaults := []struct {
		data []byte
		opts LoadOptions
	}{
		{goregular.TTF, LoadOptions{Family: DefaultFamily}},
		{gobold.TTF, LoadOptions{Family: DefaultFamily}},
		{goitalic.TTF, LoadOptions{Family: DefaultFamily}},
		{gobolditalic.TTF, LoadOptions{Family: DefaultFamily}},
		{gomono.TTF, LoadOptions{Family: "monospace"}},
	}
	for _, d := range defaults {
		if _, err := r.Load(d.data, d.opts); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered faces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Families returns the distinct family names in registration order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	seen := make(map[string]bool)
	for _, e := range r.entries {
		if !seen[e.desc.Family] {
			seen[e.desc.Family] = true
			out = append(out, e.desc.Family)
		}
	}
	return out
}

// Outline returns the outline of gid in font units, y up. ok is false for
// glyphs without an outline (spaces, bitmap-only glyphs).
func (r *Registry) Outline(face *font.Face, gid font.GID) (font.GlyphOutline, bool) {
	r.mu.RLock()
	id, known := r.ids[face.Font]
	r.mu.RUnlock()
	if !known {
		return loadOutline(face, gid)
	}

	key := uint64(id)<<32 | uint64(gid)
	o := r.outlines.GetOrCreate(key, func() *font.GlyphOutline {
		if out, ok := loadOutline(face, gid); ok {
			return &out
		}
		return nil
	})
	if o == nil {
		return font.GlyphOutline{}, false
	}
	return *o, true
}

func loadOutline(face *font.Face, gid font.GID) (font.GlyphOutline, bool) {
	o, ok := face.GlyphData(gid).(font.GlyphOutline)
	return o, ok && len(o.Segments) > 0
}

// printfLogger adapts slog to the font map's Printf logger.
type printfLogger struct {
	logger *slog.Logger
}

func (l printfLogger) Printf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
