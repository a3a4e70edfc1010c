package tw

import (
	"testing"

	"github.com/gogpu/nodeimg/style"
)

func metrics(width float32) style.Metrics {
	return style.Metrics{ViewportWidth: width, RootFontSize: 16, DPR: 1}
}

func TestBreakpointPadding(t *testing.T) {
	c := Parse("p-4 sm:p-8")
	tests := []struct {
		width float32
		want  style.Length
	}{
		{800, style.Rem(2)},
		{500, style.Rem(1)},
		{640, style.Rem(2)},
		{0, style.Rem(1)},
	}
	for _, tt := range tests {
		s := c.Style(metrics(tt.width))
		if got, _ := s.Padding.Left.Get(); got != tt.want {
			t.Errorf("width %v: padding-left = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestBreakpointsApplyInWidthOrder(t *testing.T) {
	s := Parse("lg:w-8 md:w-4 w-2").Style(metrics(1100))
	if got, _ := s.Width.Get(); got != style.Rem(2) {
		t.Errorf("width = %v, want 2rem from lg", got)
	}
}

func TestImportantAppliedLast(t *testing.T) {
	tests := []string{"!mt-2 mt-4", "mt-2! mt-4", "md:mt-4 !mt-2"}
	for _, in := range tests {
		s := Parse(in).Style(metrics(1000))
		if got, _ := s.Margin.Top.Get(); got != style.Rem(0.5) {
			t.Errorf("Parse(%q) margin-top = %v, want 0.5rem", in, got)
		}
	}
}

func TestLaterTokenWins(t *testing.T) {
	s := Parse("w-4 w-8").Style(metrics(0))
	if got, _ := s.Width.Get(); got != style.Rem(2) {
		t.Errorf("width = %v, want 2rem", got)
	}
}

func TestLengths(t *testing.T) {
	tests := []struct {
		token string
		get   func(s *style.Style) style.Optional[style.Length]
		want  style.Length
	}{
		{"w-[120px]", func(s *style.Style) style.Optional[style.Length] { return s.Width }, style.Px(120)},
		{"w-1/2", func(s *style.Style) style.Optional[style.Length] { return s.Width }, style.Percent(50)},
		{"h-full", func(s *style.Style) style.Optional[style.Length] { return s.Height }, style.Percent(100)},
		{"h-screen", func(s *style.Style) style.Optional[style.Length] { return s.Height }, style.Vh(100)},
		{"max-w-md", func(s *style.Style) style.Optional[style.Length] { return s.MaxWidth }, style.Rem(28)},
		{"-mt-2", func(s *style.Style) style.Optional[style.Length] { return s.Margin.Top }, style.Rem(-0.5)},
		{"mx-auto", func(s *style.Style) style.Optional[style.Length] { return s.Margin.Left }, style.Auto},
		{"px-px", func(s *style.Style) style.Optional[style.Length] { return s.Padding.Right }, style.Px(1)},
		{"gap-x-3", func(s *style.Style) style.Optional[style.Length] { return s.ColumnGap }, style.Rem(0.75)},
		{"rounded-lg", func(s *style.Style) style.Optional[style.Length] { return s.BorderRadius.BottomLeft }, style.Rem(0.5)},
		{"rounded-t-full", func(s *style.Style) style.Optional[style.Length] { return s.BorderRadius.TopRight }, style.Px(9999)},
		{"border-b-2", func(s *style.Style) style.Optional[style.Length] { return s.BorderWidth.Bottom }, style.Px(2)},
		{"border", func(s *style.Style) style.Optional[style.Length] { return s.BorderWidth.Top }, style.Px(1)},
		{"text-[14px]", func(s *style.Style) style.Optional[style.Length] { return s.FontSize }, style.Px(14)},
		{"w-[calc(100%-2px)]", nil, style.Length{}},
	}
	for _, tt := range tests {
		c := Parse(tt.token)
		if tt.get == nil {
			if c.Len() != 0 {
				t.Errorf("Parse(%q) recognized an invalid length", tt.token)
			}
			continue
		}
		s := c.Style(metrics(0))
		got, ok := tt.get(&s).Get()
		if !ok || got != tt.want {
			t.Errorf("Parse(%q) = %v (set %v), want %v", tt.token, got, ok, tt.want)
		}
	}
}

func TestColors(t *testing.T) {
	s := Parse("bg-sky-500 text-red-500/50 border-current").Style(metrics(0))
	if got, _ := s.BackgroundColor.Get(); got != style.ColorOf(style.RGB(0x0e, 0xa5, 0xe9)) {
		t.Errorf("background = %v", got)
	}
	if got, _ := s.Color.Get(); got.Value.A != 128 || got.Value.R != 0xef {
		t.Errorf("color = %v, want red-500 at half alpha", got)
	}
	if got, _ := s.BorderColor.Left.Get(); !got.Current {
		t.Errorf("border color = %v, want currentColor", got)
	}
	if _, ok := s.BorderWidth.Left.Get(); ok {
		t.Error("border-current set a border width")
	}
}

func TestTextSizeSetsLeading(t *testing.T) {
	s := Parse("text-lg").Style(metrics(0))
	if got, _ := s.FontSize.Get(); got != style.Rem(1.125) {
		t.Errorf("font size = %v", got)
	}
	if lh, ok := s.LineHeight.Get(); !ok || lh.Factor == 0 {
		t.Errorf("line height = %+v, want a factor", lh)
	}

	s = Parse("text-sm/6").Style(metrics(0))
	if lh, _ := s.LineHeight.Get(); lh != style.LineHeightLength(style.Rem(1.5)) {
		t.Errorf("text-sm/6 line height = %+v, want 1.5rem", lh)
	}

	s = Parse("text-xl leading-none").Style(metrics(0))
	if lh, _ := s.LineHeight.Get(); lh != style.LineHeightFactor(1) {
		t.Errorf("leading-none after text-xl = %+v", lh)
	}
}

func TestFixedUtilities(t *testing.T) {
	s := Parse("flex flex-col items-center justify-between font-bold italic uppercase truncate").Style(metrics(0))
	if d, _ := s.Display.Get(); d != style.DisplayFlex {
		t.Errorf("display = %v", d)
	}
	if d, _ := s.FlexDirection.Get(); d != style.FlexDirectionColumn {
		t.Errorf("flex-direction = %v", d)
	}
	if a, _ := s.AlignItems.Get(); a != style.AlignItemsCenter {
		t.Errorf("align-items = %v", a)
	}
	if j, _ := s.JustifyContent.Get(); j != style.JustifyContentSpaceBetween {
		t.Errorf("justify-content = %v", j)
	}
	if w, _ := s.FontWeight.Get(); w != style.WeightBold {
		t.Errorf("font-weight = %v", w)
	}
	if f, _ := s.FontStyle.Get(); f != style.FontStyleItalic {
		t.Errorf("font-style = %v", f)
	}
	if o, _ := s.TextOverflow.Get(); o != style.TextOverflowEllipsis {
		t.Errorf("text-overflow = %v", o)
	}
	if w, _ := s.WhiteSpace.Get(); w != style.WhiteSpaceNoWrap {
		t.Errorf("white-space = %v", w)
	}
}

func TestEffects(t *testing.T) {
	s := Parse("opacity-50 blur-sm grayscale -rotate-45 scale-150 translate-x-4 mix-blend-multiply").Style(metrics(0))
	if o, _ := s.Opacity.Get(); o != 0.5 {
		t.Errorf("opacity = %v", o)
	}
	f, _ := s.Filter.Get()
	if len(f) != 2 || f[0].Kind != style.FilterBlur || f[1].Kind != style.FilterGrayscale {
		t.Errorf("filter = %+v", f)
	}
	if r, _ := s.Rotate.Get(); r != -45 {
		t.Errorf("rotate = %v", r)
	}
	if sc, _ := s.Scale.Get(); sc != (style.Scaling{X: 1.5, Y: 1.5}) {
		t.Errorf("scale = %v", sc)
	}
	if tr, _ := s.Translate.Get(); tr.X != style.Rem(1) || tr.Y != style.Px(0) {
		t.Errorf("translate = %v", tr)
	}
	if m, _ := s.MixBlendMode.Get(); m != style.BlendModeMultiply {
		t.Errorf("mix-blend-mode = %v", m)
	}
}

func TestNoise(t *testing.T) {
	s := Parse("noise-7 noise-opacity-30").Style(metrics(0))
	imgs, _ := s.BackgroundImage.Get()
	if len(imgs) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(imgs))
	}
	n, ok := imgs[0].(style.Noise)
	if !ok || n.Seed != 7 || n.Opacity != 0.3 {
		t.Errorf("noise = %#v", imgs[0])
	}

	s = Parse("noise").Style(metrics(0))
	imgs, _ = s.BackgroundImage.Get()
	if n, ok := imgs[0].(style.Noise); !ok || n.Opacity != style.DefaultNoiseOpacity {
		t.Errorf("bare noise = %#v", imgs[0])
	}
}

func TestUnknownTokens(t *testing.T) {
	c := Parse("p-4 wobble xx:p-2 text-nonsense-9")
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if got := c.Unknown(); len(got) != 3 {
		t.Errorf("Unknown() = %v, want 3 tokens", got)
	}
}

func TestRegister(t *testing.T) {
	RegisterFixed("test-card", func(s *style.Style) {
		s.Padding = style.SomeSides(style.AllSides(style.Px(24)))
	})
	s := Parse("test-card").Style(metrics(0))
	if p, _ := s.Padding.Top.Get(); p != style.Px(24) {
		t.Errorf("padding = %v", p)
	}
}

func TestGridUtilities(t *testing.T) {
	s := Parse("grid grid-cols-3 grid-rows-[40px_1fr] gap-2").Style(metrics(0))
	if d, _ := s.Display.Get(); d != style.DisplayGrid {
		t.Errorf("display = %v, want grid", d)
	}
	cols, _ := s.GridTemplateColumns.Get()
	if len(cols) != 3 || cols[0] != style.Fr(1) {
		t.Errorf("grid-template-columns = %v, want 3 equal fractions", cols)
	}
	rows, _ := s.GridTemplateRows.Get()
	if len(rows) != 2 || rows[0] != style.Track(style.Px(40)) || rows[1] != style.Fr(1) {
		t.Errorf("grid-template-rows = %v, want [40px 1fr]", rows)
	}

	for _, bad := range []string{"grid-cols-x", "-grid-cols-2", "grid-cols-0"} {
		if s := Parse(bad).Style(metrics(0)); s.GridTemplateColumns.IsSet() {
			t.Errorf("Parse(%q) set grid-template-columns", bad)
		}
	}
}
