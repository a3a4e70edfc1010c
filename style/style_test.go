package style

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/nodeimg/geom"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{"12px", Px(12), false},
		{"50%", Percent(50), false},
		{"1.5rem", Rem(1.5), false},
		{"-2em", Em(-2), false},
		{"auto", Auto, false},
		{"0", Px(0), false},
		{"10vmin", Length{10, UnitVmin}, false},
		{"3furlongs", Length{}, true},
		{"px", Length{}, true},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLengthResolve(t *testing.T) {
	m := Metrics{FontSize: 20, RootFontSize: 16, ViewportWidth: 1000, ViewportHeight: 500, DPR: 2}
	tests := []struct {
		l    Length
		base float32
		want float32
	}{
		{Px(10), 0, 20},
		{Percent(25), 400, 100},
		{Em(2), 0, 40},
		{Rem(1), 0, 32},
		{Vw(10), 0, 100},
		{Vh(10), 0, 50},
		{Length{10, UnitVmax}, 0, 100},
		{Length{1, UnitIn}, 0, 192},
		{Auto, 100, 0},
	}
	for _, tt := range tests {
		if got := tt.l.Resolve(m, tt.base); math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("%v.Resolve = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#ff000080", Color{255, 0, 0, 128}},
		{"#0f08", Color{0, 255, 0, 136}},
		{"rgb(10, 20, 30)", RGB(10, 20, 30)},
		{"rgba(255 0 0 / 50%)", Color{255, 0, 0, 128}},
		{"transparent", Transparent},
		{"Navy", RGB(0, 0, 128)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Error("ParseColor(#12) did not fail")
	}
	ci, err := ParseColorInput("currentColor")
	if err != nil || !ci.Current {
		t.Errorf("ParseColorInput(currentColor) = %+v, %v", ci, err)
	}
}

func TestColorPremultiply(t *testing.T) {
	got := Color{255, 128, 0, 128}.RGBA()
	if got.R != 128 || got.G != 64 || got.A != 128 {
		t.Errorf("RGBA() = %v", got)
	}
}

func TestMergeLaterLayerWins(t *testing.T) {
	preset := &Style{Width: Some(Px(10)), Color: Some(ColorOf(Black))}
	derived := &Style{Width: Some(Px(20)), Padding: Sides[Optional[Length]]{Top: Some(Px(4))}}
	inline := &Style{Padding: Sides[Optional[Length]]{Left: Some(Px(8))}}

	got := MergeAll(preset, derived, inline)

	if w, _ := got.Width.Get(); w != Px(20) {
		t.Errorf("Width = %v, want 20px", w)
	}
	if c, _ := got.Color.Get(); c != ColorOf(Black) {
		t.Errorf("Color = %v, want black from preset", c)
	}
	if v, _ := got.Padding.Top.Get(); v != Px(4) {
		t.Errorf("Padding.Top = %v, want 4px", v)
	}
	if v, _ := got.Padding.Left.Get(); v != Px(8) {
		t.Errorf("Padding.Left = %v, want 8px", v)
	}
	if got.Padding.Right.IsSet() {
		t.Error("Padding.Right set, want unset")
	}
}

func TestMergeFoldsPairwise(t *testing.T) {
	a := &Style{Width: Some(Px(1)), Opacity: Some[float32](0.5)}
	b := &Style{Width: Some(Px(2)), FontSize: Some(Px(12))}
	c := &Style{Opacity: Some[float32](0.25)}

	all := MergeAll(a, b, c)
	ab := MergeAll(a, b)
	pair := MergeAll(&ab, c)
	again := MergeAll(&all, &all)

	opts := cmp.AllowUnexported(Optional[Length]{}, Optional[float32]{})
	if diff := cmp.Diff(all.Width, pair.Width, opts); diff != "" {
		t.Errorf("Width differs (-all +pair):\n%s", diff)
	}
	if all.Opacity != pair.Opacity || all.FontSize != pair.FontSize {
		t.Error("pairwise fold differs from MergeAll")
	}
	if again.Width != all.Width || again.Opacity != all.Opacity {
		t.Error("merging a style with itself changed it")
	}
}

func TestResolveInheritance(t *testing.T) {
	m := Metrics{RootFontSize: 16, DPR: 1}
	root := Initial(m)

	parent := Resolve(&Style{
		Color:     Some(ColorOf(RGB(255, 0, 0))),
		FontSize:  Some(Px(20)),
		Padding:   SomeSides(AllSides(Px(5))),
		TextAlign: Some(TextAlignCenter),
	}, &root, m)

	child := Resolve(&Style{FontSize: Some(Em(1.5))}, &parent, m)

	if child.Color != RGB(255, 0, 0) {
		t.Errorf("child Color = %v, want inherited red", child.Color)
	}
	if child.FontSize != 30 {
		t.Errorf("child FontSize = %v, want 30", child.FontSize)
	}
	if child.TextAlign != TextAlignCenter {
		t.Errorf("child TextAlign = %v, want center", child.TextAlign)
	}
	if child.Padding.Top != Px(0) {
		t.Errorf("child Padding.Top = %v, want initial 0px", child.Padding.Top)
	}
	if child.Opacity != 1 || child.Display != DisplayFlex || child.FlexShrink != 1 {
		t.Errorf("child defaults wrong: opacity %v display %v shrink %v", child.Opacity, child.Display, child.FlexShrink)
	}
}

func TestResolveCurrentColor(t *testing.T) {
	m := Metrics{RootFontSize: 16, DPR: 1}
	root := Initial(m)
	root.Color = RGB(0, 0, 255)

	got := Resolve(&Style{Color: Some(CurrentColor())}, &root, m)
	if got.Color != RGB(0, 0, 255) {
		t.Errorf("Color = %v, want parent blue", got.Color)
	}
	if got.BorderColor.Top.Resolve(got.Color) != RGB(0, 0, 255) {
		t.Error("border color does not default to currentColor")
	}
}

func TestInitialScalesFontByDPR(t *testing.T) {
	s := Initial(Metrics{RootFontSize: 16, DPR: 2})
	if s.FontSize != 32 {
		t.Errorf("FontSize = %v, want 32", s.FontSize)
	}
	if s.LineHeight.Resolve(Metrics{}, s.FontSize) != 32*DefaultLineHeight {
		t.Error("normal line height is not 1.2 times the font size")
	}
}

func TestUnmarshalStyle(t *testing.T) {
	const doc = `{
		"width": 100,
		"height": "50%",
		"padding": "4px 8px",
		"borderRadius": "6px",
		"display": "block",
		"color": "#ff0000",
		"backgroundImage": [
			{"type": "linear-gradient", "angle": 90, "stops": [{"color": "red"}, {"color": "blue", "position": "100%"}]},
			"https://example.com/a.png",
			{"type": "noise", "seed": 3}
		],
		"lineHeight": 1.5,
		"fontWeight": "bold",
		"textDecorationLine": "underline line-through",
		"transformOrigin": "left top"
	}`
	var s Style
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w, _ := s.Width.Get(); w != Px(100) {
		t.Errorf("Width = %v", w)
	}
	if h, _ := s.Height.Get(); h != Percent(50) {
		t.Errorf("Height = %v", h)
	}
	if v, _ := s.Padding.Right.Get(); v != Px(8) {
		t.Errorf("Padding.Right = %v", v)
	}
	if v, _ := s.Padding.Bottom.Get(); v != Px(4) {
		t.Errorf("Padding.Bottom = %v", v)
	}
	if v, _ := s.BorderRadius.BottomLeft.Get(); v != Px(6) {
		t.Errorf("BorderRadius.BottomLeft = %v", v)
	}
	if d, _ := s.Display.Get(); d != DisplayBlock {
		t.Errorf("Display = %v", d)
	}
	imgs, _ := s.BackgroundImage.Get()
	if len(imgs) != 3 {
		t.Fatalf("len(BackgroundImage) = %d, want 3", len(imgs))
	}
	if g, ok := imgs[0].(*LinearGradient); !ok || g.Angle != 90 || len(g.Stops) != 2 {
		t.Errorf("layer 0 = %#v", imgs[0])
	}
	if u, ok := imgs[1].(URL); !ok || u != "https://example.com/a.png" {
		t.Errorf("layer 1 = %#v", imgs[1])
	}
	if n, ok := imgs[2].(Noise); !ok || n.Seed != 3 || n.Opacity != DefaultNoiseOpacity {
		t.Errorf("layer 2 = %#v", imgs[2])
	}
	if lh, _ := s.LineHeight.Get(); lh != LineHeightFactor(1.5) {
		t.Errorf("LineHeight = %+v", lh)
	}
	if fw, _ := s.FontWeight.Get(); fw != WeightBold {
		t.Errorf("FontWeight = %v", fw)
	}
	if dl, _ := s.TextDecorationLine.Get(); !dl.Has(Underline|LineThrough) || dl.Has(Overline) {
		t.Errorf("TextDecorationLine = %v", dl)
	}
	if o, _ := s.TransformOrigin.Get(); o != TopLeft {
		t.Errorf("TransformOrigin = %v", o)
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"center", Center},
		{"left top", TopLeft},
		{"top left", TopLeft},
		{"bottom", Anchor{Percent(50), Percent(100)}},
		{"25% 10px", Anchor{Percent(25), Px(10)}},
	}
	for _, tt := range tests {
		got, err := ParseAnchor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAnchor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestTransformOpAffine(t *testing.T) {
	m := Metrics{DPR: 1}
	box := geom.Size{W: 200, H: 100}
	tr := TransformOp{Kind: TransformTranslate, X: Percent(50), Y: Px(10)}
	if p := tr.Affine(m, box).Apply(geom.Pt(0, 0)); p != geom.Pt(100, 10) {
		t.Errorf("translate(50%%, 10px) moved origin to %v", p)
	}
	sc := TransformOp{Kind: TransformScale, SX: 2, SY: 3}
	if p := sc.Affine(m, box).Apply(geom.Pt(1, 1)); p != geom.Pt(2, 3) {
		t.Errorf("scale(2, 3) mapped (1,1) to %v", p)
	}
}

func TestKeywords(t *testing.T) {
	if v, err := ParseBlendMode("color-dodge"); err != nil || v != BlendModeColorDodge {
		t.Errorf("ParseBlendMode = %v, %v", v, err)
	}
	if _, err := ParseObjectFit("squash"); err == nil {
		t.Error("ParseObjectFit(squash) did not fail")
	}
	if BlendModePlusDarker.String() != "plus-darker" {
		t.Errorf("String() = %q", BlendModePlusDarker.String())
	}
}
