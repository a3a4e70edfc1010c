package tw

import (
	"strings"

	"github.com/gogpu/nodeimg/style"
)

func init() {
	registerLayout()
	registerBox()
	registerText()
	registerBackground()
	registerEffects()
	registerTransform()
	registerNoise()
}

type lengthField func(s *style.Style) *style.Optional[style.Length]

func lengths(fields map[string]lengthField) {
	for prefix, field := range fields {
		Register(prefix, utility(spacing, func(s *style.Style, l style.Length) {
			*field(s) = style.Some(l)
		}))
	}
}

func fixedDisplay(name string, d style.Display) {
	RegisterFixed(name, func(s *style.Style) { s.Display = style.Some(d) })
}

func registerLayout() {
	fixedDisplay("flex", style.DisplayFlex)
	fixedDisplay("block", style.DisplayBlock)
	fixedDisplay("inline", style.DisplayInline)
	fixedDisplay("hidden", style.DisplayNone)
	fixedDisplay("grid", style.DisplayGrid)
	Register("grid-cols", utility(gridTracks, func(s *style.Style, g style.GridTracks) { s.GridTemplateColumns = style.Some(g) }))
	Register("grid-rows", utility(gridTracks, func(s *style.Style, g style.GridTracks) { s.GridTemplateRows = style.Some(g) }))

	RegisterFixed("relative", func(s *style.Style) { s.Position = style.Some(style.PositionRelative) })
	RegisterFixed("absolute", func(s *style.Style) { s.Position = style.Some(style.PositionAbsolute) })
	RegisterFixed("box-border", func(s *style.Style) { s.BoxSizing = style.Some(style.BoxSizingBorderBox) })
	RegisterFixed("box-content", func(s *style.Style) { s.BoxSizing = style.Some(style.BoxSizingContentBox) })

	lengths(map[string]lengthField{
		"w":     func(s *style.Style) *style.Optional[style.Length] { return &s.Width },
		"h":     func(s *style.Style) *style.Optional[style.Length] { return &s.Height },
		"min-w": func(s *style.Style) *style.Optional[style.Length] { return &s.MinWidth },
		"min-h": func(s *style.Style) *style.Optional[style.Length] { return &s.MinHeight },
		"max-w": func(s *style.Style) *style.Optional[style.Length] { return &s.MaxWidth },
		"max-h": func(s *style.Style) *style.Optional[style.Length] { return &s.MaxHeight },
		"basis": func(s *style.Style) *style.Optional[style.Length] { return &s.FlexBasis },
		"gap-x": func(s *style.Style) *style.Optional[style.Length] { return &s.ColumnGap },
		"gap-y": func(s *style.Style) *style.Optional[style.Length] { return &s.RowGap },
	})
	Register("size", utility(spacing, func(s *style.Style, l style.Length) {
		s.Width, s.Height = style.Some(l), style.Some(l)
	}))
	Register("gap", utility(spacing, func(s *style.Style, l style.Length) {
		s.RowGap, s.ColumnGap = style.Some(l), style.Some(l)
	}))
	for _, screen := range []struct {
		name string
		set  func(s *style.Style)
	}{
		{"w-screen", func(s *style.Style) { s.Width = style.Some(style.Vw(100)) }},
		{"h-screen", func(s *style.Style) { s.Height = style.Some(style.Vh(100)) }},
		{"min-w-screen", func(s *style.Style) { s.MinWidth = style.Some(style.Vw(100)) }},
		{"min-h-screen", func(s *style.Style) { s.MinHeight = style.Some(style.Vh(100)) }},
		{"max-w-screen", func(s *style.Style) { s.MaxWidth = style.Some(style.Vw(100)) }},
		{"max-h-screen", func(s *style.Style) { s.MaxHeight = style.Some(style.Vh(100)) }},
	} {
		RegisterFixed(screen.name, screen.set)
	}

	for name, e := range map[string]edges{
		"inset": allEdges, "inset-x": xEdges, "inset-y": yEdges,
		"top": top, "right": right, "bottom": bottom, "left": left,
	} {
		Register(name, utility(spacing, func(s *style.Style, l style.Length) { setEdges(&s.Inset, l, e) }))
	}

	Register("grow", utility(number, func(s *style.Style, n float32) { s.FlexGrow = style.Some(n) }))
	Register("shrink", utility(number, func(s *style.Style, n float32) { s.FlexShrink = style.Some(n) }))
	RegisterFixed("grow", func(s *style.Style) { s.FlexGrow = style.Some[float32](1) })
	RegisterFixed("shrink", func(s *style.Style) { s.FlexShrink = style.Some[float32](1) })
	Register("flex", utility(number, func(s *style.Style, n float32) {
		s.FlexGrow, s.FlexShrink, s.FlexBasis = style.Some(n), style.Some[float32](1), style.Some(style.Percent(0))
	}))
	flexShorthand := func(name string, grow, shrink float32, basis style.Length) {
		RegisterFixed(name, func(s *style.Style) {
			s.FlexGrow, s.FlexShrink, s.FlexBasis = style.Some(grow), style.Some(shrink), style.Some(basis)
		})
	}
	flexShorthand("flex-auto", 1, 1, style.Auto)
	flexShorthand("flex-initial", 0, 1, style.Auto)
	flexShorthand("flex-none", 0, 0, style.Auto)

	for name, d := range map[string]style.FlexDirection{
		"flex-row": style.FlexDirectionRow, "flex-row-reverse": style.FlexDirectionRowReverse,
		"flex-col": style.FlexDirectionColumn, "flex-col-reverse": style.FlexDirectionColumnReverse,
	} {
		RegisterFixed(name, func(s *style.Style) { s.FlexDirection = style.Some(d) })
	}
	for name, w := range map[string]style.FlexWrap{
		"flex-wrap": style.FlexWrapWrap, "flex-wrap-reverse": style.FlexWrapWrapReverse, "flex-nowrap": style.FlexWrapNoWrap,
	} {
		RegisterFixed(name, func(s *style.Style) { s.FlexWrap = style.Some(w) })
	}

	justify := keyword(map[string]style.JustifyContent{
		"normal": style.JustifyContentNormal, "start": style.JustifyContentFlexStart, "end": style.JustifyContentFlexEnd,
		"center": style.JustifyContentCenter, "between": style.JustifyContentSpaceBetween,
		"around": style.JustifyContentSpaceAround, "evenly": style.JustifyContentSpaceEvenly,
		"stretch": style.JustifyContentStretch,
	})
	Register("justify", utility(justify, func(s *style.Style, j style.JustifyContent) { s.JustifyContent = style.Some(j) }))
	Register("content", utility(justify, func(s *style.Style, j style.JustifyContent) { s.AlignContent = style.Some(j) }))

	align := keyword(map[string]style.AlignItems{
		"auto": style.AlignItemsNormal, "start": style.AlignItemsFlexStart, "end": style.AlignItemsFlexEnd,
		"center": style.AlignItemsCenter, "baseline": style.AlignItemsBaseline, "stretch": style.AlignItemsStretch,
	})
	Register("items", utility(align, func(s *style.Style, a style.AlignItems) { s.AlignItems = style.Some(a) }))
	Register("self", utility(align, func(s *style.Style, a style.AlignItems) { s.AlignSelf = style.Some(a) }))

	overflow := keyword(map[string]style.Overflow{
		"visible": style.OverflowVisible, "hidden": style.OverflowHidden, "clip": style.OverflowClip,
	})
	Register("overflow", utility(overflow, func(s *style.Style, o style.Overflow) {
		s.OverflowX, s.OverflowY = style.Some(o), style.Some(o)
	}))
	Register("overflow-x", utility(overflow, func(s *style.Style, o style.Overflow) { s.OverflowX = style.Some(o) }))
	Register("overflow-y", utility(overflow, func(s *style.Style, o style.Overflow) { s.OverflowY = style.Some(o) }))

	aspect := func(v Value) (float32, bool) {
		switch v.Suffix {
		case "square":
			return 1, true
		case "video":
			return 16.0 / 9.0, true
		}
		s := v.Suffix
		if raw, ok := v.Arbitrary(); ok {
			s = strings.ReplaceAll(raw, " ", "")
		}
		if p, ok := parseFraction(s); ok {
			return p / 100, true
		}
		return parseNumber(s)
	}
	Register("aspect", utility(aspect, func(s *style.Style, r float32) { s.AspectRatio = style.Some(r) }))
	RegisterFixed("aspect-auto", func(s *style.Style) { s.AspectRatio = style.Optional[float32]{} })
}

func registerBox() {
	for name, e := range map[string]edges{
		"p": allEdges, "px": xEdges, "py": yEdges, "pt": top, "pr": right, "pb": bottom, "pl": left,
		"ps": left, "pe": right,
	} {
		Register(name, utility(spacing, func(s *style.Style, l style.Length) { setEdges(&s.Padding, l, e) }))
	}
	for name, e := range map[string]edges{
		"m": allEdges, "mx": xEdges, "my": yEdges, "mt": top, "mr": right, "mb": bottom, "ml": left,
		"ms": left, "me": right,
	} {
		Register(name, utility(spacing, func(s *style.Style, l style.Length) { setEdges(&s.Margin, l, e) }))
	}

	RegisterFixed("border", func(s *style.Style) { setEdges(&s.BorderWidth, style.Px(1), allEdges) })
	for name, e := range map[string]edges{
		"border": allEdges, "border-x": xEdges, "border-y": yEdges,
		"border-t": top, "border-r": right, "border-b": bottom, "border-l": left,
	} {
		Register(name, utility(color, func(s *style.Style, c style.ColorInput) { setEdges(&s.BorderColor, c, e) }))
		Register(name, utility(borderWidth, func(s *style.Style, l style.Length) { setEdges(&s.BorderWidth, l, e) }))
		if name != "border" {
			RegisterFixed(name, func(s *style.Style) { setEdges(&s.BorderWidth, style.Px(1), e) })
		}
	}

	RegisterFixed("rounded", func(s *style.Style) { setCorners(&s.BorderRadius, style.Rem(0.25), topLeft|topRight|bottomRight|bottomLeft) })
	for name, c := range map[string]corners{
		"rounded":    topLeft | topRight | bottomRight | bottomLeft,
		"rounded-t":  topLeft | topRight,
		"rounded-r":  topRight | bottomRight,
		"rounded-b":  bottomLeft | bottomRight,
		"rounded-l":  topLeft | bottomLeft,
		"rounded-tl": topLeft,
		"rounded-tr": topRight,
		"rounded-br": bottomRight,
		"rounded-bl": bottomLeft,
	} {
		Register(name, utility(radius, func(s *style.Style, l style.Length) { setCorners(&s.BorderRadius, l, c) }))
	}
}

func registerText() {
	Register("text", utility(textSize, func(s *style.Style, fs fontSize) {
		s.FontSize = style.Some(fs.size)
		s.LineHeight.Merge(fs.lead)
	}))
	Register("text", utility(color, func(s *style.Style, c style.ColorInput) { s.Color = style.Some(c) }))
	Register("text", utility(keyword(map[string]style.TextAlign{
		"left": style.TextAlignLeft, "center": style.TextAlignCenter, "right": style.TextAlignRight,
		"justify": style.TextAlignJustify, "start": style.TextAlignStart, "end": style.TextAlignEnd,
	}), func(s *style.Style, a style.TextAlign) { s.TextAlign = style.Some(a) }))

	Register("font", utility(fontWeight, func(s *style.Style, w style.FontWeight) { s.FontWeight = style.Some(w) }))
	Register("font", utility(fontFamily, func(s *style.Style, f []string) { s.FontFamily = style.Some(f) }))
	Register("leading", utility(lineHeight, func(s *style.Style, lh style.LineHeight) { s.LineHeight = style.Some(lh) }))

	tracking := func(v Value) (style.Length, bool) {
		em, ok := map[string]float32{
			"tighter": -0.05, "tight": -0.025, "normal": 0, "wide": 0.025, "wider": 0.05, "widest": 0.1,
		}[v.Suffix]
		if ok {
			return negate(style.Em(em), v.Negative), true
		}
		if raw, ok := v.Arbitrary(); ok {
			l, err := style.ParseLength(raw)
			return negate(l, v.Negative), err == nil
		}
		return style.Length{}, false
	}
	Register("tracking", utility(tracking, func(s *style.Style, l style.Length) { s.LetterSpacing = style.Some(l) }))

	Register("line-clamp", utility(func(v Value) (int, bool) {
		n, ok := number(v)
		return int(n), ok && n > 0 && n == float32(int(n))
	}, func(s *style.Style, n int) {
		s.LineClamp = style.Some(style.LineClamp{Count: n})
		s.OverflowX, s.OverflowY = style.Some(style.OverflowHidden), style.Some(style.OverflowHidden)
	}))
	RegisterFixed("line-clamp-none", func(s *style.Style) { s.LineClamp = style.Optional[style.LineClamp]{} })

	Register("whitespace", utility(keyword(map[string]style.WhiteSpace{
		"normal": style.WhiteSpaceNormal, "nowrap": style.WhiteSpaceNoWrap, "pre": style.WhiteSpacePre,
		"pre-line": style.WhiteSpacePreLine, "pre-wrap": style.WhiteSpacePreWrap,
	}), func(s *style.Style, w style.WhiteSpace) { s.WhiteSpace = style.Some(w) }))
	Register("wrap", utility(keyword(map[string]style.OverflowWrap{
		"normal": style.OverflowWrapNormal, "break-word": style.OverflowWrapBreakWord, "anywhere": style.OverflowWrapAnywhere,
	}), func(s *style.Style, w style.OverflowWrap) { s.OverflowWrap = style.Some(w) }))

	fixedText := map[string]Apply{
		"uppercase":     func(s *style.Style) { s.TextTransform = style.Some(style.TextTransformUppercase) },
		"lowercase":     func(s *style.Style) { s.TextTransform = style.Some(style.TextTransformLowercase) },
		"capitalize":    func(s *style.Style) { s.TextTransform = style.Some(style.TextTransformCapitalize) },
		"normal-case":   func(s *style.Style) { s.TextTransform = style.Some(style.TextTransformNone) },
		"italic":        func(s *style.Style) { s.FontStyle = style.Some(style.FontStyleItalic) },
		"not-italic":    func(s *style.Style) { s.FontStyle = style.Some(style.FontStyleNormal) },
		"text-ellipsis": func(s *style.Style) { s.TextOverflow = style.Some(style.TextOverflowEllipsis) },
		"text-clip":     func(s *style.Style) { s.TextOverflow = style.Some(style.TextOverflowClip) },
		"text-wrap":     func(s *style.Style) { s.TextWrap = style.Some(style.TextWrapWrap) },
		"text-nowrap":   func(s *style.Style) { s.TextWrap = style.Some(style.TextWrapNoWrap) },
		"text-balance":  func(s *style.Style) { s.TextWrap = style.Some(style.TextWrapBalance) },
		"break-normal":  func(s *style.Style) { s.WordBreak = style.Some(style.WordBreakNormal) },
		"break-all":     func(s *style.Style) { s.WordBreak = style.Some(style.WordBreakBreakAll) },
		"break-keep":    func(s *style.Style) { s.WordBreak = style.Some(style.WordBreakKeepAll) },
		"break-words":   func(s *style.Style) { s.OverflowWrap = style.Some(style.OverflowWrapBreakWord) },
		"underline":     func(s *style.Style) { s.TextDecorationLine = style.Some(style.Underline) },
		"overline":      func(s *style.Style) { s.TextDecorationLine = style.Some(style.Overline) },
		"line-through":  func(s *style.Style) { s.TextDecorationLine = style.Some(style.LineThrough) },
		"no-underline":  func(s *style.Style) { s.TextDecorationLine = style.Some(style.DecorationLine(0)) },
		"truncate": func(s *style.Style) {
			s.OverflowX, s.OverflowY = style.Some(style.OverflowHidden), style.Some(style.OverflowHidden)
			s.TextOverflow = style.Some(style.TextOverflowEllipsis)
			s.WhiteSpace = style.Some(style.WhiteSpaceNoWrap)
		},
	}
	for name, fn := range fixedText {
		RegisterFixed(name, fn)
	}

	Register("decoration", utility(color, func(s *style.Style, c style.ColorInput) { s.TextDecorationColor = style.Some(c) }))
	Register("decoration", utility(borderWidth, func(s *style.Style, l style.Length) { s.TextDecorationThickness = style.Some(l) }))
	Register("stroke", utility(color, func(s *style.Style, c style.ColorInput) { s.TextStrokeColor = style.Some(c) }))
	Register("stroke", utility(borderWidth, func(s *style.Style, l style.Length) { s.TextStrokeWidth = style.Some(l) }))
}

func registerBackground() {
	Register("bg", utility(color, func(s *style.Style, c style.ColorInput) { s.BackgroundColor = style.Some(c) }))
	Register("bg", utility(func(v Value) (style.Anchor, bool) {
		if _, ok := v.Arbitrary(); ok {
			return style.Anchor{}, false
		}
		return anchor(v)
	}, func(s *style.Style, a style.Anchor) { s.BackgroundPosition = style.Some([]style.Anchor{a}) }))
	Register("bg", utility(keyword(map[string]style.BackgroundSize{
		"auto": style.SizeAuto, "cover": {Kind: style.SizeCover}, "contain": {Kind: style.SizeContain},
	}), func(s *style.Style, b style.BackgroundSize) { s.BackgroundSize = style.Some([]style.BackgroundSize{b}) }))
	Register("bg", utility(keyword(map[string]style.BackgroundRepeat{
		"repeat": style.BackgroundRepeatRepeat, "no-repeat": style.BackgroundRepeatNoRepeat,
		"repeat-x": style.BackgroundRepeatRepeatX, "repeat-y": style.BackgroundRepeatRepeatY,
	}), func(s *style.Style, r style.BackgroundRepeat) { s.BackgroundRepeat = style.Some([]style.BackgroundRepeat{r}) }))
	Register("bg", utility(func(v Value) (style.URL, bool) {
		raw, ok := v.Arbitrary()
		if !ok {
			return "", false
		}
		inner, ok := strings.CutPrefix(raw, "url(")
		if !ok || !strings.HasSuffix(inner, ")") {
			return "", false
		}
		return style.URL(strings.Trim(inner[:len(inner)-1], `"'`)), true
	}, func(s *style.Style, u style.URL) { s.BackgroundImage = style.Some(style.Images{u}) }))
	RegisterFixed("bg-none", func(s *style.Style) { s.BackgroundImage = style.Some(style.Images(nil)) })

	Register("bg-clip", utility(keyword(map[string]style.BackgroundClip{
		"border": style.BackgroundClipBorderBox, "padding": style.BackgroundClipPaddingBox, "content": style.BackgroundClipContentBox,
	}), func(s *style.Style, c style.BackgroundClip) { s.BackgroundClip = style.Some(c) }))

	Register("object", utility(keyword(map[string]style.ObjectFit{
		"contain": style.ObjectFitContain, "cover": style.ObjectFitCover, "fill": style.ObjectFitFill,
		"none": style.ObjectFitNone, "scale-down": style.ObjectFitScaleDown,
	}), func(s *style.Style, f style.ObjectFit) { s.ObjectFit = style.Some(f) }))
	Register("object", utility(anchor, func(s *style.Style, a style.Anchor) { s.ObjectPosition = style.Some(a) }))
}

func shadow(blur float32, alpha uint8) Apply {
	return func(s *style.Style) {
		s.BoxShadow = style.Some([]style.BoxShadow{{
			OffsetX: style.Px(1),
			OffsetY: style.Px(1),
			Blur:    style.Px(blur),
			Spread:  style.Px(0),
			Color:   style.ColorOf(style.Color{A: alpha}),
		}})
	}
}

var blurs = map[string]float32{"xs": 4, "sm": 8, "md": 12, "lg": 16, "xl": 24, "2xl": 40, "3xl": 64}

func registerEffects() {
	RegisterFixed("shadow-sm", shadow(1, 6))
	RegisterFixed("shadow", shadow(1, 19))
	RegisterFixed("shadow-md", shadow(3, 32))
	RegisterFixed("shadow-lg", shadow(8, 38))
	RegisterFixed("shadow-xl", shadow(20, 48))
	RegisterFixed("shadow-2xl", shadow(30, 64))
	RegisterFixed("shadow-none", func(s *style.Style) { s.BoxShadow = style.Some([]style.BoxShadow(nil)) })

	Register("opacity", utility(percentage, func(s *style.Style, f float32) { s.Opacity = style.Some(f) }))

	Register("mix-blend", utility(func(v Value) (style.BlendMode, bool) {
		m, err := style.ParseBlendMode(v.Suffix)
		return m, err == nil && !v.Negative
	}, func(s *style.Style, m style.BlendMode) { s.MixBlendMode = style.Some(m) }))
	RegisterFixed("isolate", func(s *style.Style) { s.Isolation = style.Some(style.IsolationIsolate) })
	RegisterFixed("isolation-auto", func(s *style.Style) { s.Isolation = style.Some(style.IsolationAuto) })

	for _, pipeline := range []struct {
		prefix string
		field  func(s *style.Style) *style.Optional[[]style.Filter]
	}{
		{"", func(s *style.Style) *style.Optional[[]style.Filter] { return &s.Filter }},
		{"backdrop-", func(s *style.Style) *style.Optional[[]style.Filter] { return &s.BackdropFilter }},
	} {
		field := pipeline.field
		add := func(name string, parse func(Value) (style.Filter, bool)) {
			Register(pipeline.prefix+name, utility(parse, func(s *style.Style, f style.Filter) { appendFilter(field(s), f) }))
		}
		RegisterFixed(pipeline.prefix+"blur", func(s *style.Style) { appendFilter(field(s), style.Blur(style.Px(8))) })
		add("blur", func(v Value) (style.Filter, bool) {
			if px, ok := blurs[v.Suffix]; ok && !v.Negative {
				return style.Blur(style.Px(px)), true
			}
			if raw, ok := v.Arbitrary(); ok && !v.Negative {
				l, err := style.ParseLength(raw)
				return style.Blur(l), err == nil
			}
			return style.Filter{}, false
		})
		for name, kind := range map[string]style.FilterKind{
			"brightness": style.FilterBrightness, "contrast": style.FilterContrast, "saturate": style.FilterSaturate,
			"grayscale": style.FilterGrayscale, "invert": style.FilterInvert, "sepia": style.FilterSepia,
			"opacity": style.FilterOpacity,
		} {
			if pipeline.prefix == "" && name == "opacity" {
				continue
			}
			add(name, func(v Value) (style.Filter, bool) {
				f, ok := percentage(v)
				return style.FilterOf(kind, f), ok && !v.Negative
			})
		}
		for name, kind := range map[string]style.FilterKind{
			"grayscale": style.FilterGrayscale, "invert": style.FilterInvert, "sepia": style.FilterSepia,
		} {
			RegisterFixed(pipeline.prefix+name, func(s *style.Style) { appendFilter(field(s), style.FilterOf(kind, 1)) })
		}
		add("hue-rotate", func(v Value) (style.Filter, bool) {
			deg, ok := number(v)
			return style.FilterOf(style.FilterHueRotate, deg), ok
		})
	}
}

func registerTransform() {
	Register("rotate", utility(number, func(s *style.Style, deg float32) { s.Rotate = style.Some(deg) }))

	scaling := func(s *style.Style) style.Scaling { return s.Scale.Or(style.Scaling{X: 1, Y: 1}) }
	Register("scale", utility(percentage, func(s *style.Style, f float32) { s.Scale = style.Some(style.Scaling{X: f, Y: f}) }))
	Register("scale-x", utility(percentage, func(s *style.Style, f float32) {
		sc := scaling(s)
		sc.X = f
		s.Scale = style.Some(sc)
	}))
	Register("scale-y", utility(percentage, func(s *style.Style, f float32) {
		sc := scaling(s)
		sc.Y = f
		s.Scale = style.Some(sc)
	}))

	translation := func(s *style.Style) style.Translation {
		return s.Translate.Or(style.Translation{X: style.Px(0), Y: style.Px(0)})
	}
	Register("translate", utility(spacing, func(s *style.Style, l style.Length) {
		s.Translate = style.Some(style.Translation{X: l, Y: l})
	}))
	Register("translate-x", utility(spacing, func(s *style.Style, l style.Length) {
		t := translation(s)
		t.X = l
		s.Translate = style.Some(t)
	}))
	Register("translate-y", utility(spacing, func(s *style.Style, l style.Length) {
		t := translation(s)
		t.Y = l
		s.Translate = style.Some(t)
	}))

	Register("origin", utility(anchor, func(s *style.Style, a style.Anchor) { s.TransformOrigin = style.Some(a) }))
}
