package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/ui"
)

// Kind is the closed set of typography elements. Values outside the declared
// constants are rejected by Valid and resolve to an empty span.
type Kind int

const (
	KindH1 Kind = iota
	KindH2
	KindH3
	KindH4
	KindH5
	KindH6
	KindParagraph
	KindParagraphSmall
	KindSpanItalicSmall
	KindSpanItalicLarge
	KindGradientText
	KindAnimatedText
	KindHeroTitle
	KindSectionTitle

	kindCount
)

var kindNames = [kindCount]string{
	KindH1:              "h1",
	KindH2:              "h2",
	KindH3:              "h3",
	KindH4:              "h4",
	KindH5:              "h5",
	KindH6:              "h6",
	KindParagraph:       "paragraph",
	KindParagraphSmall:  "paragraph-small",
	KindSpanItalicSmall: "span-italic-small",
	KindSpanItalicLarge: "span-italic-large",
	KindGradientText:    "gradient-text",
	KindAnimatedText:    "animated-text",
	KindHeroTitle:       "hero-title",
	KindSectionTitle:    "section-title",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindH1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindH1 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return kindNames[k]
}

// ParseKind maps a kind name such as "h1" or "section-title" back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Element is the semantic element a kind stands for.
type Element string

const (
	ElementH1   Element = "h1"
	ElementH2   Element = "h2"
	ElementH3   Element = "h3"
	ElementH4   Element = "h4"
	ElementH5   Element = "h5"
	ElementH6   Element = "h6"
	ElementP    Element = "p"
	ElementSpan Element = "span"
)

// Inline reports whether the element flows inside a line.
func (e Element) Inline() bool {
	return e == ElementSpan
}

// Decoration is a bit set of the auxiliary marks drawn around a text element.
type Decoration uint8

const (
	// DecorationRing is the spinning dashed ring by the top-left of a title.
	DecorationRing Decoration = 1 << iota
	// DecorationAccentBar is the short gradient bar under section headings.
	DecorationAccentBar
	// DecorationUnderline is the fading line under animated text.
	DecorationUnderline
)

// Has reports whether d includes flag.
func (d Decoration) Has(flag Decoration) bool {
	return d&flag != 0
}

const (
	serifFont = "font-['Lora',_serif]"
	bodyFont  = "font-['Noto_Serif',_serif]"

	animateOverlay = "relative"

	ringClasses      = "absolute -top-6 -left-6 w-24 h-24 border-2 border-dashed border-orange-500/20 rounded-full animate-spin"
	accentBarClasses = "absolute left-1/2 transform -translate-x-1/2 w-20 h-1 bg-gradient-to-r from-orange-500 to-red-500 rounded-full"
	underlineClasses = "absolute -bottom-1 left-0 w-full h-0.5 bg-gradient-to-r from-orange-500 to-transparent rounded-full"
)

// kindStyle is everything about a kind that does not depend on the scale.
type kindStyle struct {
	element         Element
	base            string
	gradient        string
	gradientDefault bool
	ring            bool
	accentBar       bool
	underline       bool
}

var kindStyles = [kindCount]kindStyle{
	KindH1: {
		element:         ElementH1,
		base:            serifFont + " font-light leading-[0.9] tracking-tight",
		gradient:        "bg-clip-text text-transparent bg-gradient-to-r from-white via-orange-500 to-red-500",
		gradientDefault: true,
		ring:            true,
	},
	KindH2: {
		element:         ElementH2,
		base:            serifFont + " font-light leading-[0.9] tracking-tight relative",
		gradient:        "bg-clip-text text-transparent bg-gradient-to-r from-orange-500 via-red-500 to-purple-500",
		gradientDefault: true,
		accentBar:       true,
	},
	KindH3: {
		element:         ElementH3,
		base:            serifFont + " font-light leading-tight tracking-tight",
		gradient:        "bg-clip-text text-transparent bg-gradient-to-r from-orange-500 to-red-500",
		gradientDefault: true,
	},
	KindH4: {
		element: ElementH4,
		base:    serifFont + " font-normal leading-relaxed text-orange-500",
	},
	KindH5: {
		element: ElementH5,
		base:    serifFont + " font-normal leading-relaxed",
	},
	KindH6: {
		element: ElementH6,
		base:    serifFont + " font-medium leading-relaxed",
	},
	KindParagraph: {
		element: ElementP,
		base:    bodyFont + " font-normal leading-relaxed",
	},
	KindParagraphSmall: {
		element: ElementP,
		base:    bodyFont + " font-normal leading-relaxed",
	},
	KindSpanItalicSmall: {
		element: ElementSpan,
		base:    serifFont + " italic font-normal leading-relaxed text-orange-500",
	},
	KindSpanItalicLarge: {
		element: ElementSpan,
		base:    serifFont + " italic font-normal leading-relaxed text-orange-500",
	},
	KindGradientText: {
		element: ElementSpan,
		base:    "bg-gradient-to-r from-yellow-400 via-orange-500 to-red-500 bg-clip-text text-transparent font-medium",
	},
	KindAnimatedText: {
		element:   ElementSpan,
		base:      "relative inline-block",
		underline: true,
	},
	KindHeroTitle: {
		element: ElementH1,
		base:    serifFont + " font-light text-transparent bg-clip-text bg-gradient-to-r from-white via-orange-500 to-red-500 leading-[0.9] tracking-tight",
		ring:    true,
	},
	KindSectionTitle: {
		element:   ElementH2,
		base:      serifFont + " font-light bg-gradient-to-r from-orange-500 via-red-500 to-purple-500 bg-clip-text text-transparent relative leading-tight tracking-tight",
		accentBar: true,
	},
}

// Attrs are pass-through attributes of a text element. Only "id" has meaning
// here: it names an anchor target.
type Attrs map[string]string

// Options are the presentation flags of one typography element.
type Options struct {
	Gradient  bool
	Animate   bool
	ClassName string
	Attrs     Attrs
}

// DefaultOptions returns the defaults of kind: gradient on for H1 to H3,
// everything else off.
func DefaultOptions(kind Kind) Options {
	if !kind.Valid() {
		return Options{}
	}
	return Options{Gradient: kindStyles[kind].gradientDefault}
}

// Variant is the resolved presentation of one element.
type Variant struct {
	Kind        Kind
	Element     Element
	Classes     Classes
	Decorations Decoration
}

// Resolve resolves kind against the display scale.
func Resolve(kind Kind, opts Options) Variant {
	return displayScale.Resolve(kind, opts)
}

// Resolve builds the class list of kind as base, then the gradient overlay if
// enabled and the kind has one, then the animate overlay if enabled, then
// opts.ClassName last so callers override. Kinds without an overlay ignore
// the flag.
func (t ScaleTable) Resolve(kind Kind, opts Options) Variant {
	if !kind.Valid() {
		return Variant{Kind: kind, Element: ElementSpan, Classes: Cn(opts.ClassName)}
	}

	style := kindStyles[kind]
	step := t.Step(kind)

	classes := Cn(style.base, step.Size, step.Spacing)
	if opts.Gradient && style.gradient != "" {
		classes = classes.With(style.gradient)
	}
	if opts.Animate {
		classes = classes.With(animateOverlay)
	}
	classes = classes.With(opts.ClassName)

	var decorations Decoration
	if opts.Animate && style.ring {
		decorations |= DecorationRing
	}
	if style.accentBar {
		decorations |= DecorationAccentBar
	}
	if style.underline {
		decorations |= DecorationUnderline
	}

	return Variant{
		Kind:        kind,
		Element:     style.element,
		Classes:     classes,
		Decorations: decorations,
	}
}

// RingSpinner animates the ring decoration. Its frames are indexed by
// RenderContext.Frame.
var RingSpinner = spinner.Spinner{
	Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"},
	FPS:    time.Second / 6,
}

// Fragment is literal text inside a typography element. It takes the
// element's own styling.
type Fragment string

// View returns the text unstyled.
func (f Fragment) View() string {
	return string(f)
}

// Typography renders one text element of the design system.
type Typography struct {
	BaseComponent
	kind  Kind
	opts  Options
	parts []ui.Renderable
}

// NewTypography creates an element of kind with kind's default options. Parts
// are Fragments or nested inline elements.
func NewTypography(kind Kind, parts ...ui.Renderable) *Typography {
	return &Typography{
		BaseComponent: NewBaseComponent(),
		kind:          kind,
		opts:          DefaultOptions(kind),
		parts:         parts,
	}
}

func H1(text string) *Typography { return NewTypography(KindH1, Fragment(text)) }
func H2(text string) *Typography { return NewTypography(KindH2, Fragment(text)) }
func H3(text string) *Typography { return NewTypography(KindH3, Fragment(text)) }
func H4(text string) *Typography { return NewTypography(KindH4, Fragment(text)) }
func H5(text string) *Typography { return NewTypography(KindH5, Fragment(text)) }
func H6(text string) *Typography { return NewTypography(KindH6, Fragment(text)) }

// Paragraph is body copy.
func Paragraph(text string) *Typography { return NewTypography(KindParagraph, Fragment(text)) }

// SmallParagraph is secondary body copy.
func SmallParagraph(text string) *Typography {
	return NewTypography(KindParagraphSmall, Fragment(text))
}

// ItalicSmall and ItalicLarge are accent spans.
func ItalicSmall(text string) *Typography {
	return NewTypography(KindSpanItalicSmall, Fragment(text))
}

func ItalicLarge(text string) *Typography {
	return NewTypography(KindSpanItalicLarge, Fragment(text))
}

// GradientText is an inline span painted with the brand gradient.
func GradientText(text string) *Typography {
	return NewTypography(KindGradientText, Fragment(text))
}

// AnimatedText is an inline span with a fading underline.
func AnimatedText(text string) *Typography {
	return NewTypography(KindAnimatedText, Fragment(text))
}

func HeroTitle(text string) *Typography {
	return NewTypography(KindHeroTitle, Fragment(text))
}

func SectionTitle(text string) *Typography {
	return NewTypography(KindSectionTitle, Fragment(text))
}

// WithGradient toggles the gradient overlay.
func (t *Typography) WithGradient(enabled bool) *Typography {
	t.opts.Gradient = enabled
	return t
}

// WithAnimate toggles the animate overlay and, for titles, the ring.
func (t *Typography) WithAnimate(enabled bool) *Typography {
	t.opts.Animate = enabled
	return t
}

// WithClassName appends caller classes; they are applied after every built-in class.
func (t *Typography) WithClassName(classes ...string) *Typography {
	t.opts.ClassName = Cn(append([]string{t.opts.ClassName}, classes...)...).String()
	return t
}

// WithAttr sets a pass-through attribute.
func (t *Typography) WithAttr(key, value string) *Typography {
	attrs := make(Attrs, len(t.opts.Attrs)+1)
	for k, v := range t.opts.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	t.opts.Attrs = attrs
	return t
}

// WithOptions replaces every option at once.
func (t *Typography) WithOptions(opts Options) *Typography {
	t.opts = opts
	return t
}

// WithStyle sets the raw lipgloss style the classes compile on top of.
func (t *Typography) WithStyle(style lipgloss.Style) *Typography {
	t.SetStyle(style)
	return t
}

// Append adds parts after the current content.
func (t *Typography) Append(parts ...ui.Renderable) *Typography {
	t.parts = append(t.parts, parts...)
	return t
}

// Kind returns the element kind.
func (t *Typography) Kind() Kind {
	return t.kind
}

// Options returns the current options.
func (t *Typography) Options() Options {
	return t.opts
}

// ID returns the anchor id passed through Attrs, if any.
func (t *Typography) ID() string {
	return t.opts.Attrs["id"]
}

// Content returns the plain text of the element and its nested parts.
func (t *Typography) Content() string {
	var b strings.Builder
	for _, part := range t.parts {
		switch p := part.(type) {
		case Fragment:
			b.WriteString(string(p))
		case *Typography:
			b.WriteString(p.Content())
		case nil:
		default:
			b.WriteString(p.View())
		}
	}
	return b.String()
}

// Variant resolves the element against the scale of ctx.
func (t *Typography) Variant(ctx RenderContext) Variant {
	return ctx.TypographyScale().Resolve(t.kind, t.opts)
}

// View renders the element with the default context.
func (t *Typography) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders text, then the ring beside it and any bar under it,
// then margins around the whole.
func (t *Typography) ViewWithContext(ctx RenderContext) string {
	variant := t.Variant(ctx)
	if !variant.Element.Inline() {
		ctx.inherit = nil
	}

	compiled := t.Compile(ctx, variant.Classes)
	if compiled.Hidden {
		return ""
	}
	inner := compiled.WithoutMargins()

	var ring string
	if variant.Decorations.Has(DecorationRing) {
		ring = t.ring(ctx) + " "
	}

	width := ctx.AvailableWidth() - lipgloss.Width(ring)
	var body string
	if text, ok := t.plainText(); ok {
		body = inner.RenderWithin(text, width)
	} else {
		childCtx := ctx
		childCtx.inherit = &compiled
		var line strings.Builder
		for _, part := range t.parts {
			if fragment, ok := part.(Fragment); ok {
				line.WriteString(inner.Text(string(fragment)))
				continue
			}
			line.WriteString(renderChild(part, childCtx))
		}
		body = inner.Frame(line.String(), width)
	}

	if ring != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, ring, body)
	}

	align := compiled.Style.GetAlignHorizontal()
	if variant.Decorations.Has(DecorationAccentBar) {
		bar := Compile(lipgloss.NewStyle(), Cn(accentBarClasses), ctx)
		body = lipgloss.JoinVertical(align, body, bar.Bar("━", bar.Width))
	}
	if variant.Decorations.Has(DecorationUnderline) {
		bar := Compile(lipgloss.NewStyle(), Cn(underlineClasses), ctx)
		body = lipgloss.JoinVertical(align, body, bar.Bar("─", lipgloss.Width(body)))
	}

	return compiled.Margins().Render(body)
}

func (t *Typography) ring(ctx RenderContext) string {
	frames := RingSpinner.Frames
	frame := frames[0]
	if ctx.Frame > 0 {
		frame = frames[ctx.Frame%len(frames)]
	}
	ring := Compile(lipgloss.NewStyle(), Cn(ringClasses), ctx)
	return lipgloss.NewStyle().Foreground(ring.borderColor).Render(frame)
}

func (t *Typography) plainText() (string, bool) {
	var b strings.Builder
	for _, part := range t.parts {
		fragment, ok := part.(Fragment)
		if !ok {
			return "", false
		}
		b.WriteString(string(fragment))
	}
	return b.String(), true
}
