package components

import (
	"strings"
)

// Spacer renders blank cells. A width of FillWidth stretches it across the
// available width, which lets a coloured background span a whole row.
type Spacer struct {
	BaseComponent
	width  int
	height int
}

// FillWidth makes a spacer as wide as its context allows.
const FillWidth = -1

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{
		BaseComponent: NewBaseComponent(),
		width:         width,
		height:        height,
	}
}

// HorizontalSpacer creates a one-row spacer.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates blank rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer with the default context.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the spacer. h-N classes override the height.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	compiled := s.Compile(ctx)

	w := s.width
	if w == FillWidth {
		w = ctx.AvailableWidth()
	}
	h := s.height
	if compiled.Height > 0 {
		h = compiled.Height
	}
	if w < 0 {
		w = 0
	}
	if h <= 0 {
		return ""
	}

	line := compiled.Style.Render(strings.Repeat(" ", w))
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// WithClasses appends utility classes.
func (s *Spacer) WithClasses(classes ...string) *Spacer {
	s.AddClasses(classes...)
	return s
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
