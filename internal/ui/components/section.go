package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Section is a page region: an optional heading block over its content. The
// id names the anchor navigation jumps to.
type Section struct {
	*Container
	id     string
	header []ui.Renderable
}

// NewSection creates a section for anchor id.
func NewSection(id string, children ...ui.Renderable) *Section {
	return &Section{
		Container: NewContainer(children...),
		id:        id,
	}
}

// ID returns the anchor id.
func (s *Section) ID() string {
	return s.id
}

// WithHeader puts a section title and an optional lead paragraph above the
// content, both centred.
func (s *Section) WithHeader(title string, lead string) *Section {
	s.header = []ui.Renderable{SectionTitle(title).WithAttr("id", s.id)}
	if lead != "" {
		s.header = append(s.header, Paragraph(lead).WithClassName("max-w-3xl mx-auto"))
	}
	return s
}

// WithClasses appends utility classes.
func (s *Section) WithClasses(classes ...string) *Section {
	s.AddClasses(classes...)
	return s
}

// View renders the section with the default context.
func (s *Section) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header centred above the content.
func (s *Section) ViewWithContext(ctx RenderContext) string {
	body := s.Container.ViewWithContext(ctx)
	if len(s.header) == 0 {
		return body
	}

	width := ctx.AvailableWidth()
	inner := ctx.WithConstraints(WithMaxWidth(max(width-8, 1)))
	parts := make([]string, 0, len(s.header))
	for _, part := range s.header {
		parts = append(parts, renderChild(part, inner))
	}
	head := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.JoinVertical(lipgloss.Left, head, body)
}
