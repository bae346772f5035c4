package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown writes p as a Markdown document, section by section in page order.
func Markdown(p Portfolio) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Owner.Name)
	fmt.Fprintf(&b, "**%s**\n\n", strings.Join(p.Owner.Headline, " "))
	writeHighlighted(&b, p.Owner.Specialty)
	writeHighlighted(&b, p.Owner.Intro)
	if len(p.Owner.Social) > 0 {
		links := make([]string, 0, len(p.Owner.Social))
		for _, link := range p.Owner.Social {
			links = append(links, fmt.Sprintf("[%s](%s)", link.Label, link.Href))
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(links, " · "))
	}

	fmt.Fprintf(&b, "## %s\n\n", p.Headings.About)
	writeParagraph(&b, p.About.Lead)
	writeHighlighted(&b, p.About.Tenure)
	for _, paragraph := range p.About.Paragraphs {
		writeParagraph(&b, paragraph)
	}
	if p.Owner.Location != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.Owner.Location)
	}

	fmt.Fprintf(&b, "### %s\n\n", p.Headings.Skills)
	for _, skill := range p.Skills {
		fmt.Fprintf(&b, "- %s\n", skill)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", p.Headings.Projects)
	writeParagraph(&b, p.Headings.ProjectsLead)
	for _, project := range p.Projects {
		fmt.Fprintf(&b, "### %s\n\n", project.Title)
		writeParagraph(&b, project.Description)
		if len(project.Tech) > 0 {
			tags := make([]string, 0, len(project.Tech))
			for _, tech := range project.Tech {
				tags = append(tags, "`"+tech+"`")
			}
			fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
		}
		fmt.Fprintf(&b, "[Source](%s) · [Live](%s)\n\n", project.GitHub, project.Live)
	}

	fmt.Fprintf(&b, "## %s\n\n", p.Headings.Experience)
	writeParagraph(&b, p.Headings.ExperienceLead)
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "### %s\n\n", exp.Title)
		fmt.Fprintf(&b, "*%s* · %s\n\n", exp.Company, exp.Period)
		writeParagraph(&b, exp.Description)
	}

	fmt.Fprintf(&b, "## %s\n\n", p.Contact.Title)
	writeParagraph(&b, p.Contact.Lead)
	if p.Owner.Email != "" {
		fmt.Fprintf(&b, "[%s](mailto:%s)\n\n", p.Contact.Primary, p.Owner.Email)
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "%s. %s\n", p.Owner.Name, p.Footer)

	return b.String()
}

// RenderMarkdown renders p for the terminal with glamour. style is a glamour
// standard style name ("dark", "light", "notty", ...); wrap is the word wrap width.
func RenderMarkdown(p Portfolio, style string, wrap int) (string, error) {
	if style == "" {
		style = "dark"
	}
	if wrap <= 0 {
		wrap = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(p))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func writeParagraph(b *strings.Builder, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

func writeHighlighted(b *strings.Builder, h Highlighted) {
	if h.String() == "" {
		return
	}
	trail := strings.ReplaceAll(h.Trail, "\n", " ")
	if h.Highlight == "" {
		writeParagraph(b, h.Lead+trail)
		return
	}
	writeParagraph(b, h.Lead+"**"+h.Highlight+"**"+trail)
}
