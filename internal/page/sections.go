package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/assets"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// heroCanvasRows is the minimum height of the decoration canvas.
const heroCanvasRows = 20

var headlineGradient = [...]string{
	components.ThemeDark:  "bg-gradient-to-r from-white via-orange-500 to-red-500",
	components.ThemeLight: "bg-gradient-to-r from-slate-900 via-orange-600 to-red-600",
}

// profile is the framed portrait with its two floating badges.
type profile struct {
	image      string
	resolver   assets.Resolver
	cellWidth  int
	cellHeight int
}

func (p *profile) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

// ViewWithContext draws the image inside a dashed ring, the ₿ badge above the
// top-right corner and the Ξ badge below the bottom-left one.
func (p *profile) ViewWithContext(ctx components.RenderContext) string {
	cols := min(max(ctx.AvailableWidth()/2, 12), 28)
	rows := max(cols*p.cellWidth/p.cellHeight, 3)
	image := p.resolver.Resolve(p.image, cols*p.cellWidth, rows*p.cellHeight)

	ring := "rounded-full border-4 border-dashed border-orange-500/30 px-2"
	if ctx.Theme.Mode == components.ThemeLight {
		ring = "rounded-full border-4 border-dashed border-orange-400/40 px-2"
	}
	framed := components.Compile(lipgloss.NewStyle(), components.Cn(ring), ctx).Frame(image, 0)
	width := lipgloss.Width(framed)

	top := floatingBadge(" ₿ ", "from-yellow-400 to-orange-500", ctx)
	bottom := floatingBadge(" Ξ ", "from-purple-500 to-pink-500", ctx)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Right, top),
		framed,
		lipgloss.PlaceHorizontal(width, lipgloss.Left, bottom),
	)
}

func floatingBadge(glyph, stops string, ctx components.RenderContext) string {
	classes := components.Cn("bg-gradient-to-r", stops, "text-white font-bold rounded-full")
	return components.Compile(lipgloss.NewStyle(), classes, ctx).Text(glyph)
}

// highlighted builds a text element of kind reading h, with the highlight in
// the brand gradient.
func highlighted(kind components.Kind, h content.Highlighted, highlightClasses ...string) *components.Typography {
	t := components.NewTypography(kind)
	if h.Lead != "" {
		t.Append(components.Fragment(h.Lead))
	}
	if h.Highlight != "" {
		t.Append(components.GradientText(h.Highlight).WithClassName(highlightClasses...))
	}
	if h.Trail != "" {
		t.Append(components.Fragment(h.Trail))
	}
	return t
}

func (b *builder) hero() ui.Renderable {
	owner := b.portfolio.Owner
	classes := b.classes

	left := components.VStack().WithGap(1)
	for i, line := range owner.Headline {
		var title *components.Typography
		if i == 0 {
			title = components.H1(line).
				WithAnimate(true).
				WithClassName(headlineGradient[b.theme])
		} else {
			title = components.NewTypography(components.KindH1, components.Fragment(line)).
				WithGradient(false).
				WithClassName(classes.Text, "relative")
		}
		if i > 0 && i == len(owner.Headline)-1 {
			title.Append(components.NewText(" ✦").WithClasses("text-orange-500 animate-bounce"))
		}
		left.Add(title)
	}

	left.Add(
		components.VStack(
			highlighted(components.KindH3, owner.Specialty).
				WithGradient(false).
				WithClassName(classes.TextSecondary),
			components.NewDivider().
				WithChar("━").
				WithClasses("w-32 bg-gradient-to-r from-orange-500 to-transparent"),
		),
		highlighted(components.KindParagraph, owner.Intro, "font-semibold").
			WithClassName(classes.TextMuted, "max-w-2xl"),
		components.NewFlow(
			components.PrimaryButton(owner.Resume).
				WithSize(components.ButtonSizeLarge).
				WithIcon("⤓"),
			components.OutlineButton("View Projects →").
				WithSize(components.ButtonSizeLarge),
		).WithGap(2, 1),
	)

	if len(owner.Social) > 0 {
		social := components.HStack().WithGap(3)
		for _, link := range owner.Social {
			social.Add(components.NewText(link.Label).WithClasses(classes.TextMuted))
		}
		left.Add(social)
	}

	canvas := NewCanvas(b.decorations, heroCanvasRows).
		WithCellSize(b.opts.CellWidth, b.opts.CellHeight).
		WithOverlay(&profile{
			image:      owner.Image,
			resolver:   b.opts.Assets,
			cellWidth:  b.opts.CellWidth,
			cellHeight: b.opts.CellHeight,
		})

	return components.NewGrid(left, canvas).
		WithColumns(components.BreakpointLG, 2).
		WithGap(6, 1).
		WithClasses("items-center")
}

func (b *builder) about() ui.Renderable {
	about := b.portfolio.About
	classes := b.classes

	story := components.VStack().WithGap(1)
	story.Add(highlighted(components.KindH3, about.Tenure).
		WithGradient(false).
		WithClassName(classes.Text))

	bullets := [...]string{"text-orange-500", "text-red-500"}
	for i, paragraph := range about.Paragraphs {
		story.Add(components.NewSidebar(
			components.NewText("▪").WithClasses(bullets[i%len(bullets)]),
			1,
			components.Paragraph(paragraph).WithClassName(classes.TextSecondary),
		).WithGap(1))
	}

	if location := b.portfolio.Owner.Location; location != "" {
		story.Add(components.NewContainer(
			components.NewSidebar(
				components.NewText("⌖").WithClasses("text-orange-500"),
				1,
				components.SmallParagraph(location).WithClassName(classes.TextMuted, "m-0"),
			).WithGap(1),
		).WithClasses("rounded border px-2", classes.Border))
	}

	skills := components.NewGrid().
		WithColumns(components.BreakpointBase, 2).
		WithGap(2, 0)
	for _, skill := range b.portfolio.Skills {
		skills.Add(components.SecondaryBadge(skill))
	}

	expertise := components.VStack(
		components.H3(b.portfolio.Headings.Skills),
		skills,
	).WithGap(1)

	return components.NewSection(AnchorAbout,
		components.NewGrid(story, expertise).
			WithColumns(components.BreakpointLG, 2).
			WithGap(6, 2),
	).WithHeader(b.portfolio.Headings.About, about.Lead)
}

func (b *builder) projects() ui.Renderable {
	classes := b.classes
	grid := components.NewGrid().
		WithColumns(components.BreakpointMD, 2).
		WithColumns(components.BreakpointLG, 3).
		WithGap(4, 1)

	for _, project := range b.portfolio.Projects {
		title := components.HStack(
			components.H4(project.Title).WithClassName(classes.Text, "mb-0"),
		).WithGap(1)
		if project.Accent != "" {
			title.Add(components.NewText("●").
				WithClasses("bg-clip-text text-transparent bg-gradient-to-r " + project.Accent))
		}

		card := components.NewCard(
			&thumbnail{
				image:      project.Image,
				resolver:   b.opts.Assets,
				rows:       6,
				cellWidth:  b.opts.CellWidth,
				cellHeight: b.opts.CellHeight,
			},
			title,
		)
		if project.Description != "" {
			card.Add(components.SmallParagraph(project.Description).WithClassName(classes.TextMuted))
		}
		if len(project.Tech) > 0 {
			tech := components.NewFlow()
			for _, tag := range project.Tech {
				tech.Add(components.OutlineBadge(tag).WithClasses("border-orange-500/50 text-orange-500"))
			}
			card.Add(tech)
		}
		if links := projectLinks(project, classes); links != nil {
			card.Add(links)
		}
		grid.Add(card)
	}

	return components.NewSection(AnchorProjects, grid).
		WithHeader(b.portfolio.Headings.Projects, b.portfolio.Headings.ProjectsLead)
}

func projectLinks(project content.Project, classes components.ThemeClasses) ui.Renderable {
	var links []ui.Renderable
	if project.GitHub != "" {
		links = append(links, components.NewText("⌥ Source").WithClasses(classes.TextMuted))
	}
	if project.Live != "" {
		links = append(links, components.NewText("↗ Live").WithClasses(classes.TextMuted))
	}
	if len(links) == 0 {
		return nil
	}
	return components.HStack(links...).WithGap(3)
}

// thumbnail is a project image filling the card width.
type thumbnail struct {
	image      string
	resolver   assets.Resolver
	rows       int
	cellWidth  int
	cellHeight int
}

func (t *thumbnail) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *thumbnail) ViewWithContext(ctx components.RenderContext) string {
	cols := max(ctx.AvailableWidth(), 1)
	return t.resolver.Resolve(t.image, cols*t.cellWidth, t.rows*t.cellHeight)
}

func (b *builder) experience() ui.Renderable {
	classes := b.classes
	entries := make([]ui.Renderable, 0, len(b.portfolio.Experience))
	for _, exp := range b.portfolio.Experience {
		details := components.VStack(
			components.H4(exp.Title).WithClassName(classes.Text, "text-xl font-semibold"),
		)
		if exp.Company != "" {
			details.Add(components.H4(exp.Company).WithClassName("font-medium"))
		}
		if exp.Period != "" {
			details.Add(components.OutlineBadge(exp.Period).WithClasses("border-orange-500 text-orange-500"))
		}
		if exp.Description != "" {
			details.Add(components.Paragraph(exp.Description).WithClassName(classes.TextSecondary))
		}

		icon := components.NewText(exp.Icon.Glyph()).
			WithClasses("bg-gradient-to-r from-orange-500 to-red-500 text-white px-1")
		entries = append(entries, components.NewCard(
			components.NewSidebar(icon, 5, details),
		))
	}

	return components.NewSection(AnchorExperience, &timeline{entries: entries}).
		WithHeader(b.portfolio.Headings.Experience, b.portfolio.Headings.ExperienceLead)
}

// timeline stacks entries along a gradient rail with a dot beside each one.
type timeline struct {
	entries []ui.Renderable
}

const (
	railGlyph = "┃"
	railDot   = "◉"
	railWidth = 4
)

func (t *timeline) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *timeline) ViewWithContext(ctx components.RenderContext) string {
	if len(t.entries) == 0 {
		return ""
	}
	inner := ctx.WithConstraints(components.WithMaxWidth(max(ctx.AvailableWidth()-railWidth, 1)))

	var lines []string
	dots := make(map[int]bool, len(t.entries))
	for i, entry := range t.entries {
		if i > 0 {
			lines = append(lines, "")
		}
		view := renderWith(entry, inner)
		dots[len(lines)+1] = true
		lines = append(lines, strings.Split(view, "\n")...)
	}

	rail := components.Compile(lipgloss.NewStyle(),
		components.Cn("bg-gradient-to-b from-orange-500 via-red-500 to-purple-500"), ctx).Gradient
	for i, line := range lines {
		glyph := railGlyph
		if dots[i] {
			glyph = railDot
		}
		pos := 0.0
		if len(lines) > 1 {
			pos = float64(i) / float64(len(lines)-1)
		}
		mark := lipgloss.NewStyle().Foreground(rail.At(pos)).Render(glyph)
		lines[i] = " " + mark + "  " + line
	}
	return strings.Join(lines, "\n")
}

func (b *builder) contact() ui.Renderable {
	contact := b.portfolio.Contact
	classes := b.classes

	column := components.VStack(
		components.H1(contact.Title).WithClassName("mb-8"),
		components.NewDivider().
			WithChar("━").
			WithClasses("w-32 bg-gradient-to-r from-orange-500 to-red-500"),
	).WithCrossAlign(components.CrossCenter)
	if contact.Lead != "" {
		column.Add(components.Paragraph(contact.Lead).
			WithClassName(classes.TextSecondary, "mb-12 max-w-2xl mx-auto text-center"))
	}

	var actions []ui.Renderable
	if contact.Primary != "" {
		actions = append(actions, components.PrimaryButton(contact.Primary).
			WithSize(components.ButtonSizeLarge).
			WithIcon("✉"))
	}
	if contact.Secondary != "" {
		actions = append(actions, components.OutlineButton(contact.Secondary).
			WithSize(components.ButtonSizeLarge))
	}
	if len(actions) > 0 {
		column.Add(components.NewFlow(actions...).WithGap(3, 1))
	}
	if email := b.portfolio.Owner.Email; email != "" {
		column.Add(components.NewText(email).WithClasses(classes.TextMuted))
	}

	return components.NewSection(AnchorContact,
		components.NewCenter(column.WithClasses("max-w-4xl")),
	)
}

func (b *builder) footer() ui.Renderable {
	owner := b.portfolio.Owner
	line := components.NewTypography(components.KindParagraphSmall,
		components.Fragment(copyright(b.opts.Year, owner.Name)))
	if b.portfolio.Footer != "" {
		line.Append(components.GradientText(b.portfolio.Footer).WithClassName("font-semibold"))
	}
	return components.VStack(
		components.NewDivider().WithClasses(borderLine(b.theme)),
		components.NewCenter(line.WithClassName(b.classes.TextMuted)),
	)
}
