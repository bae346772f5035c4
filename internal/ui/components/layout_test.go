package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/folio/internal/ui"
)

func TestStackGap(t *testing.T) {
	out := ansi.Strip(VStack(NewText("a"), NewText("b")).WithGap(1).View())
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0])
	assert.Equal(t, "b", lines[2])

	row := ansi.Strip(HStack(NewText("a"), NewText("b")).WithGap(2).View())
	assert.Equal(t, "a  b", row)
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	out := VStack(nil, NewText("a").WithClasses("hidden")).View()
	assert.Empty(t, out)
}

func TestStackSplitsWidthHorizontally(t *testing.T) {
	var seen []int
	probe := func() ui.Renderable {
		return contextProbe(func(ctx RenderContext) string {
			seen = append(seen, ctx.AvailableWidth())
			return "x"
		})
	}

	HStack(probe(), probe()).WithGap(2).ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(42)))
	assert.Equal(t, []int{20, 20}, seen)
}

func TestGridColumns(t *testing.T) {
	grid := NewGrid(NewText("a"), NewText("b"), NewText("c")).WithColumns(BreakpointMD, 3)

	assert.Equal(t, 1, grid.Columns(BreakpointBase))
	assert.Equal(t, 1, grid.Columns(BreakpointSM))
	assert.Equal(t, 3, grid.Columns(BreakpointLG))

	narrow := ansi.Strip(grid.ViewWithContext(DefaultContext().WithWidth(80)))
	assert.Equal(t, 3, lipgloss.Height(narrow))

	wide := ansi.Strip(grid.ViewWithContext(DefaultContext().WithWidth(120)))
	assert.Equal(t, 1, lipgloss.Height(wide))
	assert.Equal(t, "a", strings.TrimSpace(wide[:1]))
}

func TestButtonRendering(t *testing.T) {
	out := ansi.Strip(PrimaryButton("Download Resume").WithSize(ButtonSizeLarge).WithIcon("↓").View())
	assert.Contains(t, out, "↓ Download Resume")

	outline := ansi.Strip(OutlineButton("View Projects").View())
	assert.Contains(t, outline, "View Projects")
	assert.Contains(t, outline, "┏", "outline buttons have a two-cell border")

	b := GhostButton("x").WithActive(true).WithDisabled(true)
	assert.True(t, b.IsActive())
	assert.True(t, b.IsDisabled())
	assert.Equal(t, ButtonVariantGhost, b.Variant())
}

func TestBadgeRendering(t *testing.T) {
	badge := SecondaryBadge("React")

	assert.Contains(t, ansi.Strip(badge.View()), "React")
	assert.Equal(t, BadgeVariantSecondary, badge.Variant())
	assert.Contains(t, ansi.Strip(OutlineBadge("Go").View()), "│")
}

func TestCardRendering(t *testing.T) {
	card := NewCard(Paragraph("Secure Bitcoin wallet")).WithTitle("Bitcoin Wallet").WithAccent("orange-500")
	out := ansi.Strip(card.View())

	assert.Contains(t, out, "Bitcoin Wallet")
	assert.Contains(t, out, "Secure Bitcoin wallet")
	assert.True(t, strings.HasPrefix(out, "╭"))
	assert.Less(t, strings.Index(out, "Bitcoin Wallet"), strings.Index(out, "Secure"))
}

func TestCardWrapsToWidth(t *testing.T) {
	card := NewCard(Paragraph(strings.Repeat("word ", 40)))
	out := card.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(30)))

	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestSectionHeader(t *testing.T) {
	section := NewSection("about", Paragraph("body")).WithHeader("About Me", "lead copy")
	out := ansi.Strip(section.View())

	assert.Equal(t, "about", section.ID())
	assert.Contains(t, out, "About Me")
	assert.Contains(t, out, "lead copy")
	assert.Less(t, strings.Index(out, "lead copy"), strings.Index(out, "body"))
}

func TestAlertRendering(t *testing.T) {
	out := ansi.Strip(WarningAlert("Terminal too small").WithTitle("Resize").View())

	assert.Contains(t, out, "⚠ Terminal too small")
	assert.Contains(t, out, "Resize")
	assert.Contains(t, out, "┌")
}

func TestDividerRendering(t *testing.T) {
	assert.Equal(t, "─────", ansi.Strip(HorizontalDivider().WithWidth(5).View()))
	assert.Equal(t, "━━━", ansi.Strip(ThickDivider().WithWidth(3).View()))

	gradient := HorizontalDivider().WithClasses("w-8 bg-gradient-to-r from-orange-500 to-red-500")
	assert.Equal(t, "────", ansi.Strip(gradient.View()))

	full := HorizontalDivider().ViewWithContext(DefaultContext().WithWidth(12))
	assert.Equal(t, 12, lipgloss.Width(full))
}

func TestSpacer(t *testing.T) {
	assert.Equal(t, 2, lipgloss.Height(NewSpacer(3, 2).View()))
	assert.Empty(t, NewSpacer(3, 0).View())
	assert.Equal(t, 20, lipgloss.Width(NewSpacer(FillWidth, 1).ViewWithContext(DefaultContext().WithWidth(20))))
	assert.Equal(t, 3, lipgloss.Height(VerticalSpacer(1).WithClasses("h-12").View()))
}

func TestTextClasses(t *testing.T) {
	text := NewText("hi").WithClasses("uppercase")
	assert.Equal(t, "HI", ansi.Strip(text.View()))
	assert.Equal(t, "hi", text.Content())
}

func TestFlowWraps(t *testing.T) {
	flow := NewFlow(NewText("alpha"), NewText("beta"), NewText("gamma"))
	ctx := DefaultContext().WithConstraints(WithMaxWidth(12))

	lines := strings.Split(ansi.Strip(flow.ViewWithContext(ctx)), "\n")
	assert.Equal(t, []string{"alpha beta", "gamma"}, trimLines(lines))

	wide := ansi.Strip(flow.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(40))))
	assert.Equal(t, "alpha beta gamma", wide)
}

func TestFlowRowGap(t *testing.T) {
	flow := NewFlow(NewText("aaaa"), NewText("bbbb")).WithGap(2, 1)
	out := ansi.Strip(flow.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(6))))
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestCenter(t *testing.T) {
	out := ansi.Strip(NewCenter(NewText("ab")).ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(6))))
	assert.Equal(t, "  ab  ", out)
	assert.Empty(t, NewCenter(nil).View())
}

func TestSidebar(t *testing.T) {
	var mainWidth int
	main := contextProbe(func(ctx RenderContext) string {
		mainWidth = ctx.AvailableWidth()
		return "main"
	})

	out := ansi.Strip(NewSidebar(NewText("*"), 3, main).WithGap(1).
		ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(30))))
	assert.Equal(t, 26, mainWidth)
	assert.Equal(t, "*   main", out)
}

func trimLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " ")
	}
	return out
}

type contextProbe func(RenderContext) string

func (p contextProbe) View() string {
	return p(DefaultContext())
}

func (p contextProbe) ViewWithContext(ctx RenderContext) string {
	return p(ctx)
}
