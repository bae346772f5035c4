package components

import (
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	compiled := s.Compile(ctx)
	if compiled.Hidden {
		return ""
	}

	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective))

	childViews := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			childViews = append(childViews, view)
		}
	}
	if len(childViews) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(childViews)
	} else {
		content = s.joinVertical(childViews)
	}

	style := compiled.Style
	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

// mergeConstraints combines stack-level constraints with parent context constraints.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}
	return result
}

// deriveChildConstraints splits the width between children of a horizontal
// stack. Vertical stacks pass width through unchanged.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(s.crossAlign.toLipglossPosition(), views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(s.crossAlign.toLipglossPosition(), result...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(s.crossAlign.toLipglossPosition(), views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(s.crossAlign.toLipglossPosition(), result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children: blank rows in a vertical stack,
// blank columns in a horizontal one.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithClasses appends utility classes.
func (s *Stack) WithClasses(classes ...string) *Stack {
	s.AddClasses(classes...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children in the stack.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}
