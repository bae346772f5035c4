// Package components provides a declarative, theme-aware UI component library
// for rendering the portfolio page in a terminal.
//
// # Overview
//
// Components are styled with Tailwind-like utility classes compiled onto
// lipgloss styles. A class list is ordered and the last token touching a
// property wins, so callers can always override a component's defaults:
//
//	H1("Frontend").WithClassName("text-red-500")
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.LightTheme())
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the dark theme at 80 columns.
//
// # Typography
//
// Typography covers every text element of the design system. A Kind names
// the element; Resolve turns a kind and its Options into a Variant carrying
// the semantic element, the class list and the decorations (ring, accent bar,
// underline) the element draws. The sizes come from a ScaleTable, so the
// display and compact scales differ only in data.
//
// # Responsive Classes
//
// The sm:, md:, lg: and xl: prefixes apply once the viewport reaches 80, 96,
// 128 and 160 columns. State prefixes such as hover: never apply.
//
// # Core Components
//
//   - Text, Spacer, Divider: primitives
//   - Stack, Grid, Container: layout
//   - Typography, Card, Section, Button, Badge, Alert: semantic elements
//
// Components compose through the ui.Renderable interface:
//
//	card := NewCard(
//		Paragraph("Secure Bitcoin wallet application."),
//		HStack(SecondaryBadge("React"), SecondaryBadge("Bitcoin")).WithGap(1),
//	).WithTitle("Bitcoin Wallet")
package components
