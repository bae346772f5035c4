package assets

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Resolver turns an image path into terminal content of the requested size
// in px. Zero sizes let the resolver pick.
type Resolver interface {
	Resolve(path string, width, height int) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(path string, width, height int) string

// Resolve calls f.
func (f ResolverFunc) Resolve(path string, width, height int) string {
	return f(path, width, height)
}

// Image is a parsed image reference.
type Image struct {
	Path   string
	Name   string
	Width  int
	Height int
}

// ErrEmptyPath is wrapped by Parse when the reference is blank.
var ErrEmptyPath = errors.New("empty image path")

// Parse splits ref into its file name and the width/height hints in its query.
func Parse(ref string) (Image, error) {
	if strings.TrimSpace(ref) == "" {
		return Image{}, folioerrors.NewAssetError(ref, ErrEmptyPath)
	}

	u, err := url.Parse(ref)
	if err != nil {
		return Image{}, folioerrors.NewAssetError(ref, err)
	}

	img := Image{Path: u.Path, Name: path.Base(u.Path)}
	query := u.Query()
	if img.Width, err = dimension(query, "width"); err != nil {
		return Image{}, folioerrors.NewAssetError(ref, err)
	}
	if img.Height, err = dimension(query, "height"); err != nil {
		return Image{}, folioerrors.NewAssetError(ref, err)
	}
	return img, nil
}

func dimension(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

// Placeholder draws a framed box in place of raster content.
type Placeholder struct {
	CellWidth  int
	CellHeight int
	// Fallback sizes in px when neither the caller nor the path gives one.
	DefaultWidth  int
	DefaultHeight int
	Style         lipgloss.Style
}

// NewPlaceholder returns a placeholder resolver converting px with the given
// cell size.
func NewPlaceholder(cellWidth, cellHeight int) Placeholder {
	return Placeholder{
		CellWidth:     max(cellWidth, 1),
		CellHeight:    max(cellHeight, 1),
		DefaultWidth:  300,
		DefaultHeight: 200,
		Style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Faint(true),
	}
}

// Cells converts a px size to whole cells, at least one cell each way.
func (p Placeholder) Cells(width, height int) (int, int) {
	cols := int(math.Round(float64(width) / float64(max(p.CellWidth, 1))))
	rows := int(math.Round(float64(height) / float64(max(p.CellHeight, 1))))
	return max(cols, 1), max(rows, 1)
}

// Resolve draws the box labelled with the image name. An unparseable path
// yields an unlabelled box.
func (p Placeholder) Resolve(ref string, width, height int) string {
	img, err := Parse(ref)
	if err == nil {
		if width == 0 {
			width = img.Width
		}
		if height == 0 {
			height = img.Height
		}
	}
	if width == 0 {
		width = p.DefaultWidth
	}
	if height == 0 {
		height = p.DefaultHeight
	}

	cols, rows := p.Cells(width, height)
	frame := p.Style.GetHorizontalFrameSize()
	inner := max(cols-frame, 1)
	innerRows := max(rows-p.Style.GetVerticalFrameSize(), 1)

	label := img.Name
	if lipgloss.Width(label) > inner {
		label = ""
	}

	return p.Style.
		Width(inner).
		Height(innerRows).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}
