package assets

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     string
		want    Image
		wantErr bool
	}{
		{
			name: "query hints",
			ref:  "/placeholder.svg?height=200&width=300",
			want: Image{Path: "/placeholder.svg", Name: "placeholder.svg", Width: 300, Height: 200},
		},
		{
			name: "no hints",
			ref:  "/profile.png",
			want: Image{Path: "/profile.png", Name: "profile.png"},
		},
		{name: "blank", ref: "  ", wantErr: true},
		{name: "bad width", ref: "/a.png?width=wide", wantErr: true},
		{name: "negative height", ref: "/a.png?height=-4", wantErr: true},
		{name: "bad escape", ref: "/a%zz.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.ref)
			if tt.wantErr {
				var assetErr *folioerrors.AssetError
				require.ErrorAs(t, err, &assetErr)
				assert.Equal(t, tt.ref, assetErr.Ref)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestPlaceholderCells(t *testing.T) {
	t.Parallel()

	p := NewPlaceholder(8, 16)

	cols, rows := p.Cells(300, 200)
	assert.Equal(t, 38, cols)
	assert.Equal(t, 13, rows)

	cols, rows = p.Cells(0, 0)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}

func TestPlaceholderResolve(t *testing.T) {
	t.Parallel()

	p := NewPlaceholder(8, 16)

	t.Run("uses path hints", func(t *testing.T) {
		out := p.Resolve("/placeholder.svg?height=200&width=300", 0, 0)
		assert.Equal(t, 38, lipgloss.Width(out))
		assert.Equal(t, 13, lipgloss.Height(out))
		assert.Contains(t, out, "placeholder.svg")
	})

	t.Run("explicit size wins", func(t *testing.T) {
		out := p.Resolve("/profile.png?height=400&width=400", 160, 96)
		assert.Equal(t, 20, lipgloss.Width(out))
		assert.Equal(t, 6, lipgloss.Height(out))
	})

	t.Run("label dropped when it does not fit", func(t *testing.T) {
		out := p.Resolve("/a-very-long-image-name.png", 64, 48)
		assert.NotContains(t, out, "a-very-long")
		assert.Equal(t, 8, lipgloss.Width(out))
	})

	t.Run("unparseable path still draws", func(t *testing.T) {
		out := p.Resolve("", 0, 0)
		assert.Equal(t, 38, lipgloss.Width(out))
	})
}

func TestResolverFunc(t *testing.T) {
	t.Parallel()

	var r Resolver = ResolverFunc(func(path string, width, height int) string {
		return path
	})
	assert.Equal(t, "/x.png", r.Resolve("/x.png", 1, 1))
}
