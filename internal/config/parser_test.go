package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	bentoerrors "github.com/alexisbeaulieu97/bentogrid/pkg/errors"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1"
name: "Landing hero"
grid:
  columns: 4
  rows: 3
  gap: 2
  item_count: 8
  corner: lg
  background: "#112233"
items:
  - index: 0
    row_span: 2
    col_span: 2
    text: "Hero"
    text_color: "#FFFFFF"
    text_style:
      size: 2xl
      weight: bold
`

	invalidYAML := `version: "1"
grid:
  columns: [4
`

	unknownField := `version: "1"
grid:
  columns: 4
  flavor: vanilla
`

	badColor := `version: "1"
grid:
  background: notacolor
`

	badVersion := `version: "2"
grid:
  columns: 3
`

	duplicateIndex := `version: "1"
items:
  - index: 1
    text: a
  - index: 1
    text: b
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid layout is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Landing hero", doc.Name)
				require.Len(t, doc.Items, 1)
				require.Equal(t, 4, *doc.Grid.Columns)
				require.Equal(t, "2xl", doc.Items[0].TextStyle.Size)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				require.Nil(t, doc)
				var parseErr *bentoerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown field is rejected",
			contents: unknownField,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *bentoerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, err.Error(), "flavor")
			},
		},
		{
			name:     "malformed color fails validation",
			contents: badColor,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var valErr *bentoerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "grid.background", valErr.Field)
			},
		},
		{
			name:     "unsupported version fails validation",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *bentoerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "version", valErr.Field)
			},
		},
		{
			name:     "duplicate item index fails validation",
			contents: duplicateIndex,
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *bentoerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "items[1].index", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeTempLayout(t, tc.contents)
			doc, err := ParseLayout(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseLayoutMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var parseErr *bentoerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeLayoutEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodeLayout(nil, "stdin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestDocumentSettings(t *testing.T) {
	t.Parallel()

	doc, err := DecodeLayout([]byte(`version: "1"
grid:
  columns: 20
  rows: 2
items:
  - index: 3
    row_span: 5
    corner: full
`), "inline")
	require.NoError(t, err)

	s, err := doc.Settings()
	require.NoError(t, err)
	require.Equal(t, grid.MaxTracks, s.Columns)

	item := grid.Resolve(s, 3)
	require.Equal(t, 2, item.RowSpan)
	require.Equal(t, grid.CornerFull, item.CornerType)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		assertRoundTrip(t, grid.Default())
	})

	t.Run("with overrides", func(t *testing.T) {
		t.Parallel()
		s, err := grid.UpdateField(grid.Default(), grid.FieldColumns, 4)
		require.NoError(t, err)
		s, err = grid.UpdateField(s, grid.FieldUseImages, true)
		require.NoError(t, err)
		s = grid.UpdateItem(s, 2, grid.ItemUpdate{
			ColSpan:   grid.Ptr(3),
			Text:      grid.Ptr("Pricing"),
			TextColor: grid.Ptr("#FAFAFA"),
			TextStyle: grid.TextStyleOverride{Weight: grid.Ptr(grid.WeightBold)},
		})
		assertRoundTrip(t, s)
	})
}

func TestWriteLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, WriteLayout(path, FromSettings("saved", grid.Default())))

	doc, err := ParseLayout(path)
	require.NoError(t, err)
	require.Equal(t, "saved", doc.Name)
	require.Equal(t, CurrentVersion, doc.Version)
}

func assertRoundTrip(t *testing.T, s grid.Settings) {
	t.Helper()

	data, err := Marshal(FromSettings("round trip", s))
	require.NoError(t, err)

	doc, err := DecodeLayout(data, "round trip")
	require.NoError(t, err)

	got, err := doc.Settings()
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func writeTempLayout(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExampleLayoutsParse(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "layouts", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			doc, err := ParseLayout(path)
			require.NoError(t, err)
			_, err = doc.Settings()
			require.NoError(t, err)
		})
	}
}
