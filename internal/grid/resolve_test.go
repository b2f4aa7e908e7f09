package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFallsBackToGridDefaults(t *testing.T) {
	t.Parallel()

	s := Default()
	s.CornerType = CornerLarge
	s.BorderColor = BorderBlue

	eff := Resolve(s, 4)
	require.Equal(t, Defaults(s, 4), eff)
	require.Equal(t, "item-5", eff.ID)
	require.Equal(t, 1, eff.RowSpan)
	require.Equal(t, 1, eff.ColSpan)
	require.Equal(t, CornerLarge, eff.CornerType)
	require.Equal(t, BorderBlue, eff.BorderColor)
	require.Equal(t, DefaultTextColor, eff.TextColor)
	require.Equal(t, DefaultTextStyle, eff.TextStyle)
	require.Equal(t, "Grid Item 5", eff.Label())
	require.False(t, eff.HasText())
}

func TestResolveUsesBuiltinsForEmptySettings(t *testing.T) {
	t.Parallel()

	eff := Resolve(Settings{}, 0)
	require.Equal(t, AspectSquare, eff.AspectRatio)
	require.Equal(t, CornerMedium, eff.CornerType)
	require.Equal(t, BorderThin, eff.BorderStyle)
	require.Equal(t, BorderGray, eff.BorderColor)
	require.Equal(t, DefaultBackground, eff.BackgroundColor)
}

func TestResolveOverlaysOverride(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Items = map[int]ItemOverride{
		0: {
			RowSpan:     2,
			ColSpan:     2,
			BorderStyle: Ptr(BorderNone),
			Text:        Ptr("Hello"),
			TextStyle:   TextStyleOverride{Align: Ptr(AlignLeft)},
		},
	}

	eff := Resolve(s, 0)
	require.Equal(t, 2, eff.RowSpan)
	require.Equal(t, 2, eff.ColSpan)
	require.Equal(t, BorderNone, eff.BorderStyle)
	require.Equal(t, "Hello", eff.Text)
	require.True(t, eff.HasText())
	require.Equal(t, AlignLeft, eff.TextStyle.Align)
	require.Equal(t, TextSM, eff.TextStyle.Size)
	require.Equal(t, CornerMedium, eff.CornerType)
}

func TestResolveIgnoresInvalidOverrideValues(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Items = map[int]ItemOverride{
		0: {RowSpan: 0, ColSpan: -3, AspectRatio: Ptr(AspectRatio("9:1")), BackgroundColor: Ptr("blue")},
	}

	eff := Resolve(s, 0)
	require.Equal(t, 1, eff.RowSpan)
	require.Equal(t, 1, eff.ColSpan)
	require.Equal(t, AspectSquare, eff.AspectRatio)
	require.Equal(t, DefaultBackground, eff.BackgroundColor)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() Settings {
		s := Default()
		s = UpdateItem(s, 0, ItemUpdate{ColSpan: Ptr(2), Text: Ptr("a")})
		s = UpdateItem(s, 3, ItemUpdate{BorderColor: Ptr(BorderOrange)})
		return s
	}

	require.Equal(t, ResolveAll(build()), ResolveAll(build()))
}

func TestSpanInvariantAfterShrink(t *testing.T) {
	t.Parallel()

	s, err := UpdateField(Default(), FieldColumns, 6)
	require.NoError(t, err)
	s, err = UpdateField(s, FieldRows, 4)
	require.NoError(t, err)

	for i := 0; i < s.ItemCount; i++ {
		s = UpdateItem(s, i, ItemUpdate{ColSpan: Ptr(i + 1), RowSpan: Ptr(i + 1)})
	}

	for _, cols := range []int{5, 3, 1} {
		s, err = UpdateField(s, FieldColumns, cols)
		require.NoError(t, err)
		s, err = UpdateField(s, FieldRows, cols)
		require.NoError(t, err)
		for _, eff := range ResolveAll(s) {
			require.LessOrEqual(t, eff.ColSpan, s.Columns)
			require.LessOrEqual(t, eff.RowSpan, s.Rows)
		}
	}
}

func TestResolveAllLength(t *testing.T) {
	t.Parallel()

	s := Default()
	s.ItemCount = 9
	all := ResolveAll(s)
	require.Len(t, all, 9)
	for i, eff := range all {
		require.Equal(t, i, eff.Index)
	}

	s.ItemCount = -1
	require.Empty(t, ResolveAll(s))
}
