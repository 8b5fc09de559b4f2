package canvas

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgen/internal/pptx"
)

func newCanvas(t *testing.T, assets string) *Canvas {
	t.Helper()
	return New(pptx.New().AddSlide(), DefaultTheme(), assets)
}

func TestAddText_SplitsLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := newCanvas(t, "")
	green := pptx.RGB(0x0D, 0x6B, 0x56)

	// --- Act ---
	sh := c.AddText(TextSpec{
		Left: 1.5, Top: 4.5, Width: 10.333, Height: 1.5,
		Text: "first line\nsecond line", Size: 24, Color: green, Align: pptx.AlignCenter,
	})

	// --- Assert ---
	font := pptx.Font{Name: "Arial", Size: 24, Color: green}
	want := []pptx.Paragraph{
		{Text: "first line", Align: pptx.AlignCenter, Font: font},
		{Text: "second line", Align: pptx.AlignCenter, Font: font},
	}
	if diff := cmp.Diff(want, sh.Paragraphs); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, sh.TextBox)
	assert.True(t, sh.WordWrap)
	assert.Equal(t, pptx.InchRect(1.5, 4.5, 10.333, 1.5), sh.Frame)
}

func TestAddText_DefaultsToLeft(t *testing.T) {
	t.Parallel()

	sh := newCanvas(t, "").AddText(TextSpec{Text: "x", Size: 11, Font: "Georgia"})
	require.Len(t, sh.Paragraphs, 1)
	assert.Equal(t, pptx.AlignLeft, sh.Paragraphs[0].Align)
	assert.Equal(t, "Georgia", sh.Paragraphs[0].Font.Name)
}

func TestAddCard(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := newCanvas(t, "")
	theme := c.Theme()

	// --- Act ---
	card := c.AddCard(CardSpec{Left: 0.8, Top: 2.5, Width: 3.8, Height: 2.2, Title: "Role-Play Anxiety", Body: "Nobody enjoys role-plays."})

	// --- Assert ---
	require.NotNil(t, card.Fill)
	assert.Equal(t, theme.Surface, *card.Fill)
	assert.Nil(t, card.Line)
	assert.Equal(t, pptx.GeometryRoundRect, card.Geometry)
	assert.Equal(t, 3, c.Slide().Len(), "card, title and body")
}

func TestAddCard_Defaults(t *testing.T) {
	t.Parallel()

	c := newCanvas(t, "")
	card := c.AddCard(CardSpec{Left: 1, Top: 1, Title: "T", Body: "B"})
	assert.Equal(t, pptx.InchRect(1, 1, DefaultCardWidth, DefaultCardHeight), card.Frame)
}

func TestAddShape(t *testing.T) {
	t.Parallel()

	green := pptx.RGB(0x0D, 0x6B, 0x56)

	t.Run("outlined with label", func(t *testing.T) {
		c := newCanvas(t, "")
		sh := c.AddShape(ShapeSpec{
			Geometry: pptx.GeometryEllipse, Left: 1, Top: 1, Width: 0.8, Height: 0.8,
			Fill: &green, Line: &green, LineWidth: 2,
			Label: "1", LabelSize: 24, LabelColor: pptx.White, LabelBold: true,
		})
		require.NotNil(t, sh.Line)
		assert.Equal(t, pptx.Points(2), sh.Line.Width)
		require.Len(t, sh.Paragraphs, 1)
		assert.Equal(t, pptx.AlignCenter, sh.Paragraphs[0].Align)
		assert.Equal(t, pptx.AnchorMiddle, sh.Anchor)
	})

	t.Run("bare shape", func(t *testing.T) {
		c := newCanvas(t, "")
		sh := c.AddShape(ShapeSpec{Left: 1, Top: 1, Width: 1, Height: 1})
		assert.Equal(t, pptx.GeometryRoundRect, sh.Geometry)
		assert.Nil(t, sh.Fill)
		assert.Nil(t, sh.Line)
		assert.Empty(t, sh.Paragraphs)
	})
}

func TestAddImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing optional image is skipped", func(t *testing.T) {
		c := newCanvas(t, t.TempDir())
		placed, err := c.AddImage(ctx, ImageSpec{Path: "logo.png", Width: 1, Height: 1, Optional: true})
		require.NoError(t, err)
		assert.False(t, placed)
		assert.Equal(t, 0, c.Slide().Len())
	})

	t.Run("missing required image fails", func(t *testing.T) {
		c := newCanvas(t, t.TempDir())
		_, err := c.AddImage(ctx, ImageSpec{Path: "logo.png", Width: 1, Height: 1})
		require.Error(t, err)
	})

	t.Run("present image is placed", func(t *testing.T) {
		dir := t.TempDir()
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 1))))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), buf.Bytes(), 0o600))

		c := newCanvas(t, dir)
		placed, err := c.AddImage(ctx, ImageSpec{Path: "logo.png", Left: 0, Top: 0, Width: 2, Height: 2})
		require.NoError(t, err)
		assert.True(t, placed)
		assert.Equal(t, 1, c.Slide().Len())
	})
}

func TestParseAlign(t *testing.T) {
	t.Parallel()

	testCases := map[string]pptx.Align{
		"":       pptx.AlignLeft,
		"left":   pptx.AlignLeft,
		"Center": pptx.AlignCenter,
		"right":  pptx.AlignRight,
	}
	for in, want := range testCases {
		got, err := ParseAlign(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAlign("justify")
	require.Error(t, err)
}

func TestParseGeometry(t *testing.T) {
	t.Parallel()

	testCases := map[string]pptx.Geometry{
		"":           pptx.GeometryRoundRect,
		"round_rect": pptx.GeometryRoundRect,
		"rect":       pptx.GeometryRect,
		"ellipse":    pptx.GeometryEllipse,
		"circle":     pptx.GeometryEllipse,
	}
	for in, want := range testCases {
		got, err := ParseGeometry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseGeometry("star")
	require.Error(t, err)
}

func TestColorHelpers(t *testing.T) {
	t.Parallel()

	got, err := ColorOr("", pptx.White)
	require.NoError(t, err)
	assert.Equal(t, pptx.White, got)

	got, err = ColorOr("#0d6b56", pptx.White)
	require.NoError(t, err)
	assert.Equal(t, pptx.RGB(0x0D, 0x6B, 0x56), got)

	opt, err := OptionalColor("")
	require.NoError(t, err)
	assert.Nil(t, opt)

	opt, err = OptionalColor("C7F464")
	require.NoError(t, err)
	require.NotNil(t, opt)
	assert.Equal(t, "C7F464", opt.Hex())

	_, err = OptionalColor("lime")
	assert.Error(t, err)
}

func TestSizeChecks(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		check   func() error
		wantErr string
	}{
		{name: "card at default size", check: func() error { return CheckCardSize(DefaultCardWidth, DefaultCardHeight) }},
		{name: "card narrower than its insets", check: func() error { return CheckCardSize(0.3, 2) }, wantErr: "width must exceed 0.4in"},
		{name: "card exactly as wide as its insets", check: func() error { return CheckCardSize(0.4, 2) }, wantErr: "too small"},
		{name: "card with zero height", check: func() error { return CheckCardSize(3, 0) }, wantErr: "too small"},
		{name: "font at bounds", check: func() error { return errors.Join(CheckFontSize(1), CheckFontSize(4000)) }},
		{name: "font below minimum", check: func() error { return CheckFontSize(0.5) }, wantErr: "between 1 and 4000pt, got 0.5"},
		{name: "font above maximum", check: func() error { return CheckFontSize(5000) }, wantErr: "got 5000"},
		{name: "zero extent", check: func() error { return CheckExtent(0, 0) }},
		{name: "negative width", check: func() error { return CheckExtent(-1, 1) }, wantErr: "must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.check()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
