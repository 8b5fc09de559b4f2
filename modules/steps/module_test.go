package steps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/pptx"
)

func TestDraw(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := canvas.New(pptx.New().AddSlide(), canvas.DefaultTheme(), "")
	in := newInput().(*Input)
	in.Left, in.Top = 0.8, 2.5
	in.Items = []Item{
		{Title: "Register", Body: "Access dashboard,\nselect package"},
		{Title: "Onboard", Body: "Bring your team,\nassign roles"},
	}

	// --- Act ---
	require.NoError(t, Draw(context.Background(), c, in))

	// --- Assert ---
	shapes := c.Slide().Shapes()
	require.Len(t, shapes, 10)

	card, badge, number, title, body := shapes[5], shapes[6], shapes[7], shapes[8], shapes[9]
	assert.Equal(t, pptx.InchRect(3.9, 2.5, 2.8, 3), card.Frame)
	assert.Equal(t, pptx.GeometryEllipse, badge.Geometry)
	assert.Equal(t, pptx.InchRect(4.9, 2.8, 0.8, 0.8), badge.Frame)
	assert.Equal(t, canvas.DefaultTheme().Accent, *badge.Fill)
	assert.Equal(t, pptx.InchRect(5.15, 2.9, 0.5, 0.5), number.Frame)
	assert.Equal(t, "2", number.Paragraphs[0].Text)
	assert.Equal(t, pptx.White, number.Paragraphs[0].Font.Color)
	assert.Equal(t, pptx.InchRect(4.2, 3.9, 2.2, 0.5), title.Frame)
	assert.Equal(t, "Onboard", title.Paragraphs[0].Text)
	require.Len(t, body.Paragraphs, 2)
	assert.Equal(t, pptx.InchRect(4.2, 4.5, 2.2, 1), body.Frame)
	assert.Equal(t, pptx.AlignCenter, body.Paragraphs[1].Align)
}

func TestDraw_StartNumber(t *testing.T) {
	t.Parallel()

	c := canvas.New(pptx.New().AddSlide(), canvas.DefaultTheme(), "")
	in := newInput().(*Input)
	in.Start = 5
	in.Items = []Item{{Title: "a"}}

	require.NoError(t, Draw(context.Background(), c, in))
	assert.Equal(t, "5", c.Slide().Shapes()[2].Paragraphs[0].Text)
}

func TestDraw_TooSmall(t *testing.T) {
	t.Parallel()

	c := canvas.New(pptx.New().AddSlide(), canvas.DefaultTheme(), "")
	in := newInput().(*Input)
	in.Height = 1

	assert.ErrorContains(t, Draw(context.Background(), c, in), "too small")
}
