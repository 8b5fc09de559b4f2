package shape

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

	testCases := []struct {
		name     string
		input    func(in *Input)
		wantGeom pptx.Geometry
		check    func(t *testing.T, sh *pptx.Shape)
	}{
		{
			name:     "filled button without outline",
			input:    func(in *Input) { in.Fill = "0D6B56" },
			wantGeom: pptx.GeometryRoundRect,
			check: func(t *testing.T, sh *pptx.Shape) {
				assert.Equal(t, "0D6B56", sh.Fill.Hex())
				assert.Nil(t, sh.Line)
				assert.Empty(t, sh.Paragraphs)
			},
		},
		{
			name: "outlined ellipse",
			input: func(in *Input) {
				in.Shape, in.Line, in.LineWidth = "circle", "1A1A1A", 3
			},
			wantGeom: pptx.GeometryEllipse,
			check: func(t *testing.T, sh *pptx.Shape) {
				assert.Nil(t, sh.Fill)
				require.NotNil(t, sh.Line)
				assert.Equal(t, pptx.Points(3), sh.Line.Width)
			},
		},
		{
			name: "labelled rectangle",
			input: func(in *Input) {
				in.Shape, in.Label, in.LabelColor = "rect", "Start Free Trial", "FFFFFF"
			},
			wantGeom: pptx.GeometryRect,
			check: func(t *testing.T, sh *pptx.Shape) {
				require.Len(t, sh.Paragraphs, 1)
				p := sh.Paragraphs[0]
				assert.Equal(t, "Start Free Trial", p.Text)
				assert.Equal(t, pptx.AlignCenter, p.Align)
				assert.True(t, p.Font.Bold)
				assert.Equal(t, 18.0, p.Font.Size)
				assert.Equal(t, pptx.White, p.Font.Color)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			c := canvas.New(pptx.New().AddSlide(), canvas.DefaultTheme(), "")
			in := newInput().(*Input)
			in.Left, in.Top, in.Width, in.Height = 4.8, 5.3, 3.7, 0.7
			tc.input(in)

			// --- Act ---
			require.NoError(t, Draw(context.Background(), c, in))

			// --- Assert ---
			shapes := c.Slide().Shapes()
			require.Len(t, shapes, 1)
			assert.Equal(t, tc.wantGeom, shapes[0].Geometry)
			assert.Equal(t, pptx.InchRect(4.8, 5.3, 3.7, 0.7), shapes[0].Frame)
			tc.check(t, shapes[0])
		})
	}
}

func TestDraw_Errors(t *testing.T) {
	t.Parallel()

	c := canvas.New(pptx.New().AddSlide(), canvas.DefaultTheme(), "")

	in := newInput().(*Input)
	in.Shape, in.Width, in.Height = "star", 1, 1
	assert.ErrorContains(t, Draw(context.Background(), c, in), "unknown shape")

	in = newInput().(*Input)
	assert.ErrorContains(t, Draw(context.Background(), c, in), "must be positive")

	in = newInput().(*Input)
	in.Width, in.Height, in.Label, in.LabelSize = 1, 1, "Go", 5000
	assert.ErrorContains(t, Draw(context.Background(), c, in), "label_size: size must be between 1 and 4000pt")

	in = newInput().(*Input)
	in.Width, in.Height, in.LabelSize = 1, 1, 0
	assert.NoError(t, Draw(context.Background(), c, in), "label_size is unused without a label")

	in = newInput().(*Input)
	in.Width, in.Height, in.Line = 1, 1, "black"
	assert.ErrorContains(t, Draw(context.Background(), c, in), "line")
}
