package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readParts unzips a serialised package into a name -> content map.
func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(b)
	}
	return parts
}

func sampleDeck(t *testing.T) *Presentation {
	t.Helper()
	p := New()
	p.Properties.Title = "Sample"
	p.Properties.Creator = "tests"

	s1 := p.AddSlide()
	s1.SetBackground(RGB(0xC7, 0xF4, 0x64))
	s1.AddTextBox(InchRect(0.5, 2.5, 12.333, 1.5), Paragraph{
		Text:  "Hello & <welcome>",
		Align: AlignCenter,
		Font:  Font{Name: "Arial", Size: 54, Bold: true, Color: RGB(0x0D, 0x6B, 0x56)},
	})

	s2 := p.AddSlide()
	card := s2.AddShape(GeometryRoundRect, InchRect(1, 1, 3.5, 2))
	fill := White
	card.Fill = &fill
	circle := s2.AddShape(GeometryEllipse, InchRect(2, 2, 0.8, 0.8))
	circle.Line = &Line{Color: Black, Width: Points(2)}
	return p
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "C7F464", want: RGB(0xC7, 0xF4, 0x64)},
		{in: "#0d6b56", want: RGB(0x0D, 0x6B, 0x56)},
		{in: " FFFFFF ", want: White},
		{in: "FFF", wantErr: true},
		{in: "GGGGGG", wantErr: true},
		{in: "+12345", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EMU(914400), Inches(1))
	assert.Equal(t, EMU(12192000), Inches(13.3333333))
	assert.Equal(t, EMU(25400), Points(2))
	assert.InDelta(t, 7.5, Inches(7.5).Inches(), 1e-9)
	assert.Equal(t, "#0D6B56", RGB(0x0D, 0x6B, 0x56).String())
}

func TestSlide_ShapeIDs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	p := New()
	s := p.AddSlide()

	// --- Act ---
	a := s.AddTextBox(InchRect(0, 0, 1, 1))
	b := s.AddShape(GeometryRect, InchRect(0, 0, 1, 1))

	// --- Assert ---
	assert.Equal(t, 2, a.ID(), "id 1 is reserved for the shape tree")
	assert.Equal(t, 3, b.ID())
	assert.Equal(t, "TextBox 1", a.Name)
	assert.Equal(t, "Rectangle 2", b.Name)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Index())
}

func TestSlide_ShapesAndPictures(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := New().AddSlide()
	box := s.AddTextBox(InchRect(0, 0, 1, 1))
	pic, err := s.AddPicture([]byte("\x89PNG\r\n\x1a\nfake"), "png", InchRect(1, 1, 1, 1))
	require.NoError(t, err)
	oval := s.AddShape(GeometryEllipse, InchRect(2, 2, 1, 1))

	// --- Act ---
	shapes := s.Shapes()
	pics := s.Pictures()

	// --- Assert ---
	assert.Equal(t, []*Shape{box, oval}, shapes)
	assert.Equal(t, []*Picture{pic}, pics)
	assert.Equal(t, "Oval 3", oval.Name)
	assert.Equal(t, 3, s.Len())

	pics[0] = nil
	assert.Same(t, pic, s.Pictures()[0], "Pictures returns a copy")
}

func TestWriteTo_RejectsInvalidGeometryAndFonts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		draw    func(s *Slide)
		wantErr string
	}{
		{
			name:    "negative text box width",
			draw:    func(s *Slide) { s.AddTextBox(InchRect(1, 1, -0.1, 0.5)) },
			wantErr: "slide 1: TextBox 1: negative extent",
		},
		{
			name:    "negative shape height",
			draw:    func(s *Slide) { s.AddShape(GeometryRect, InchRect(1, 1, 1, -2)) },
			wantErr: "slide 1: Rectangle 1: negative extent",
		},
		{
			name: "font below minimum",
			draw: func(s *Slide) {
				s.AddTextBox(InchRect(0, 0, 1, 1), Paragraph{Text: "tiny", Font: Font{Size: 0.5}})
			},
			wantErr: "font size 0.5pt is outside 1-4000pt",
		},
		{
			name: "font above maximum",
			draw: func(s *Slide) {
				s.AddTextBox(InchRect(0, 0, 1, 1), Paragraph{Text: "huge", Font: Font{Size: 5000}})
			},
			wantErr: "font size 5000pt is outside 1-4000pt",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			p := New()
			tc.draw(p.AddSlide())

			// --- Act ---
			_, err := p.Bytes()

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestWriteTo_AcceptsBoundaryValues(t *testing.T) {
	t.Parallel()

	p := New()
	s := p.AddSlide()
	s.AddTextBox(InchRect(-1, -1, 0, 0), Paragraph{Text: "min", Font: Font{Size: MinFontSize}})
	s.AddTextBox(InchRect(0, 0, 1, 1), Paragraph{Text: "max", Font: Font{Size: MaxFontSize}})
	s.AddTextBox(InchRect(0, 0, 1, 1), Paragraph{Text: "inherit"})

	data, err := p.Bytes()
	require.NoError(t, err)
	slide := readParts(t, data)["ppt/slides/slide1.xml"]
	assert.Contains(t, slide, `sz="100"`)
	assert.Contains(t, slide, `sz="400000"`)
}

func TestPresentation_SetSize(t *testing.T) {
	t.Parallel()

	p := New()
	require.Error(t, p.SetSize(0, Inches(7.5)))
	require.NoError(t, p.SetSize(Inches(10), Inches(7.5)))
	w, h := p.Size()
	assert.Equal(t, Inches(10), w)
	assert.Equal(t, Inches(7.5), h)
}

func TestWriteTo_PackageStructure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	p := sampleDeck(t)

	// --- Act ---
	data, err := p.Bytes()
	require.NoError(t, err)
	parts := readParts(t, data)

	// --- Assert ---
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		assert.Contains(t, parts, name)
	}

	pres := parts["ppt/presentation.xml"]
	assert.Contains(t, pres, `<p:sldId id="256" r:id="rId2">`)
	assert.Contains(t, pres, `<p:sldId id="257" r:id="rId3">`)
	assert.Contains(t, pres, `<p:sldSz cx="12191695" cy="6858000">`)

	slide1 := parts["ppt/slides/slide1.xml"]
	assert.True(t, strings.HasPrefix(slide1, xmlHeader))
	assert.Contains(t, slide1, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="C7F464">`)
	assert.Contains(t, slide1, `Hello &amp; &lt;welcome&gt;`)
	assert.Contains(t, slide1, `sz="5400"`)
	assert.Contains(t, slide1, `b="1"`)
	assert.Contains(t, slide1, `<a:pPr algn="ctr">`)
	assert.Contains(t, slide1, `<p:cNvSpPr txBox="1">`)

	slide2 := parts["ppt/slides/slide2.xml"]
	assert.NotContains(t, slide2, "<p:bg>")
	assert.Contains(t, slide2, `<a:prstGeom prst="roundRect">`)
	assert.Contains(t, slide2, `<a:prstGeom prst="ellipse">`)
	assert.Contains(t, slide2, `<a:ln w="25400"><a:solidFill><a:srgbClr val="000000">`)
	assert.Contains(t, slide2, `<a:ln><a:noFill></a:noFill></a:ln>`)

	types := parts["[Content_Types].xml"]
	assert.Contains(t, types, `PartName="/ppt/slides/slide2.xml"`)
	assert.NotContains(t, types, `Extension="png"`)

	app := parts["docProps/app.xml"]
	assert.Contains(t, app, "<Slides>2</Slides>")
	assert.NotContains(t, parts["docProps/core.xml"], "dcterms:created")
}

func TestWriteTo_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := sampleDeck(t).Bytes()
	require.NoError(t, err)
	second, err := sampleDeck(t).Bytes()
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "identical decks must serialise to identical bytes")
}

func TestWriteTo_CreatedTimestamp(t *testing.T) {
	t.Parallel()

	p := New()
	p.Properties.Created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p.AddSlide()

	data, err := p.Bytes()
	require.NoError(t, err)
	core := readParts(t, data)["docProps/core.xml"]
	assert.Contains(t, core, `<dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T12:00:00Z</dcterms:created>`)
}

func TestAddPicture(t *testing.T) {
	t.Parallel()

	t.Run("identical bytes are stored once", func(t *testing.T) {
		p := New()
		img := []byte("\x89PNG\r\n\x1a\nfake")
		s1 := p.AddSlide()
		s2 := p.AddSlide()

		a, err := s1.AddPicture(img, "png", InchRect(0, 0, 1, 1))
		require.NoError(t, err)
		_, err = s2.AddPicture(img, ".PNG", InchRect(1, 1, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, 2, a.ID())

		data, err := p.Bytes()
		require.NoError(t, err)
		parts := readParts(t, data)

		assert.Contains(t, parts, "ppt/media/image1.png")
		assert.NotContains(t, parts, "ppt/media/image2.png")
		assert.Contains(t, parts["[Content_Types].xml"], `<Default Extension="png" ContentType="image/png">`)
		assert.Contains(t, parts["ppt/slides/_rels/slide2.xml.rels"], `Target="../media/image1.png"`)
		assert.Contains(t, parts["ppt/slides/slide1.xml"], `<a:blip r:embed="rId2">`)
	})

	t.Run("jpg is stored as jpeg", func(t *testing.T) {
		p := New()
		_, err := p.AddSlide().AddPicture([]byte{0xFF, 0xD8, 0xFF}, "jpg", InchRect(0, 0, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, "image1.jpeg", p.media[0].name)
	})

	t.Run("rejects unsupported and empty input", func(t *testing.T) {
		s := New().AddSlide()
		_, err := s.AddPicture([]byte("x"), "svg", InchRect(0, 0, 1, 1))
		require.Error(t, err)
		_, err = s.AddPicture(nil, "png", InchRect(0, 0, 1, 1))
		require.Error(t, err)
		assert.Equal(t, 0, s.Len())
	})
}

func TestSave_OverwritesAtomically(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	// --- Act ---
	err := sampleDeck(t).Save(path)

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, readParts(t, data), "ppt/presentation.xml")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left behind")
}

func TestSave_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := New().Save(filepath.Join(t.TempDir(), "missing", "deck.pptx"))
	require.Error(t, err)
}
