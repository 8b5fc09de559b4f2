package pptx

import "fmt"

// Geometry is a DrawingML preset geometry name.
type Geometry string

// Supported preset geometries.
const (
	GeometryRect      Geometry = "rect"
	GeometryRoundRect Geometry = "roundRect"
	GeometryEllipse   Geometry = "ellipse"
)

// Align is horizontal paragraph alignment.
type Align string

// Paragraph alignments, using their ST_TextAlignType values.
const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// Anchor is vertical text anchoring inside a shape.
type Anchor string

// Text anchors, using their ST_TextAnchoringType values.
const (
	AnchorTop    Anchor = "t"
	AnchorMiddle Anchor = "ctr"
	AnchorBottom Anchor = "b"
)

// Font describes the character properties of a run.
type Font struct {
	Name  string
	Size  float64 // points
	Bold  bool
	Color Color
}

// Paragraph is one line of text with a single run style.
type Paragraph struct {
	Text  string
	Align Align
	Font  Font
}

// Line is a shape outline. A nil *Line on a Shape means no outline.
type Line struct {
	Color Color
	Width EMU
}

// Shape is a text box or preset auto-shape.
type Shape struct {
	id   int
	Name string

	// TextBox marks the shape as a text box (cNvSpPr txBox="1").
	TextBox  bool
	Geometry Geometry
	Frame    Rect

	// Fill is the solid fill; nil means no fill.
	Fill *Color
	// Line is the outline; nil means no outline.
	Line *Line

	Paragraphs []Paragraph
	WordWrap   bool
	Anchor     Anchor
}

// ID returns the shape id, unique within its slide.
func (s *Shape) ID() int { return s.id }

// Picture is an embedded raster image.
type Picture struct {
	id          int
	Name        string
	Description string
	Frame       Rect
	media       *mediaPart
	relID       string
}

// ID returns the picture id, unique within its slide.
func (p *Picture) ID() int { return p.id }

// Slide is one page of a Presentation. Shapes are drawn in the order they
// were added.
type Slide struct {
	pres       *Presentation
	index      int
	background *Color
	items      []any
	nextID     int
	images     []*Picture
}

// Index returns the 1-based slide number.
func (s *Slide) Index() int { return s.index }

// SetBackground gives the slide a solid background colour.
func (s *Slide) SetBackground(c Color) {
	s.background = &c
}

// Background returns the slide background, if one was set.
func (s *Slide) Background() (Color, bool) {
	if s.background == nil {
		return Color{}, false
	}
	return *s.background, true
}

// Len returns the number of shapes and pictures on the slide.
func (s *Slide) Len() int { return len(s.items) }

func (s *Slide) allocID() int {
	// id 1 is the shape tree itself.
	s.nextID++
	return s.nextID + 1
}

// AddTextBox adds an unfilled, outline-free text box.
func (s *Slide) AddTextBox(frame Rect, paragraphs ...Paragraph) *Shape {
	id := s.allocID()
	sh := &Shape{
		id:         id,
		Name:       fmt.Sprintf("TextBox %d", id-1),
		TextBox:    true,
		Geometry:   GeometryRect,
		Frame:      frame,
		Paragraphs: paragraphs,
		WordWrap:   true,
		Anchor:     AnchorTop,
	}
	s.items = append(s.items, sh)
	return sh
}

// AddShape adds a preset auto-shape. The caller sets Fill, Line and text on
// the returned Shape.
func (s *Slide) AddShape(geom Geometry, frame Rect) *Shape {
	id := s.allocID()
	sh := &Shape{
		id:       id,
		Name:     fmt.Sprintf("%s %d", shapeNames[geom], id-1),
		Geometry: geom,
		Frame:    frame,
		WordWrap: true,
		Anchor:   AnchorMiddle,
	}
	s.items = append(s.items, sh)
	return sh
}

// AddPicture embeds an image. Identical image bytes are stored once per
// package.
func (s *Slide) AddPicture(data []byte, ext string, frame Rect) (*Picture, error) {
	m, err := s.pres.addMedia(data, ext)
	if err != nil {
		return nil, err
	}
	id := s.allocID()
	pic := &Picture{
		id:    id,
		Name:  fmt.Sprintf("Picture %d", id-1),
		Frame: frame,
		media: m,
		// rId1 is the slide layout.
		relID: fmt.Sprintf("rId%d", len(s.images)+2),
	}
	s.images = append(s.images, pic)
	s.items = append(s.items, pic)
	return pic, nil
}

var shapeNames = map[Geometry]string{
	GeometryRect:      "Rectangle",
	GeometryRoundRect: "Rounded Rectangle",
	GeometryEllipse:   "Oval",
}

// Shapes returns the text boxes and auto-shapes on the slide in draw order.
func (s *Slide) Shapes() []*Shape {
	var out []*Shape
	for _, it := range s.items {
		if sh, ok := it.(*Shape); ok {
			out = append(out, sh)
		}
	}
	return out
}

// Pictures returns the pictures on the slide in draw order.
func (s *Slide) Pictures() []*Picture {
	return append([]*Picture(nil), s.images...)
}

// Validate checks every shape and picture on the slide for values a viewer
// would reject: negative extents and out-of-range font sizes.
func (s *Slide) Validate() error {
	for _, it := range s.items {
		switch v := it.(type) {
		case *Shape:
			if err := v.Frame.Validate(); err != nil {
				return fmt.Errorf("%s: %w", v.Name, err)
			}
			for _, p := range v.Paragraphs {
				if err := ValidateFontSize(p.Font.Size); err != nil {
					return fmt.Errorf("%s: %w", v.Name, err)
				}
			}
		case *Picture:
			if err := v.Frame.Validate(); err != nil {
				return fmt.Errorf("%s: %w", v.Name, err)
			}
		}
	}
	return nil
}
