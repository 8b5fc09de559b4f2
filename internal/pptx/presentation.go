package pptx

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// Default slide size: 16:9 widescreen, 13.333in x 7.5in.
var (
	DefaultWidth  = Inches(13.333)
	DefaultHeight = Inches(7.5)
)

// Properties are the package's document properties (docProps).
type Properties struct {
	Title       string
	Creator     string
	Application string
	// Created is written to core.xml only when non-zero, so output stays
	// reproducible by default.
	Created time.Time
}

// Presentation is an in-memory deck. Build it with AddSlide and the Slide
// methods, then serialise it with WriteTo or Save.
type Presentation struct {
	Properties Properties

	width, height EMU
	slides        []*Slide
	media         []*mediaPart
	mediaByHash   map[[sha256.Size]byte]*mediaPart
}

type mediaPart struct {
	name        string
	contentType string
	data        []byte
}

// New returns an empty presentation with the default widescreen size.
func New() *Presentation {
	return &Presentation{
		Properties:  Properties{Application: "deckgen"},
		width:       DefaultWidth,
		height:      DefaultHeight,
		mediaByHash: make(map[[sha256.Size]byte]*mediaPart),
	}
}

// SetSize sets the slide size for every slide in the deck.
func (p *Presentation) SetSize(width, height EMU) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("slide size must be positive, got %dx%d", width, height)
	}
	p.width, p.height = width, height
	return nil
}

// Size returns the slide width and height.
func (p *Presentation) Size() (EMU, EMU) {
	return p.width, p.height
}

// AddSlide appends a blank slide.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{pres: p, index: len(p.slides) + 1}
	p.slides = append(p.slides, s)
	return s
}

// Slides returns the slides in deck order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// mediaTypes maps accepted picture extensions to content types.
var mediaTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

func (p *Presentation) addMedia(data []byte, ext string) (*mediaPart, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	ct, ok := mediaTypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported picture format %q", ext)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("picture data is empty")
	}

	sum := sha256.Sum256(data)
	if m, ok := p.mediaByHash[sum]; ok {
		return m, nil
	}
	m := &mediaPart{
		name:        fmt.Sprintf("image%d.%s", len(p.media)+1, ext),
		contentType: ct,
		data:        data,
	}
	p.media = append(p.media, m)
	p.mediaByHash[sum] = m
	return m, nil
}
