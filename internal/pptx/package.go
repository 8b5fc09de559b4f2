package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

//go:embed parts/*.xml
var staticParts embed.FS

// staticPartNames maps package part names to the embedded boilerplate that
// backs them. Every deck shares one master, one blank layout and one theme.
var staticPartNames = []struct {
	name, file, contentType string
}{
	{"ppt/presProps.xml", "parts/presProps.xml", ctPresProps},
	{"ppt/viewProps.xml", "parts/viewProps.xml", ctViewProps},
	{"ppt/tableStyles.xml", "parts/tableStyles.xml", ctTableStyles},
	{"ppt/theme/theme1.xml", "parts/theme1.xml", ctTheme},
	{"ppt/slideMasters/slideMaster1.xml", "parts/slideMaster1.xml", ctSlideMaster},
	{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "parts/slideMaster1.rels.xml", ""},
	{"ppt/slideLayouts/slideLayout1.xml", "parts/slideLayout1.xml", ctSlideLayout},
	{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "parts/slideLayout1.rels.xml", ""},
}

// zipEpoch is the modification time stamped on every entry.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}

// parts renders every package part in a fixed order.
func (p *Presentation) parts() ([]part, error) {
	for _, s := range p.slides {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: %w", s.index, err)
		}
	}

	var out []part
	add := func(name string, v any) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		out = append(out, part{name: name, data: data})
		return nil
	}

	if err := add("[Content_Types].xml", p.contentTypes()); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", rootRels()); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", p.coreProps()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", p.appProps()); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", p.toXML()); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", p.relsXML()); err != nil {
		return nil, err
	}

	for _, sp := range staticPartNames {
		data, err := staticParts.ReadFile(sp.file)
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", sp.file, err)
		}
		out = append(out, part{name: sp.name, data: data})
	}

	for i, s := range p.slides {
		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), s.toXML()); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), s.relsXML()); err != nil {
			return nil, err
		}
	}

	for _, m := range p.media {
		out = append(out, part{name: "ppt/media/" + m.name, data: m.data})
	}
	return out, nil
}

func (p *Presentation) contentTypes() xTypes {
	types := xTypes{Defaults: []xDefault{
		{Extension: "rels", ContentType: ctRelationships},
		{Extension: "xml", ContentType: ctXML},
	}}

	exts := make(map[string]string)
	for _, m := range p.media {
		exts[strings.TrimPrefix(filepath.Ext(m.name), ".")] = m.contentType
	}
	keys := make([]string, 0, len(exts))
	for k := range exts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		types.Defaults = append(types.Defaults, xDefault{Extension: k, ContentType: exts[k]})
	}

	types.Overrides = append(types.Overrides,
		xOverride{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
		xOverride{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		xOverride{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
	)
	for _, sp := range staticPartNames {
		if sp.contentType == "" {
			continue
		}
		types.Overrides = append(types.Overrides, xOverride{PartName: "/" + sp.name, ContentType: sp.contentType})
	}
	for i := range p.slides {
		types.Overrides = append(types.Overrides, xOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	return types
}

func rootRels() xRelationships {
	return xRelationships{Rels: []xRelationship{
		{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	}}
}

func (p *Presentation) coreProps() xCoreProperties {
	core := xCoreProperties{
		CP:       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:       "http://purl.org/dc/elements/1.1/",
		DCTerms:  "http://purl.org/dc/terms/",
		DCMIType: "http://purl.org/dc/dcmitype/",
		XSI:      "http://www.w3.org/2001/XMLSchema-instance",
		Title:    norm.NFC.String(p.Properties.Title),
		Creator:  norm.NFC.String(p.Properties.Creator),
	}
	if !p.Properties.Created.IsZero() {
		stamp := p.Properties.Created.UTC().Format(time.RFC3339)
		core.Created = &xW3CDate{Type: "dcterms:W3CDTF", Value: stamp}
		core.Modified = &xW3CDate{Type: "dcterms:W3CDTF", Value: stamp}
	}
	return core
}

func (p *Presentation) appProps() xAppProperties {
	return xAppProperties{
		Application:        p.Properties.Application,
		PresentationFormat: "Custom",
		Slides:             len(p.slides),
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the complete .pptx package to w. It implements io.WriterTo.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	parts, err := p.parts()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, pt := range parts {
		hdr := &zip.FileHeader{
			Name:     pt.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", pt.name, err)
		}
		if _, err := fw.Write(pt.data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finalizing package: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the serialised package.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to path. The file is written to a temporary file
// in the same directory and renamed into place, so an existing file is never
// left half-written.
func (p *Presentation) Save(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".deckgen-*.pptx")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = p.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving package into place: %w", err)
	}
	return nil
}
