package pptx

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"
)

// textLang is the language tag written on every run.
const textLang = "en-US"

func solidFill(c Color) *xSolidFill {
	return &xSolidFill{SrgbClr: xSrgbClr{Val: c.Hex()}}
}

func xfrm(r Rect) xXfrm {
	return xXfrm{
		Off: xOff{X: int64(r.X), Y: int64(r.Y)},
		Ext: xExt{Cx: int64(r.W), Cy: int64(r.H)},
	}
}

func (s *Slide) toXML() xSlide {
	out := xSlide{nsDecl: newNSDecl()}
	if s.background != nil {
		out.CSld.Bg = &xBg{BgPr: xBgPr{SolidFill: *solidFill(*s.background)}}
	}

	tree := &out.CSld.SpTree
	tree.NvGrpSpPr.CNvPr = xCNvPr{ID: 1, Name: ""}
	for _, item := range s.items {
		switch v := item.(type) {
		case *Shape:
			tree.Items = append(tree.Items, v.toXML())
		case *Picture:
			tree.Items = append(tree.Items, v.toXML())
		}
	}
	return out
}

func (s *Slide) relsXML() xRelationships {
	rels := xRelationships{Rels: []xRelationship{{
		ID:     "rId1",
		Type:   relSlideLayout,
		Target: "../slideLayouts/slideLayout1.xml",
	}}}
	for _, pic := range s.images {
		rels.Rels = append(rels.Rels, xRelationship{
			ID:     pic.relID,
			Type:   relImage,
			Target: "../media/" + pic.media.name,
		})
	}
	return rels
}

func (sh *Shape) toXML() xSp {
	sp := xSp{
		NvSpPr: xNvSpPr{CNvPr: xCNvPr{ID: sh.id, Name: sh.Name}},
		SpPr: xSpPr{
			Xfrm:     xfrm(sh.Frame),
			PrstGeom: xPrstGeom{Prst: string(sh.Geometry)},
		},
	}
	if sh.TextBox {
		sp.NvSpPr.CNvSpPr.TxBox = "1"
	}

	if sh.Fill != nil {
		sp.SpPr.SolidFill = solidFill(*sh.Fill)
	} else {
		sp.SpPr.NoFill = &struct{}{}
	}
	if sh.Line != nil {
		sp.SpPr.Ln = &xLn{W: int64(sh.Line.Width), SolidFill: solidFill(sh.Line.Color)}
	} else if !sh.TextBox {
		// Without an explicit no-fill line, auto-shapes pick up the theme outline.
		sp.SpPr.Ln = &xLn{NoFill: &struct{}{}}
	}

	if len(sh.Paragraphs) > 0 {
		sp.TxBody = sh.textBody()
	}
	return sp
}

func (sh *Shape) textBody() *xTxBody {
	wrap := "none"
	if sh.WordWrap {
		wrap = "square"
	}
	anchor := sh.Anchor
	if anchor == "" {
		anchor = AnchorTop
	}
	body := &xTxBody{BodyPr: xBodyPr{Wrap: wrap, RtlCol: "0", Anchor: string(anchor)}}

	for _, para := range sh.Paragraphs {
		p := xP{}
		if para.Align != "" {
			p.PPr = &xPPr{Algn: string(para.Align)}
		}
		rpr := runProps(para.Font)
		if para.Text == "" {
			p.EndParaRPr = &rpr
		} else {
			p.R = []xR{{RPr: rpr, T: norm.NFC.String(para.Text)}}
		}
		body.P = append(body.P, p)
	}
	return body
}

func runProps(f Font) xRPr {
	rpr := xRPr{Lang: textLang, Dirty: "0"}
	if f.Size > 0 {
		// sz is in hundredths of a point.
		rpr.Sz = int(math.Round(f.Size * 100))
	}
	if f.Bold {
		rpr.B = "1"
	}
	rpr.SolidFill = solidFill(f.Color)
	if f.Name != "" {
		rpr.Latin = &xTypeface{Typeface: f.Name}
		rpr.Cs = &xTypeface{Typeface: f.Name}
	}
	return rpr
}

func (p *Picture) toXML() xPic {
	return xPic{
		NvPicPr: xNvPicPr{
			CNvPr:    xCNvPr{ID: p.id, Name: p.Name, Descr: norm.NFC.String(p.Description)},
			CNvPicPr: xCNvPicPr{PicLocks: xPicLocks{NoChangeAspect: "1"}},
		},
		BlipFill: xBlipFill{Blip: xBlip{Embed: p.relID}},
		SpPr: xSpPr{
			Xfrm:     xfrm(p.Frame),
			PrstGeom: xPrstGeom{Prst: string(GeometryRect)},
		},
	}
}

func (p *Presentation) toXML() xPresentation {
	out := xPresentation{
		nsDecl:          newNSDecl(),
		SaveSubsetFonts: "1",
		SldMasterIDLst: xSldMasterIDLst{IDs: []xSldMasterID{{
			ID:  2147483648,
			RID: "rId1",
		}}},
		SldSz:   xExt{Cx: int64(p.width), Cy: int64(p.height)},
		NotesSz: xExt{Cx: 6858000, Cy: 9144000},
	}
	if len(p.slides) > 0 {
		out.SldIDLst = &xSldIDLst{}
		for i := range p.slides {
			out.SldIDLst.IDs = append(out.SldIDLst.IDs, xSldID{
				ID:  256 + i,
				RID: slideRelID(i),
			})
		}
	}
	return out
}

// slideRelID is the presentation relationship id of the i-th (0-based)
// slide. rId1 is the slide master.
func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", i+2)
}

func (p *Presentation) relsXML() xRelationships {
	rels := xRelationships{Rels: []xRelationship{{
		ID:     "rId1",
		Type:   relSlideMaster,
		Target: "slideMasters/slideMaster1.xml",
	}}}
	for i := range p.slides {
		rels.Rels = append(rels.Rels, xRelationship{
			ID:     slideRelID(i),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	next := len(p.slides) + 2
	for _, extra := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels.Rels = append(rels.Rels, xRelationship{
			ID:     fmt.Sprintf("rId%d", next),
			Type:   extra.typ,
			Target: extra.target,
		})
		next++
	}
	return rels
}
