package pptx

import (
	"encoding/xml"
)

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Relationship types.
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = nsRelationships + "/extended-properties"
	relSlideMaster    = nsRelationships + "/slideMaster"
	relSlideLayout    = nsRelationships + "/slideLayout"
	relSlide          = nsRelationships + "/slide"
	relTheme          = nsRelationships + "/theme"
	relPresProps      = nsRelationships + "/presProps"
	relViewProps      = nsRelationships + "/viewProps"
	relTableStyles    = nsRelationships + "/tableStyles"
	relImage          = nsRelationships + "/image"
)

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// xmlHeader is written before every XML part.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// nsDecl carries the three namespace declarations every PresentationML part
// root needs. Element names below use literal prefixes, so the declarations
// are written as plain attributes.
type nsDecl struct {
	A string `xml:"xmlns:a,attr"`
	R string `xml:"xmlns:r,attr"`
	P string `xml:"xmlns:p,attr"`
}

func newNSDecl() nsDecl {
	return nsDecl{A: nsDrawingML, R: nsRelationships, P: nsPresentationML}
}

// --- package-level parts ---

type xTypes struct {
	XMLName   xml.Name    `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xRelationships struct {
	XMLName xml.Name        `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xCoreProperties struct {
	XMLName  xml.Name  `xml:"cp:coreProperties"`
	CP       string    `xml:"xmlns:cp,attr"`
	DC       string    `xml:"xmlns:dc,attr"`
	DCTerms  string    `xml:"xmlns:dcterms,attr"`
	DCMIType string    `xml:"xmlns:dcmitype,attr"`
	XSI      string    `xml:"xmlns:xsi,attr"`
	Title    string    `xml:"dc:title,omitempty"`
	Creator  string    `xml:"dc:creator,omitempty"`
	Created  *xW3CDate `xml:"dcterms:created,omitempty"`
	Modified *xW3CDate `xml:"dcterms:modified,omitempty"`
}

type xW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type xAppProperties struct {
	XMLName            xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
}

// --- ppt/presentation.xml ---

type xPresentation struct {
	XMLName xml.Name `xml:"p:presentation"`
	nsDecl
	SaveSubsetFonts string          `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  xSldMasterIDLst `xml:"p:sldMasterIdLst"`
	SldIDLst        *xSldIDLst      `xml:"p:sldIdLst,omitempty"`
	SldSz           xExt            `xml:"p:sldSz"`
	NotesSz         xExt            `xml:"p:notesSz"`
}

type xSldMasterIDLst struct {
	IDs []xSldMasterID `xml:"p:sldMasterId"`
}

type xSldMasterID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xSldIDLst struct {
	IDs []xSldID `xml:"p:sldId"`
}

type xSldID struct {
	ID  int    `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// --- ppt/slides/slideN.xml ---

type xSlide struct {
	XMLName xml.Name `xml:"p:sld"`
	nsDecl
	CSld      xCSld      `xml:"p:cSld"`
	ClrMapOvr xClrMapOvr `xml:"p:clrMapOvr"`
}

type xCSld struct {
	Bg     *xBg    `xml:"p:bg,omitempty"`
	SpTree xSpTree `xml:"p:spTree"`
}

type xBg struct {
	BgPr xBgPr `xml:"p:bgPr"`
}

type xBgPr struct {
	SolidFill xSolidFill `xml:"a:solidFill"`
	EffectLst struct{}   `xml:"a:effectLst"`
}

type xClrMapOvr struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

// xSpTree holds a heterogeneous, ordered list of shapes and pictures, so it
// encodes its children itself.
type xSpTree struct {
	NvGrpSpPr xNvGrpSpPr
	GrpSpPr   xGrpSpPr
	Items     []any
}

func (t xSpTree) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(t.NvGrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:nvGrpSpPr"}}); err != nil {
		return err
	}
	if err := e.EncodeElement(t.GrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:grpSpPr"}}); err != nil {
		return err
	}
	for _, item := range t.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type xNvGrpSpPr struct {
	CNvPr      xCNvPr   `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type xGrpSpPr struct {
	Xfrm xGrpXfrm `xml:"a:xfrm"`
}

type xGrpXfrm struct {
	Off   xOff `xml:"a:off"`
	Ext   xExt `xml:"a:ext"`
	ChOff xOff `xml:"a:chOff"`
	ChExt xExt `xml:"a:chExt"`
}

type xCNvPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xOff struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xExt struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xXfrm struct {
	Off xOff `xml:"a:off"`
	Ext xExt `xml:"a:ext"`
}

type xSp struct {
	XMLName xml.Name `xml:"p:sp"`
	NvSpPr  xNvSpPr  `xml:"p:nvSpPr"`
	SpPr    xSpPr    `xml:"p:spPr"`
	TxBody  *xTxBody `xml:"p:txBody,omitempty"`
}

type xNvSpPr struct {
	CNvPr   xCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    struct{} `xml:"p:nvPr"`
}

type xCNvSpPr struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type xSpPr struct {
	Xfrm      xXfrm       `xml:"a:xfrm"`
	PrstGeom  xPrstGeom   `xml:"a:prstGeom"`
	NoFill    *struct{}   `xml:"a:noFill,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
	Ln        *xLn        `xml:"a:ln,omitempty"`
}

type xPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xSolidFill struct {
	SrgbClr xSrgbClr `xml:"a:srgbClr"`
}

type xSrgbClr struct {
	Val string `xml:"val,attr"`
}

type xLn struct {
	W         int64       `xml:"w,attr,omitempty"`
	NoFill    *struct{}   `xml:"a:noFill,omitempty"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
}

type xTxBody struct {
	BodyPr   xBodyPr  `xml:"a:bodyPr"`
	LstStyle struct{} `xml:"a:lstStyle"`
	P        []xP     `xml:"a:p"`
}

type xBodyPr struct {
	Wrap   string `xml:"wrap,attr"`
	RtlCol string `xml:"rtlCol,attr"`
	Anchor string `xml:"anchor,attr"`
}

type xP struct {
	PPr        *xPPr `xml:"a:pPr,omitempty"`
	R          []xR  `xml:"a:r"`
	EndParaRPr *xRPr `xml:"a:endParaRPr,omitempty"`
}

type xPPr struct {
	Algn string `xml:"algn,attr,omitempty"`
}

type xR struct {
	RPr xRPr   `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type xRPr struct {
	Lang      string      `xml:"lang,attr"`
	Sz        int         `xml:"sz,attr,omitempty"`
	B         string      `xml:"b,attr,omitempty"`
	Dirty     string      `xml:"dirty,attr"`
	SolidFill *xSolidFill `xml:"a:solidFill,omitempty"`
	Latin     *xTypeface  `xml:"a:latin,omitempty"`
	Cs        *xTypeface  `xml:"a:cs,omitempty"`
}

type xTypeface struct {
	Typeface string `xml:"typeface,attr"`
}

type xPic struct {
	XMLName  xml.Name  `xml:"p:pic"`
	NvPicPr  xNvPicPr  `xml:"p:nvPicPr"`
	BlipFill xBlipFill `xml:"p:blipFill"`
	SpPr     xSpPr     `xml:"p:spPr"`
}

type xNvPicPr struct {
	CNvPr    xCNvPr    `xml:"p:cNvPr"`
	CNvPicPr xCNvPicPr `xml:"p:cNvPicPr"`
	NvPr     struct{}  `xml:"p:nvPr"`
}

type xCNvPicPr struct {
	PicLocks xPicLocks `xml:"a:picLocks"`
}

type xPicLocks struct {
	NoChangeAspect string `xml:"noChangeAspect,attr"`
}

type xBlipFill struct {
	Blip    xBlip    `xml:"a:blip"`
	Stretch xStretch `xml:"a:stretch"`
}

type xBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type xStretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}
