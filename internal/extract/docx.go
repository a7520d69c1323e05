package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDocx parses a DOCX archive into an ordered Document. Paragraphs
// and tables keep their source interleaving. Style names and outline
// levels resolve against word/styles.xml when present; a missing style
// table is not an error, the metadata just stays empty.
func ReadDocx(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	body, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var parsed docXML
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	doc := &Document{Body: parsed.Body.elements}

	var styles map[string]styleInfo
	if raw, err := readZipFile(zr, "word/styles.xml"); err == nil {
		styles = parseStyles(raw)
	}
	for _, el := range doc.Body {
		p, ok := el.(*Paragraph)
		if !ok {
			continue
		}
		info, ok := styles[p.StyleID]
		if !ok {
			continue
		}
		p.StyleName = info.name
		// A direct w:outlineLvl on the paragraph wins over the style.
		if p.OutlineLevel < 0 && info.outline >= 0 {
			p.OutlineLevel = info.outline
		}
	}
	return doc, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not in archive", name)
}

type docXML struct {
	Body bodyXML `xml:"body"`
}

// bodyXML walks w:body token by token so paragraphs and tables land in
// one slice in source order. Struct-tag decoding would split them into
// two slices and lose the interleaving.
type bodyXML struct {
	elements []BodyElement
}

func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p := &Paragraph{}
				if err := d.DecodeElement(p, &t); err != nil {
					return err
				}
				b.elements = append(b.elements, p)
			case "tbl":
				tbl := &Table{}
				if err := d.DecodeElement(tbl, &t); err != nil {
					return err
				}
				b.elements = append(b.elements, tbl)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML walks the whole w:p subtree rather than matching direct
// children, so runs inside hyperlinks or other wrappers still count.
// Text-box paragraphs nested via drawings flatten into this paragraph;
// depth tracks that same-name nesting so the walk ends at the right
// close tag.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.OutlineLevel = -1
	p.NumberingLevel = -1

	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name == start.Name {
				depth++
				continue
			}
			switch t.Name.Local {
			case "pStyle":
				p.StyleID = attrVal(t, "val")
				if err := d.Skip(); err != nil {
					return err
				}
			case "numPr":
				// Presence alone marks a list paragraph; ilvl refines it.
				if p.NumberingLevel < 0 {
					p.NumberingLevel = 0
				}
			case "ilvl":
				if lvl, err := strconv.Atoi(attrVal(t, "val")); err == nil {
					p.NumberingLevel = lvl
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "outlineLvl":
				if lvl, err := strconv.Atoi(attrVal(t, "val")); err == nil {
					p.OutlineLevel = lvl
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				if text := strings.Join(r.Text, ""); text != "" {
					p.Runs = append(p.Runs, Run{
						Text:   text,
						Bold:   r.Props.Bold.enabled(),
						Italic: r.Props.Italic.enabled(),
					})
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				if depth == 0 {
					return nil
				}
				depth--
			}
		}
	}
}

func (t *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "tr" {
				row, err := readRow(d, el)
				if err != nil {
					return err
				}
				t.Rows = append(t.Rows, row)
			}
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// readRow consumes one w:tr. Nested tables never surface here: each
// w:tc subtree is consumed whole by cellText, which folds any table
// inside it into that cell's text.
func readRow(d *xml.Decoder, start xml.StartElement) ([]string, error) {
	var cells []string
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "tc" {
				text, err := cellText(d, el)
				if err != nil {
					return nil, err
				}
				cells = append(cells, text)
			}
		case xml.EndElement:
			if el.Name == start.Name {
				return cells, nil
			}
		}
	}
}

// cellText collects every w:t under one w:tc, joining paragraphs with
// spaces and collapsing runs of whitespace. depth tracks w:tc elements
// of nested tables so the walk closes on the outer cell.
func cellText(d *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 0
	inText := false
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name == start.Name {
				depth++
				continue
			}
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch {
			case el.Name == start.Name:
				if depth == 0 {
					return strings.Join(strings.Fields(sb.String()), " "), nil
				}
				depth--
			case el.Name.Local == "t":
				inText = false
			case el.Name.Local == "p":
				sb.WriteString(" ")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}
}

type runXML struct {
	Props runPropsXML `xml:"rPr"`
	Text  []string    `xml:"t"`
}

type runPropsXML struct {
	Bold   *toggleXML `xml:"b"`
	Italic *toggleXML `xml:"i"`
}

// toggleXML models OOXML on/off properties: present without a value
// means on, w:val of "false" or "0" means off.
type toggleXML struct {
	Val string `xml:"val,attr"`
}

func (t *toggleXML) enabled() bool {
	if t == nil {
		return false
	}
	return t.Val != "false" && t.Val != "0"
}

type stylesXML struct {
	Styles []styleXML `xml:"style"`
}

type styleXML struct {
	ID   string `xml:"styleId,attr"`
	Name struct {
		Val string `xml:"val,attr"`
	} `xml:"name"`
	Para struct {
		Outline *struct {
			Val string `xml:"val,attr"`
		} `xml:"outlineLvl"`
	} `xml:"pPr"`
}

type styleInfo struct {
	name    string
	outline int
}

// parseStyles is best effort: a corrupt style table degrades to no
// style metadata instead of failing the whole document.
func parseStyles(data []byte) map[string]styleInfo {
	var parsed stylesXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	styles := make(map[string]styleInfo, len(parsed.Styles))
	for _, s := range parsed.Styles {
		info := styleInfo{name: s.Name.Val, outline: -1}
		if s.Para.Outline != nil {
			if lvl, err := strconv.Atoi(s.Para.Outline.Val); err == nil {
				info.outline = lvl
			}
		}
		styles[s.ID] = info
	}
	return styles
}

func attrVal(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
