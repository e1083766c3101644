package odt

import (
	"encoding/xml"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/stylebook/stylebook/pkg/errors"
	"github.com/stylebook/stylebook/pkg/odf"
)

// writeContent emits content.xml: the automatic styles that live alongside
// the body (table and list styles, as word processors place them) followed
// by the body itself.
func writeContent(w io.Writer, doc *odf.Document) error {
	x := newXMLWriter(w)

	x.start("office:document-content",
		attr("xmlns:office", nsOffice),
		attr("xmlns:text", nsText),
		attr("xmlns:table", nsTable),
		attr("xmlns:style", nsStyle),
		attr("xmlns:draw", nsDraw),
		attr("xmlns:fo", nsFo),
		attr("xmlns:svg", nsSVG),
		attr("office:version", odfVersion),
	)

	x.start("office:automatic-styles")
	for _, def := range doc.Styles(odf.FamilyTable) {
		writeStyle(x, def)
	}
	for _, def := range doc.Styles(odf.FamilyList) {
		writeListStyle(x, def)
	}
	x.end("office:automatic-styles")

	x.start("office:body")
	x.start("office:text")
	for _, n := range doc.Nodes() {
		if err := writeNode(x, n); err != nil {
			return err
		}
	}
	x.end("office:text")
	x.end("office:body")

	x.end("office:document-content")
	return x.flush()
}

// writeNode dispatches on the block-level node variants. The document is
// validated before serialization, so an unknown variant here is an internal
// inconsistency, not a user error.
func writeNode(x *xmlWriter, n odf.Node) error {
	switch b := n.(type) {
	case odf.Heading:
		writeHeading(x, b)
	case *odf.Paragraph:
		writeParagraph(x, b)
	case *odf.List:
		writeList(x, b)
	case *odf.Table:
		writeTable(x, b)
	case *odf.Frame:
		writeFrame(x, b)
	default:
		return errors.New(errors.ErrCodeInternal, "no serialization for node type %T", n)
	}
	return nil
}

func writeHeading(x *xmlWriter, h odf.Heading) {
	x.start("text:h",
		attr("text:style-name", h.Style.Name()),
		attr("text:outline-level", strconv.Itoa(h.Level)),
	)
	x.text(h.Text)
	x.end("text:h")
}

func writeParagraph(x *xmlWriter, p *odf.Paragraph) {
	x.start("text:p", attr("text:style-name", p.Style.Name()))
	writeInline(x, p.Content)
	x.end("text:p")
}

func writeInline(x *xmlWriter, content []odf.Node) {
	for _, n := range content {
		switch in := n.(type) {
		case odf.Text:
			x.text(in.Text)
		case odf.Span:
			x.start("text:span", attr("text:style-name", in.Style.Name()))
			x.text(in.Text)
			x.end("text:span")
		case odf.Footnote:
			writeFootnote(x, in)
		}
	}
}

func writeFootnote(x *xmlWriter, f odf.Footnote) {
	x.start("text:note", attr("text:note-class", string(f.Class)))
	x.start("text:note-citation")
	x.text(f.Citation)
	x.end("text:note-citation")
	x.start("text:note-body")
	for _, b := range f.Body {
		if p, ok := b.(*odf.Paragraph); ok {
			writeParagraph(x, p)
		}
	}
	x.end("text:note-body")
	x.end("text:note")
}

func writeList(x *xmlWriter, l *odf.List) {
	x.start("text:list", attr("text:style-name", l.Style.Name()))
	for _, item := range l.Items {
		x.start("text:list-item")
		for _, c := range item.Content {
			switch ic := c.(type) {
			case *odf.Paragraph:
				writeParagraph(x, ic)
			case *odf.List:
				writeList(x, ic)
			}
		}
		x.end("text:list-item")
	}
	x.end("text:list")
}

func writeTable(x *xmlWriter, t *odf.Table) {
	x.start("table:table", attr("table:style-name", t.Style.Name()))
	for i := 0; i < t.Columns; i++ {
		x.empty("table:table-column")
	}
	for _, row := range t.Rows {
		x.start("table:table-row")
		for _, cell := range row.Cells {
			x.start("table:table-cell")
			for _, c := range cell.Content {
				switch cc := c.(type) {
				case *odf.Paragraph:
					writeParagraph(x, cc)
				case *odf.List:
					writeList(x, cc)
				}
			}
			x.end("table:table-cell")
		}
		x.end("table:table-row")
	}
	x.end("table:table")
}

// writeFrame anchors the frame in a carrier paragraph, the shape word
// processors produce for frames in body text.
func writeFrame(x *xmlWriter, f *odf.Frame) {
	x.start("text:p")
	x.start("draw:frame",
		attr("draw:style-name", f.Style.Name()),
		attr("svg:width", f.Width),
		attr("svg:height", f.Height),
		attr("text:anchor-type", "paragraph"),
	)
	x.start("draw:text-box")
	for _, c := range f.Content {
		if p, ok := c.(*odf.Paragraph); ok {
			writeParagraph(x, p)
		}
	}
	x.end("draw:text-box")
	x.end("draw:frame")
	x.end("text:p")
}

// writeStyle emits a style:style element with its family-specific
// properties child. Property attributes are sorted for deterministic output.
func writeStyle(x *xmlWriter, def odf.Definition) {
	x.start("style:style",
		attr("style:name", def.Name),
		attr("style:family", odfFamily(def.Family)),
	)
	if len(def.Properties) > 0 {
		attrs := make([]xml.Attr, 0, len(def.Properties))
		for _, k := range slices.Sorted(maps.Keys(def.Properties)) {
			attrs = append(attrs, attr(k, def.Properties[k]))
		}
		x.empty(propertiesElement(def.Family), attrs...)
	}
	x.end("style:style")
}

// odfFamily maps the registry family to the style:family attribute value.
// Character styles are family "text" on the wire.
func odfFamily(f odf.Family) string {
	if f == odf.FamilyCharacter {
		return "text"
	}
	return f.String()
}

// propertiesElement returns the properties child element for a family.
func propertiesElement(f odf.Family) string {
	switch f {
	case odf.FamilyCharacter:
		return "style:text-properties"
	case odf.FamilyTable:
		return "style:table-properties"
	case odf.FamilyGraphic:
		return "style:graphic-properties"
	default:
		return "style:paragraph-properties"
	}
}

// writeListStyle emits a text:list-style with a single level-1 number or
// bullet definition, depending on the registered properties.
func writeListStyle(x *xmlWriter, def odf.Definition) {
	x.start("text:list-style", attr("style:name", def.Name))
	if format, ok := def.Properties["num-format"]; ok {
		x.empty("text:list-level-style-number",
			attr("text:level", "1"),
			attr("style:num-format", format),
			attr("style:num-suffix", "."),
		)
	} else {
		bullet := def.Properties["bullet-char"]
		if bullet == "" {
			bullet = "•"
		}
		x.empty("text:list-level-style-bullet",
			attr("text:level", "1"),
			attr("text:bullet-char", bullet),
		)
	}
	x.end("text:list-style")
}
