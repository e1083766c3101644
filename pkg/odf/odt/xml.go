package odt

import (
	"encoding/xml"
	"io"
)

// OpenDocument namespace URIs, declared on each part's root element.
const (
	nsOffice   = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsText     = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsTable    = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsStyle    = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsDraw     = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsFo       = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	nsSVG      = "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
	nsMeta     = "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
	nsManifest = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	nsDC       = "http://purl.org/dc/elements/1.1/"
)

// odfVersion is the OpenDocument format version written to every part.
const odfVersion = "1.2"

// xmlWriter wraps an xml.Encoder with prefixed-name helpers and sticky error
// handling, so part writers can emit elements without checking an error on
// every token. Element and attribute names are written verbatim, including
// their namespace prefix ("text:p"); the prefixes are bound by xmlns
// attributes on the part's root element.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

// newXMLWriter starts a part with the XML declaration. Output is written
// unindented: indentation would inject whitespace into mixed content such as
// a paragraph holding both text and spans.
func newXMLWriter(w io.Writer) *xmlWriter {
	x := &xmlWriter{enc: xml.NewEncoder(w)}
	x.token(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
	return x
}

// attr builds an xml.Attr with a literal (possibly prefixed) name.
func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (x *xmlWriter) token(t xml.Token) {
	if x.err != nil {
		return
	}
	x.err = x.enc.EncodeToken(t)
}

// start opens an element. Attributes with empty values are dropped so
// optional style references simply disappear from the output.
func (x *xmlWriter) start(name string, attrs ...xml.Attr) {
	kept := attrs[:0]
	for _, a := range attrs {
		if a.Value != "" {
			kept = append(kept, a)
		}
	}
	x.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: kept})
}

// end closes the element opened with the same name.
func (x *xmlWriter) end(name string) {
	x.token(xml.EndElement{Name: xml.Name{Local: name}})
}

// empty writes a self-contained element with no content.
func (x *xmlWriter) empty(name string, attrs ...xml.Attr) {
	x.start(name, attrs...)
	x.end(name)
}

// text writes escaped character data.
func (x *xmlWriter) text(s string) {
	x.token(xml.CharData(s))
}

// flush completes the encoding and returns the first error encountered.
func (x *xmlWriter) flush() error {
	if x.err != nil {
		return x.err
	}
	return x.enc.Flush()
}
