package odt

import (
	"io"
	"time"

	"github.com/stylebook/stylebook/pkg/odf"
)

// writeMeta emits meta.xml with the document metadata and identity.
func writeMeta(w io.Writer, doc *odf.Document) error {
	x := newXMLWriter(w)

	x.start("office:document-meta",
		attr("xmlns:office", nsOffice),
		attr("xmlns:meta", nsMeta),
		attr("xmlns:dc", nsDC),
		attr("office:version", odfVersion),
	)
	x.start("office:meta")

	m := doc.Meta()
	metaText(x, "meta:generator", m.Generator)
	metaText(x, "dc:title", m.Title)
	metaText(x, "dc:subject", m.Subject)
	metaText(x, "meta:initial-creator", m.Creator)
	metaText(x, "dc:creator", m.Creator)
	if !m.Created.IsZero() {
		metaText(x, "meta:creation-date", m.Created.Format(time.RFC3339))
	}
	for _, kw := range m.Keywords {
		metaText(x, "meta:keyword", kw)
	}

	x.start("meta:user-defined", attr("meta:name", "DocumentID"))
	x.text(doc.ID())
	x.end("meta:user-defined")

	x.end("office:meta")
	x.end("office:document-meta")
	return x.flush()
}

// metaText writes a simple text element, skipping empty values.
func metaText(x *xmlWriter, name, value string) {
	if value == "" {
		return
	}
	x.start(name)
	x.text(value)
	x.end(name)
}
