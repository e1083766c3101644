package odt

import (
	"io"

	"github.com/stylebook/stylebook/pkg/odf"
)

// writeStyles emits styles.xml: the common paragraph, character and graphic
// styles, the generated page layouts, and the master pages referencing them.
func writeStyles(w io.Writer, doc *odf.Document) error {
	x := newXMLWriter(w)

	x.start("office:document-styles",
		attr("xmlns:office", nsOffice),
		attr("xmlns:style", nsStyle),
		attr("xmlns:text", nsText),
		attr("xmlns:fo", nsFo),
		attr("office:version", odfVersion),
	)

	x.start("office:styles")
	for _, family := range []odf.Family{odf.FamilyParagraph, odf.FamilyCharacter, odf.FamilyGraphic} {
		for _, def := range doc.Styles(family) {
			writeStyle(x, def)
		}
	}
	x.end("office:styles")

	x.start("office:automatic-styles")
	for _, mp := range doc.MasterPages() {
		writePageLayout(x, mp)
	}
	x.end("office:automatic-styles")

	x.start("office:master-styles")
	for _, mp := range doc.MasterPages() {
		x.empty("style:master-page",
			attr("style:name", mp.Name),
			attr("style:page-layout-name", pageLayoutName(mp.Name)),
		)
	}
	x.end("office:master-styles")

	x.end("office:document-styles")
	return x.flush()
}

// pageLayoutName derives the generated layout name for a master page.
func pageLayoutName(master string) string {
	return master + "_Layout"
}

func writePageLayout(x *xmlWriter, mp odf.MasterPage) {
	x.start("style:page-layout", attr("style:name", pageLayoutName(mp.Name)))
	x.empty("style:page-layout-properties",
		attr("fo:margin", mp.Layout.Margin),
		attr("fo:page-width", mp.Layout.Width),
		attr("fo:page-height", mp.Layout.Height),
	)
	x.end("style:page-layout")
}
