// Package refdoc builds the styles reference document: a sample text
// document exercising the full catalog of named paragraph, character, list,
// page, frame, and table styles, with a short demonstration body for each
// group. The build is strictly linear: all styles are registered first, then
// the content tree is appended, then the document is handed to the ODT
// serializer.
package refdoc

import (
	"github.com/stylebook/stylebook/pkg/odf"
	"github.com/stylebook/stylebook/pkg/odf/odt"
	"github.com/stylebook/stylebook/pkg/profile"
)

// DefaultName is the output file created when no destination is given.
const DefaultName = "LibreOfficeStylesRefDoc" + odt.Extension

// Build constructs the reference document with metadata and page geometry
// taken from the profile.
func Build(p profile.Profile) (*odf.Document, error) {
	b := &builder{doc: odf.New()}

	b.doc.SetMeta(odf.Meta{
		Title:    p.Document.Title,
		Subject:  p.Document.Subject,
		Creator:  p.Document.Creator,
		Keywords: p.Document.Keywords,
	})

	paragraph := b.styleSet(paragraphStyles, odf.FamilyParagraph)
	character := b.styleSet(characterStyles, odf.FamilyCharacter)
	for _, name := range numberingStyles {
		b.style(name, odf.FamilyList, map[string]string{"num-format": "1"})
	}
	bullets := make(map[string]odf.Handle, len(bulletStyles))
	for _, name := range bulletStyles {
		bullets[name] = b.style(name, odf.FamilyList, map[string]string{"bullet-char": "•"})
	}
	b.style(defaultListStyle, odf.FamilyList, nil)
	for _, name := range tableStyles {
		b.style(name, odf.FamilyTable, nil)
	}
	frame := b.style(frameStyle, odf.FamilyGraphic, nil)

	page := odf.PageProperties{
		Margin: p.Page.Margin,
		Width:  p.Page.Width,
		Height: p.Page.Height,
	}
	for _, name := range pageStyles {
		b.masterPage(name, page)
	}

	// Heading demonstrations, one per outline level.
	b.heading(paragraph["Heading 1"], 1, "Heading 1: This paragraph demonstrates Heading 1.")
	b.heading(paragraph["Heading 2"], 2, "Heading 2: This paragraph demonstrates Heading 2.")
	b.heading(paragraph["Heading 3"], 3, "Heading 3: This paragraph demonstrates Heading 3.")
	b.heading(paragraph["Heading 4"], 4, "Heading 4: This paragraph demonstrates Heading 4.")
	b.heading(paragraph["Heading 5"], 5, "Heading 5: This paragraph demonstrates Heading 5.")
	b.heading(paragraph["Heading 6"], 6, "Heading 6: This paragraph demonstrates Heading 6.")

	// Body text styles.
	b.para(paragraph["Body Text"], "Body Text: This paragraph uses the Body Text style.")
	b.para(paragraph["Body Text Indent"], "Body Text Indent: This paragraph uses the Body Text Indent style (indented).")
	b.para(paragraph["Preformatted Text"], "Preformatted Text: Typically, spacing is preserved in this style.")
	b.para(paragraph["Quotation"], "Quotation: This paragraph demonstrates the Quotation style.")
	b.para(paragraph["First Line Indent"], "First Line Indent: The first line of this paragraph should be indented.")
	b.para(paragraph["Default Style"], "Default Style: This paragraph uses the general default style.")

	// Character styles shown as spans inside one paragraph.
	b.paraContent(odf.Handle{},
		odf.Text{Text: "Character Styles Demonstration: "},
		odf.Span{Style: character["Emphasis"], Text: "Emphasis style, "},
		odf.Span{Style: character["Strong Emphasis"], Text: "Strong Emphasis style, "},
		odf.Span{Style: character["Code"], Text: "Code style, "},
		odf.Span{Style: character["Citation"], Text: "Citation style."},
	)

	// List demonstration.
	b.para(paragraph["List Contents"], "Below is a simple list using 'List Contents' for paragraphs:")
	list := b.list(bullets["Bullet 1"])
	if list != nil {
		list.AddItem().AddParagraph(paragraph["List 1"], "List item 1 (List 1 style).")
		list.AddItem().AddParagraph(paragraph["List 2"], "List item 2 (List 2 style).")
		list.AddItem().AddParagraph(paragraph["List 3"], "List item 3 (List 3 style).")
	}

	// Index styles.
	b.para(paragraph["Index Heading"], "Index Heading: This could appear at the start of an index section.")
	b.para(paragraph["Index"], "Index: This paragraph demonstrates the Index style.")

	// Caption style.
	b.para(paragraph["Caption"], "Caption: Typically used for describing an image/table.")

	// Table demonstration using the Table Contents paragraph style.
	table := b.table(odf.Handle{}, 2)
	if table != nil {
		row := table.AddRow()
		row.AddCell().AddParagraph(paragraph["Table Contents"], "Table Contents: Cell 1")
		row.AddCell().AddParagraph(paragraph["Table Contents"], "Table Contents: Cell 2")
	}

	// Footnote and endnote demonstrations, including one anchored footnote.
	b.para(paragraph["Footnote"], "Footnote style paragraph. This paragraph is typically used for footnotes.")
	b.footnotePara(odf.Handle{}, "Some main text that references a footnote", odf.Footnote{
		Class:    odf.NoteFootnote,
		Citation: "1",
		Body:     []odf.Node{(&odf.Paragraph{}).Append(odf.Text{Text: "This is a sample footnote text."})},
	})
	b.para(paragraph["Endnote"], "Endnote style paragraph. This paragraph is typically used for endnotes.")

	// Remaining paragraph styles.
	b.para(paragraph["Bibliography Entry"], "Bibliography Entry: This paragraph could be used for references or citations.")
	b.para(paragraph["Signature"], "Signature: This might be used for signing a document.")
	b.para(paragraph["Marginalia"], "Marginalia: Typically, text that might appear in the margin.")
	b.para(paragraph["Drop Caps"], "Drop Caps: This style could be used at the start of a chapter.")
	b.para(paragraph["Frame Contents"], "Frame Contents: Used inside frames.")

	// Frame demonstration.
	fr := b.frame(frame, "7cm", "1cm")
	if fr != nil {
		fr.AddParagraph(paragraph["Frame Contents"], "Inside a frame (Frame Contents).")
	}

	// Page styles are declared above; narrate the manual break.
	b.para(odf.Handle{}, "=== Manual page break to 'First Page' style below ===")
	b.para(odf.Handle{}, "Now we are on a new page (ideally with 'First Page' style).")

	// Declared-only style groups.
	b.para(odf.Handle{}, "Numbering & Bullet list styles declared (Numbering 1..5, Bullet 1..5).")
	b.para(odf.Handle{}, "Additional table styles (Academic, Elegant, Financial, etc.) defined.")

	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

// Generate builds the reference document and saves it to path. An empty
// path falls back to DefaultName. It returns the path actually written.
func Generate(p profile.Profile, path string) (string, error) {
	if path == "" {
		path = DefaultName
	}
	doc, err := Build(p)
	if err != nil {
		return "", err
	}
	return odt.Save(doc, path)
}

// builder accumulates registrations and appends with a sticky error, so the
// catalog above reads as the declarative sequence it is. After the first
// failure every call is a no-op and Build reports that error.
type builder struct {
	doc *odf.Document
	err error
}

func (b *builder) style(name string, family odf.Family, props map[string]string) odf.Handle {
	if b.err != nil {
		return odf.Handle{}
	}
	h, err := b.doc.Register(name, family, props)
	if err != nil {
		b.err = err
	}
	return h
}

func (b *builder) styleSet(names []string, family odf.Family) map[string]odf.Handle {
	handles := make(map[string]odf.Handle, len(names))
	for _, name := range names {
		handles[name] = b.style(name, family, nil)
	}
	return handles
}

func (b *builder) masterPage(name string, props odf.PageProperties) {
	if b.err != nil {
		return
	}
	b.err = b.doc.RegisterMasterPage(name, props)
}

func (b *builder) heading(style odf.Handle, level int, text string) {
	if b.err != nil {
		return
	}
	_, b.err = b.doc.AddHeading(style, level, text)
}

func (b *builder) para(style odf.Handle, text string) {
	if b.err != nil {
		return
	}
	_, b.err = b.doc.AddTextParagraph(style, text)
}

func (b *builder) paraContent(style odf.Handle, content ...odf.Node) {
	if b.err != nil {
		return
	}
	_, b.err = b.doc.AddParagraph(style, content...)
}

func (b *builder) footnotePara(style odf.Handle, text string, note odf.Footnote) {
	if b.err != nil {
		return
	}
	_, b.err = b.doc.AddFootnoteParagraph(style, text, note)
}

func (b *builder) list(style odf.Handle) *odf.List {
	if b.err != nil {
		return nil
	}
	l, err := b.doc.AddList(style)
	if err != nil {
		b.err = err
		return nil
	}
	return l
}

func (b *builder) table(style odf.Handle, columns int) *odf.Table {
	if b.err != nil {
		return nil
	}
	t, err := b.doc.AddTable(style, columns)
	if err != nil {
		b.err = err
		return nil
	}
	return t
}

func (b *builder) frame(style odf.Handle, width, height string) *odf.Frame {
	if b.err != nil {
		return nil
	}
	f, err := b.doc.AddFrame(style, width, height)
	if err != nil {
		b.err = err
		return nil
	}
	return f
}
