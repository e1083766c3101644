package refdoc

// The style catalog mirrors the named styles a stock LibreOffice Writer
// installation ships with. Styles are declared by name; most carry no
// properties because the consuming application supplies the formatting.

// paragraphStyles in declaration order.
var paragraphStyles = []string{
	"Heading 1",
	"Heading 2",
	"Heading 3",
	"Heading 4",
	"Heading 5",
	"Heading 6",
	"Body Text",
	"Body Text Indent",
	"Preformatted Text",
	"Quotation",
	"First Line Indent",
	"List",
	"List 1",
	"List 2",
	"List 3",
	"List Contents",
	"Index",
	"Index Heading",
	"Caption",
	"Table Contents",
	"Footnote",
	"Endnote",
	"Bibliography Entry",
	"Signature",
	"Marginalia",
	"Drop Caps",
	"Frame Contents",
	"Default Style",
}

// characterStyles in declaration order.
var characterStyles = []string{
	"Default Style (Character)",
	"Emphasis",
	"Strong Emphasis",
	"Source Text",
	"Example",
	"Code",
	"User Entry",
	"Teletype",
	"Footnote Characters",
	"Endnote Characters",
	"Rubies",
	"Annotation",
	"Citation",
}

// pageStyles are registered as master pages.
var pageStyles = []string{
	"Default Style (Page)",
	"First Page",
	"Left Page",
	"Right Page",
	"Index Page",
	"Envelope",
	"Landscape",
	"Endnote Page",
	"Footnote Page",
}

// numberingStyles get a level-1 arabic number format.
var numberingStyles = []string{
	"Numbering 1",
	"Numbering 2",
	"Numbering 3",
	"Numbering 4",
	"Numbering 5",
}

// bulletStyles get a level-1 bullet character.
var bulletStyles = []string{
	"Bullet 1",
	"Bullet 2",
	"Bullet 3",
	"Bullet 4",
	"Bullet 5",
}

// defaultListStyle completes the list-style catalog.
const defaultListStyle = "Default List Style"

// tableStyles in declaration order.
var tableStyles = []string{
	"Default Table Style",
	"Academic",
	"Elegant",
	"Financial",
	"Simple Grid",
	"Box List",
	"Blue",
	"Yellow",
	"Gray",
	"Green",
	"Orange",
}

// frameStyle is the single graphic style the frame demonstration uses.
const frameStyle = "Frame Style"
