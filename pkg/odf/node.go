package odf

// Node is a unit of document structure. The concrete types fall into two
// groups: block nodes (Heading, Paragraph, List, Table, Frame) that can sit
// in the document body, and inline nodes (Text, Span, Footnote) that live
// inside a paragraph. Placement rules are checked when a subtree is appended
// to a document, see Document.Append.
type Node interface {
	node()
}

// Text is an unstyled run of character data inside a paragraph.
type Text struct {
	Text string
}

// Span is a run of text carrying a character style.
type Span struct {
	Style Handle
	Text  string
}

// Heading is a heading paragraph with an outline level between 1 and 10.
type Heading struct {
	Level int
	Style Handle
	Text  string
}

// Paragraph is a block of inline content with an optional paragraph style.
type Paragraph struct {
	Style   Handle
	Content []Node
}

// Append adds inline nodes to the paragraph and returns it for chaining.
func (p *Paragraph) Append(nodes ...Node) *Paragraph {
	p.Content = append(p.Content, nodes...)
	return p
}

// List is a container of list items with an optional list style.
type List struct {
	Style Handle
	Items []*ListItem
}

// AddItem appends a new empty item to the list and returns it.
func (l *List) AddItem() *ListItem {
	item := &ListItem{}
	l.Items = append(l.Items, item)
	return item
}

// ListItem holds the paragraphs (or nested lists) of a single list entry.
// Items carry no style of their own; formatting comes from the paragraph
// styles inside and the list style outside.
type ListItem struct {
	Content []Node
}

// AddParagraph appends a paragraph with the given style and text to the item.
func (li *ListItem) AddParagraph(style Handle, text string) *Paragraph {
	p := &Paragraph{Style: style, Content: []Node{Text{Text: text}}}
	li.Content = append(li.Content, p)
	return p
}

// Table is a grid of rows with a declared column count and an optional
// table style. Rows may be shorter than Columns but never wider.
type Table struct {
	Style   Handle
	Columns int
	Rows    []*TableRow
}

// AddRow appends a new empty row to the table and returns it.
// Cells can only be created through the returned row, so a cell without an
// enclosing row cannot be expressed.
func (t *Table) AddRow() *TableRow {
	row := &TableRow{}
	t.Rows = append(t.Rows, row)
	return row
}

// TableRow holds the cells of one table row.
type TableRow struct {
	Cells []*TableCell
}

// AddCell appends a new empty cell to the row and returns it.
func (r *TableRow) AddCell() *TableCell {
	cell := &TableCell{}
	r.Cells = append(r.Cells, cell)
	return cell
}

// TableCell holds the block content of one table cell.
type TableCell struct {
	Content []Node
}

// AddParagraph appends a paragraph with the given style and text to the cell.
func (c *TableCell) AddParagraph(style Handle, text string) *Paragraph {
	p := &Paragraph{Style: style, Content: []Node{Text{Text: text}}}
	c.Content = append(c.Content, p)
	return p
}

// Frame is an anchored text frame with explicit dimensions given as
// OpenDocument lengths (e.g. "7cm") and an optional graphic style.
// Its content is rendered inside a text box.
type Frame struct {
	Style   Handle
	Width   string
	Height  string
	Content []Node
}

// AddParagraph appends a paragraph with the given style and text to the frame.
func (f *Frame) AddParagraph(style Handle, text string) *Paragraph {
	p := &Paragraph{Style: style, Content: []Node{Text{Text: text}}}
	f.Content = append(f.Content, p)
	return p
}

// NoteClass distinguishes footnotes from endnotes.
type NoteClass string

const (
	// NoteFootnote renders at the bottom of the page.
	NoteFootnote NoteClass = "footnote"
	// NoteEndnote renders at the end of the document.
	NoteEndnote NoteClass = "endnote"
)

// Valid reports whether the class is footnote or endnote.
func (c NoteClass) Valid() bool { return c == NoteFootnote || c == NoteEndnote }

// Footnote is an inline note anchor with a citation mark and a body of
// paragraphs. It sits inside a paragraph at the anchor position.
type Footnote struct {
	Class    NoteClass
	Citation string
	Body     []Node
}

func (Text) node()       {}
func (Span) node()       {}
func (Heading) node()    {}
func (*Paragraph) node() {}
func (*List) node()      {}
func (*Table) node()     {}
func (*Frame) node()     {}
func (Footnote) node()   {}
