// Package odf models an OpenDocument text document as a style registry plus
// a tree of content nodes. A document is built in a strictly linear flow:
// register styles, append content that references them through handles, then
// hand the finished document to a serializer such as pkg/odf/odt.
//
// Style references are checked: a Handle can only be obtained from the
// document's own registry, and every append operation validates the subtree
// it receives. Nothing is mutated after serialization; there is no update or
// delete operation on registered styles or appended nodes.
package odf

import (
	"time"

	"github.com/google/uuid"

	"github.com/stylebook/stylebook/pkg/errors"
)

// maxHeadingLevel is the deepest outline level OpenDocument allows.
const maxHeadingLevel = 10

// Meta holds the document metadata written to meta.xml.
type Meta struct {
	Title     string
	Subject   string
	Creator   string
	Generator string
	Keywords  []string
	Created   time.Time
}

// PageProperties describe the page layout of a master page. All dimensions
// are OpenDocument lengths (e.g. "2cm", "21cm"). Empty fields are omitted
// from the output and left to the consuming application's defaults.
type PageProperties struct {
	Margin string
	Width  string
	Height string
}

// MasterPage is a named page style: a master page referencing a generated
// page layout, mirroring how word processors model page styles.
type MasterPage struct {
	Name   string
	Layout PageProperties
}

// Document owns the style registry, master pages, metadata and the ordered
// root sequence of content nodes. Create one with New, populate it with
// Register and the Add operations, then serialize it exactly once.
type Document struct {
	id      string
	meta    Meta
	styles  *Registry
	masters []MasterPage
	body    []Node
}

// New creates an empty document with a fresh identity and creation time.
func New() *Document {
	return &Document{
		id:     uuid.NewString(),
		styles: NewRegistry(),
		meta: Meta{
			Generator: "stylebook",
			Created:   time.Now().UTC(),
		},
	}
}

// ID returns the document identity recorded in meta.xml.
func (d *Document) ID() string { return d.id }

// Meta returns the document metadata.
func (d *Document) Meta() Meta { return d.meta }

// SetMeta replaces the document metadata, keeping generator and creation
// time when the caller leaves them empty.
func (d *Document) SetMeta(m Meta) {
	if m.Generator == "" {
		m.Generator = d.meta.Generator
	}
	if m.Created.IsZero() {
		m.Created = d.meta.Created
	}
	d.meta = m
}

// Registry returns the document's style registry.
func (d *Document) Registry() *Registry { return d.styles }

// Register declares a style and returns its handle. See Registry.Register
// for the duplicate-handling policy.
func (d *Document) Register(name string, family Family, properties map[string]string) (Handle, error) {
	return d.styles.Register(name, family, properties)
}

// Styles returns the registered definitions of one family in declaration order.
func (d *Document) Styles(family Family) []Definition {
	return d.styles.Styles(family)
}

// RegisterMasterPage declares a named page style. Registering the same name
// twice is a no-op, matching the registry's dedupe policy for styles.
func (d *Document) RegisterMasterPage(name string, layout PageProperties) error {
	if err := errors.ValidateStyleName(name); err != nil {
		return err
	}
	for _, dim := range []string{layout.Margin, layout.Width, layout.Height} {
		if dim == "" {
			continue
		}
		if err := errors.ValidateLength(dim); err != nil {
			return err
		}
	}
	for _, mp := range d.masters {
		if mp.Name == name {
			return nil
		}
	}
	d.masters = append(d.masters, MasterPage{Name: name, Layout: layout})
	return nil
}

// MasterPages returns the registered page styles in declaration order.
func (d *Document) MasterPages() []MasterPage {
	out := make([]MasterPage, len(d.masters))
	copy(out, d.masters)
	return out
}

// Nodes returns the root content sequence in append order.
func (d *Document) Nodes() []Node {
	out := make([]Node, len(d.body))
	copy(out, d.body)
	return out
}

// Append validates the given block nodes and adds them to the end of the
// document body. Validation walks each subtree: placement rules (inline
// nodes only inside paragraphs, cells only inside rows), structural limits
// (heading levels, table widths, frame dimensions) and style references
// (every non-zero handle must come from this document's registry and match
// the family its position requires). A violation is a programmer error and
// is reported immediately; nothing from the failed call is appended.
func (d *Document) Append(nodes ...Node) error {
	for _, n := range nodes {
		if err := d.validateBlock(n); err != nil {
			return err
		}
	}
	d.body = append(d.body, nodes...)
	return nil
}

// AddHeading appends a heading and returns it.
func (d *Document) AddHeading(style Handle, level int, text string) (*Heading, error) {
	h := Heading{Level: level, Style: style, Text: text}
	if err := d.Append(h); err != nil {
		return nil, err
	}
	return &h, nil
}

// AddParagraph appends a paragraph with the given inline content and returns it.
func (d *Document) AddParagraph(style Handle, content ...Node) (*Paragraph, error) {
	p := &Paragraph{Style: style, Content: content}
	if err := d.Append(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddTextParagraph appends a paragraph holding a single text run.
func (d *Document) AddTextParagraph(style Handle, text string) (*Paragraph, error) {
	return d.AddParagraph(style, Text{Text: text})
}

// AddFootnoteParagraph appends a paragraph holding a text run followed by an
// anchored note.
func (d *Document) AddFootnoteParagraph(style Handle, text string, note Footnote) (*Paragraph, error) {
	return d.AddParagraph(style, Text{Text: text}, note)
}

// AddList appends an empty list and returns it for item population.
// Items added afterwards are validated when the document is serialized.
func (d *Document) AddList(style Handle) (*List, error) {
	l := &List{Style: style}
	if err := d.Append(l); err != nil {
		return nil, err
	}
	return l, nil
}

// AddTable appends an empty table with the given column count and returns it.
func (d *Document) AddTable(style Handle, columns int) (*Table, error) {
	t := &Table{Style: style, Columns: columns}
	if err := d.Append(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddFrame appends a text frame with the given dimensions and returns it.
func (d *Document) AddFrame(style Handle, width, height string) (*Frame, error) {
	f := &Frame{Style: style, Width: width, Height: height}
	if err := d.Append(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate re-checks the whole document tree. Serializers call this before
// writing so that content grown inside containers after their append (list
// items, table rows, frame paragraphs) is held to the same rules.
func (d *Document) Validate() error {
	for _, n := range d.body {
		if err := d.validateBlock(n); err != nil {
			return err
		}
	}
	return nil
}

// validateBlock checks one block-level node and its subtree.
func (d *Document) validateBlock(n Node) error {
	switch b := n.(type) {
	case Heading:
		if b.Level < 1 || b.Level > maxHeadingLevel {
			return errors.New(errors.ErrCodeInvalidStructure, "heading level %d out of range 1..%d", b.Level, maxHeadingLevel)
		}
		return d.checkStyle(b.Style, FamilyParagraph, "heading")
	case *Paragraph:
		if err := d.checkStyle(b.Style, FamilyParagraph, "paragraph"); err != nil {
			return err
		}
		for _, in := range b.Content {
			if err := d.validateInline(in); err != nil {
				return err
			}
		}
		return nil
	case *List:
		if err := d.checkStyle(b.Style, FamilyList, "list"); err != nil {
			return err
		}
		for _, item := range b.Items {
			if item == nil {
				return errors.New(errors.ErrCodeInvalidStructure, "list contains a nil item")
			}
			for _, c := range item.Content {
				if err := d.validateItemContent(c); err != nil {
					return err
				}
			}
		}
		return nil
	case *Table:
		return d.validateTable(b)
	case *Frame:
		return d.validateFrame(b)
	default:
		return errors.New(errors.ErrCodeInvalidStructure, "%T cannot appear at block level", n)
	}
}

// validateInline checks a node in paragraph content position.
func (d *Document) validateInline(n Node) error {
	switch in := n.(type) {
	case Text:
		return nil
	case Span:
		return d.checkStyle(in.Style, FamilyCharacter, "span")
	case Footnote:
		if !in.Class.Valid() {
			return errors.New(errors.ErrCodeInvalidStructure, "unknown note class %q", string(in.Class))
		}
		if in.Citation == "" {
			return errors.New(errors.ErrCodeInvalidStructure, "%s needs a citation mark", in.Class)
		}
		for _, b := range in.Body {
			p, ok := b.(*Paragraph)
			if !ok {
				return errors.New(errors.ErrCodeInvalidStructure, "%s body must contain paragraphs, got %T", in.Class, b)
			}
			if err := d.validateBlock(p); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidStructure, "%T cannot appear inside a paragraph", n)
	}
}

// validateItemContent checks a node inside a list item or table cell.
func (d *Document) validateItemContent(n Node) error {
	switch n.(type) {
	case *Paragraph, *List:
		return d.validateBlock(n)
	default:
		return errors.New(errors.ErrCodeInvalidStructure, "%T cannot appear inside a list item or table cell", n)
	}
}

func (d *Document) validateTable(t *Table) error {
	if t.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidStructure, "table needs at least one column, got %d", t.Columns)
	}
	if err := d.checkStyle(t.Style, FamilyTable, "table"); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if row == nil {
			return errors.New(errors.ErrCodeInvalidStructure, "table row %d is nil", i)
		}
		if len(row.Cells) > t.Columns {
			return errors.New(errors.ErrCodeInvalidStructure, "row %d has %d cells but the table declares %d columns", i, len(row.Cells), t.Columns)
		}
		for _, cell := range row.Cells {
			if cell == nil {
				return errors.New(errors.ErrCodeInvalidStructure, "table row %d contains a nil cell", i)
			}
			for _, c := range cell.Content {
				if err := d.validateItemContent(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Document) validateFrame(f *Frame) error {
	if err := errors.ValidateLength(f.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStructure, err, "frame width")
	}
	if err := errors.ValidateLength(f.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStructure, err, "frame height")
	}
	if err := d.checkStyle(f.Style, FamilyGraphic, "frame"); err != nil {
		return err
	}
	for _, c := range f.Content {
		p, ok := c.(*Paragraph)
		if !ok {
			return errors.New(errors.ErrCodeInvalidStructure, "frame content must be paragraphs, got %T", c)
		}
		if err := d.validateBlock(p); err != nil {
			return err
		}
	}
	return nil
}

// checkStyle validates a style attachment: zero handles are fine, non-zero
// handles must come from this document's registry and carry the family the
// position requires.
func (d *Document) checkStyle(h Handle, want Family, where string) error {
	if h.IsZero() {
		return nil
	}
	if !d.styles.owns(h) {
		return errors.New(errors.ErrCodeStyleNotFound, "%s style %q was not registered with this document", where, h.Name())
	}
	if h.StyleFamily() != want {
		return errors.New(errors.ErrCodeInvalidStructure, "%s style %q has family %s, want %s", where, h.Name(), h.StyleFamily(), want)
	}
	return nil
}
