package odf

import (
	"fmt"

	"github.com/stylebook/stylebook/pkg/errors"
)

// Family identifies the category of formatting a style name applies to.
// A style name is only unique within its family; "List" can name both a
// paragraph style and a list style without conflict.
type Family int

const (
	// FamilyParagraph styles apply to whole paragraphs and headings.
	FamilyParagraph Family = iota
	// FamilyCharacter styles apply to text spans within a paragraph.
	FamilyCharacter
	// FamilyTable styles apply to tables.
	FamilyTable
	// FamilyGraphic styles apply to frames and other drawing objects.
	FamilyGraphic
	// FamilyList styles define numbering and bullet formats for lists.
	FamilyList
)

// familyNames maps each family to its canonical name. The names follow the
// OpenDocument style:family attribute values, except that FamilyCharacter is
// spelled "character" here and mapped to ODF's "text" at serialization time.
var familyNames = map[Family]string{
	FamilyParagraph: "paragraph",
	FamilyCharacter: "character",
	FamilyTable:     "table",
	FamilyGraphic:   "graphic",
	FamilyList:      "list",
}

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Valid reports whether f is one of the five defined families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// ParseFamily converts a family name to its Family value.
// It returns an INVALID_FAMILY error for unknown names.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if name == s {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidFamily, "unknown style family: %q", s)
}

// Families returns all defined families in a stable order.
func Families() []Family {
	return []Family{FamilyParagraph, FamilyCharacter, FamilyTable, FamilyGraphic, FamilyList}
}

// Definition is a named style declaration. Properties hold formatting
// attributes as OpenDocument attribute name/value pairs (e.g.
// "fo:margin-left" -> "1cm"); an empty map declares the style by name only,
// which is all the reference document needs for most entries.
type Definition struct {
	Name       string
	Family     Family
	Properties map[string]string
}

// Handle is an opaque reference to a registered style. Handles can only be
// minted by a Registry, which is what makes attaching an unregistered style
// to a content node unrepresentable. The zero Handle means "no style".
type Handle struct {
	name   string
	family Family
	reg    *Registry
}

// Name returns the style name the handle refers to.
func (h Handle) Name() string { return h.name }

// StyleFamily returns the family the handle's style was registered under.
func (h Handle) StyleFamily() Family { return h.family }

// IsZero reports whether the handle refers to no style at all.
func (h Handle) IsZero() bool { return h.reg == nil }

// styleKey identifies a style within a registry. Uniqueness is per
// (name, family) pair, never per name alone.
type styleKey struct {
	name   string
	family Family
}

// Registry holds the named style definitions of a single document, grouped
// by family. Registration order is preserved per family so styles appear in
// the output in the order they were declared.
//
// Registry is not safe for concurrent use; the document build flow is
// strictly sequential.
type Registry struct {
	byFamily map[Family][]*Definition
	index    map[styleKey]*Definition
}

// NewRegistry creates an empty style registry.
func NewRegistry() *Registry {
	return &Registry{
		byFamily: make(map[Family][]*Definition),
		index:    make(map[styleKey]*Definition),
	}
}

// Register adds a style definition and returns a handle for attaching it to
// content nodes. The name must be non-empty and printable, and family must
// be one of the five defined families.
//
// Re-registering an existing (name, family) pair is a no-op that returns the
// handle of the existing definition; the first registration wins. This keeps
// Register idempotent and prevents a late registration from changing styles
// that content nodes already reference.
func (r *Registry) Register(name string, family Family, properties map[string]string) (Handle, error) {
	if err := errors.ValidateStyleName(name); err != nil {
		return Handle{}, err
	}
	if !family.Valid() {
		return Handle{}, errors.New(errors.ErrCodeInvalidFamily, "unknown style family %d for style %q", int(family), name)
	}

	key := styleKey{name: name, family: family}
	if _, ok := r.index[key]; !ok {
		def := &Definition{Name: name, Family: family, Properties: properties}
		if def.Properties == nil {
			def.Properties = map[string]string{}
		}
		r.index[key] = def
		r.byFamily[family] = append(r.byFamily[family], def)
	}
	return Handle{name: name, family: family, reg: r}, nil
}

// Lookup returns the definition registered under (name, family).
func (r *Registry) Lookup(name string, family Family) (Definition, bool) {
	def, ok := r.index[styleKey{name: name, family: family}]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Resolve returns the definition a handle refers to. It fails with
// STYLE_NOT_FOUND if the handle is zero or was minted by another registry.
func (r *Registry) Resolve(h Handle) (Definition, error) {
	if !r.owns(h) {
		return Definition{}, errors.New(errors.ErrCodeStyleNotFound, "handle %q does not belong to this registry", h.name)
	}
	def, ok := r.Lookup(h.name, h.family)
	if !ok {
		return Definition{}, errors.New(errors.ErrCodeStyleNotFound, "style %q (%s) is not registered", h.name, h.family)
	}
	return def, nil
}

// Styles returns the definitions of one family in registration order.
// The returned slice is a copy and safe to retain.
func (r *Registry) Styles(family Family) []Definition {
	defs := r.byFamily[family]
	out := make([]Definition, len(defs))
	for i, d := range defs {
		out[i] = *d
	}
	return out
}

// Len returns the total number of registered styles across all families.
func (r *Registry) Len() int { return len(r.index) }

// owns reports whether h was minted by this registry.
func (r *Registry) owns(h Handle) bool { return h.reg == r }
