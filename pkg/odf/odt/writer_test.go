package odt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stylebook/stylebook/pkg/errors"
	"github.com/stylebook/stylebook/pkg/odf"
)

// bodyElem is the decoded shape of one top-level body child: its element
// name, its style reference, and all character data beneath it in order.
type bodyElem struct {
	Tag   string
	Style string
	Text  string
}

// readPackage writes doc to memory and returns the package entries by name,
// plus the ordered entry list for layout assertions.
func readPackage(t *testing.T, doc *odf.Document) (map[string][]byte, *zip.Reader) {
	t.Helper()

	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	parts := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = data
	}
	return parts, zr
}

// parseBody decodes content.xml and returns the top-level children of
// office:text in document order. Matching is by local element name, so the
// namespace prefixes in the output are irrelevant here.
func parseBody(t *testing.T, content []byte) []bodyElem {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(content))
	var elems []bodyElem
	inText := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decode content.xml: %v", err)
		}

		switch tk := tok.(type) {
		case xml.StartElement:
			if tk.Name.Local == "text" && inText == 0 {
				inText = 1
				continue
			}
			if inText == 1 {
				elems = append(elems, bodyElem{
					Tag:   tk.Name.Local,
					Style: findAttr(tk, "style-name"),
					Text:  collectText(t, dec),
				})
			}
		case xml.EndElement:
			if tk.Name.Local == "text" && inText == 1 {
				inText = 0
			}
		}
	}
	return elems
}

// collectText consumes the current element and concatenates all character
// data beneath it.
func collectText(t *testing.T, dec *xml.Decoder) string {
	t.Helper()

	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("decode element: %v", err)
		}
		switch tk := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(tk)
		}
	}
	return sb.String()
}

func findAttr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// styleEntry identifies one style declaration found in the output.
type styleEntry struct {
	Name   string
	Family string
}

// parseStyleEntries scans a part for style:style and text:list-style
// declarations.
func parseStyleEntries(t *testing.T, part []byte) []styleEntry {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(part))
	var entries []styleEntry
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decode styles: %v", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "style":
			entries = append(entries, styleEntry{Name: findAttr(se, "name"), Family: findAttr(se, "family")})
		case "list-style":
			entries = append(entries, styleEntry{Name: findAttr(se, "name"), Family: "list"})
		}
	}
	return entries
}

func buildSampleDocument(t *testing.T) *odf.Document {
	t.Helper()

	doc := odf.New()
	doc.SetMeta(odf.Meta{Title: "Sample", Creator: "tester"})

	h1, _ := doc.Register("Heading 1", odf.FamilyParagraph, nil)
	body, _ := doc.Register("Body Text", odf.FamilyParagraph, nil)
	emphasis, _ := doc.Register("Emphasis", odf.FamilyCharacter, nil)
	bullet, _ := doc.Register("Bullet 1", odf.FamilyList, map[string]string{"bullet-char": "•"})
	academic, _ := doc.Register("Academic", odf.FamilyTable, nil)
	frameStyle, _ := doc.Register("Frame Style", odf.FamilyGraphic, nil)

	if _, err := doc.AddHeading(h1, 1, "Sample Heading"); err != nil {
		t.Fatalf("AddHeading() error = %v", err)
	}
	if _, err := doc.AddTextParagraph(body, "Plain body paragraph."); err != nil {
		t.Fatalf("AddTextParagraph() error = %v", err)
	}
	if _, err := doc.AddParagraph(body,
		odf.Text{Text: "Mixed: "},
		odf.Span{Style: emphasis, Text: "emphasized"},
		odf.Text{Text: " tail."},
	); err != nil {
		t.Fatalf("AddParagraph() error = %v", err)
	}

	list, err := doc.AddList(bullet)
	if err != nil {
		t.Fatalf("AddList() error = %v", err)
	}
	list.AddItem().AddParagraph(body, "First item.")
	list.AddItem().AddParagraph(body, "Second item.")

	table, err := doc.AddTable(academic, 2)
	if err != nil {
		t.Fatalf("AddTable() error = %v", err)
	}
	row := table.AddRow()
	row.AddCell().AddParagraph(body, "Cell 1")
	row.AddCell().AddParagraph(body, "Cell 2")

	frame, err := doc.AddFrame(frameStyle, "7cm", "1cm")
	if err != nil {
		t.Fatalf("AddFrame() error = %v", err)
	}
	frame.AddParagraph(body, "Framed text.")

	if _, err := doc.AddParagraph(body,
		odf.Text{Text: "Anchored"},
		odf.Footnote{
			Class:    odf.NoteFootnote,
			Citation: "1",
			Body:     []odf.Node{(&odf.Paragraph{}).Append(odf.Text{Text: "Footnote body."})},
		},
	); err != nil {
		t.Fatalf("AddParagraph(footnote) error = %v", err)
	}

	if err := doc.RegisterMasterPage("First Page", odf.PageProperties{Margin: "2cm"}); err != nil {
		t.Fatalf("RegisterMasterPage() error = %v", err)
	}
	return doc
}

func TestWritePackageLayout(t *testing.T) {
	doc := buildSampleDocument(t)
	parts, zr := readPackage(t, doc)

	// The mimetype entry must be first and stored uncompressed.
	if len(zr.File) == 0 {
		t.Fatal("package has no entries")
	}
	first := zr.File[0]
	if first.Name != "mimetype" {
		t.Errorf("first entry = %q, want %q", first.Name, "mimetype")
	}
	if first.Method != zip.Store {
		t.Errorf("mimetype method = %d, want zip.Store", first.Method)
	}
	if got := string(parts["mimetype"]); got != Mimetype {
		t.Errorf("mimetype = %q, want %q", got, Mimetype)
	}

	for _, name := range []string{"META-INF/manifest.xml", "content.xml", "styles.xml", "meta.xml"} {
		if _, ok := parts[name]; !ok {
			t.Errorf("package is missing %s", name)
		}
	}
}

func TestRoundTripPreservesOrderAndText(t *testing.T) {
	doc := buildSampleDocument(t)
	parts, _ := readPackage(t, doc)

	got := parseBody(t, parts["content.xml"])
	want := []bodyElem{
		{Tag: "h", Style: "Heading 1", Text: "Sample Heading"},
		{Tag: "p", Style: "Body Text", Text: "Plain body paragraph."},
		{Tag: "p", Style: "Body Text", Text: "Mixed: emphasized tail."},
		{Tag: "list", Style: "Bullet 1", Text: "First item.Second item."},
		{Tag: "table", Style: "Academic", Text: "Cell 1Cell 2"},
		{Tag: "p", Style: "", Text: "Framed text."}, // frame carrier paragraph
		{Tag: "p", Style: "Body Text", Text: "Anchored1Footnote body."},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesAppearExactlyOnce(t *testing.T) {
	doc := buildSampleDocument(t)

	// A duplicate registration must not add a second entry.
	if _, err := doc.Register("Heading 1", odf.FamilyParagraph, nil); err != nil {
		t.Fatalf("duplicate Register() error = %v", err)
	}

	parts, _ := readPackage(t, doc)
	var entries []styleEntry
	entries = append(entries, parseStyleEntries(t, parts["styles.xml"])...)
	entries = append(entries, parseStyleEntries(t, parts["content.xml"])...)

	seen := make(map[styleEntry]int)
	for _, e := range entries {
		seen[e]++
	}
	for e, count := range seen {
		if count != 1 {
			t.Errorf("style (%q, %s) appears %d times, want 1", e.Name, e.Family, count)
		}
	}

	want := []styleEntry{
		{"Heading 1", "paragraph"},
		{"Body Text", "paragraph"},
		{"Emphasis", "text"}, // character family is "text" on the wire
		{"Bullet 1", "list"},
		{"Academic", "table"},
		{"Frame Style", "graphic"},
	}
	for _, e := range want {
		if seen[e] != 1 {
			t.Errorf("style (%q, %s) missing from output", e.Name, e.Family)
		}
	}
}

func TestMetaCarriesIdentity(t *testing.T) {
	doc := buildSampleDocument(t)
	parts, _ := readPackage(t, doc)

	meta := string(parts["meta.xml"])
	if !strings.Contains(meta, doc.ID()) {
		t.Error("meta.xml does not contain the document ID")
	}
	if !strings.Contains(meta, "<dc:title>Sample</dc:title>") {
		t.Error("meta.xml does not contain the document title")
	}
}

func TestWriteRejectsInvalidTree(t *testing.T) {
	doc := odf.New()
	table, err := doc.AddTable(odf.Handle{}, 1)
	if err != nil {
		t.Fatalf("AddTable() error = %v", err)
	}
	// Grow the table past its declared width after the append.
	row := table.AddRow()
	row.AddCell()
	row.AddCell()

	var buf bytes.Buffer
	if err := Write(doc, &buf); !errors.Is(err, errors.ErrCodeInvalidStructure) {
		t.Errorf("Write() error = %v, want INVALID_STRUCTURE", err)
	}
}

func TestSave(t *testing.T) {
	doc := buildSampleDocument(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"explicit extension", filepath.Join(dir, "out.odt"), "out.odt"},
		{"extension appended", filepath.Join(dir, "report"), "report.odt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Save(doc, tt.path)
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if filepath.Base(got) != tt.want {
				t.Errorf("Save() path = %q, want base %q", got, tt.want)
			}
			if _, err := os.Stat(got); err != nil {
				t.Errorf("saved file missing: %v", err)
			}
		})
	}
}

func TestSaveFailures(t *testing.T) {
	doc := buildSampleDocument(t)

	if _, err := Save(doc, ""); !errors.Is(err, errors.ErrCodeInvalidDestination) {
		t.Errorf("Save(empty) error = %v, want INVALID_DESTINATION", err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.odt")
	if _, err := Save(doc, missing); !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("Save(missing dir) error = %v, want WRITE_FAILED", err)
	}
}
