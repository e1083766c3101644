// Package odt serializes an odf.Document into an OpenDocument Text package:
// a zip container holding a mimetype marker, a manifest, and the content,
// styles and metadata XML parts.
//
// The package exposes the same writer pair used elsewhere in the module:
// [Write] streams the document to an io.Writer, [Save] is the file-path
// convenience wrapper around it.
package odt

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/stylebook/stylebook/pkg/errors"
	"github.com/stylebook/stylebook/pkg/odf"
)

// Mimetype is the ODF media type for text documents. It is stored as the
// first, uncompressed zip entry so format sniffers can read it from the raw
// byte stream.
const Mimetype = "application/vnd.oasis.opendocument.text"

// Extension is the canonical file extension for ODT packages.
const Extension = ".odt"

// Write validates doc and streams it to w as a complete ODT package.
// The document is not modified; writing the same document twice produces
// the same package apart from zip timestamps.
func Write(doc *odf.Document, w io.Writer) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	// The mimetype entry must come first and must not be compressed.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create mimetype entry")
	}
	if _, err := mt.Write([]byte(Mimetype)); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write mimetype entry")
	}

	parts := []struct {
		name  string
		write func(io.Writer, *odf.Document) error
	}{
		{"META-INF/manifest.xml", writeManifest},
		{"content.xml", writeContent},
		{"styles.xml", writeStyles},
		{"meta.xml", writeMeta},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", part.name)
		}
		if err := part.write(f, doc); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", part.name)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "finalize package")
	}
	return nil
}

// Save writes doc to the file at path, creating or truncating it. A path
// without an extension gets Extension appended. Save returns the final path
// so callers can report where the document landed.
//
// Failures are not retried and leave no usable partial output; the error
// carries the destination path for context.
func Save(doc *odf.Document, path string) (string, error) {
	if err := errors.ValidateDestination(path); err != nil {
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += Extension
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}

	if err := Write(doc, f); err != nil {
		f.Close()
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "save %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return path, nil
}

// manifestParts lists the package entries declared in the manifest.
var manifestParts = []string{"content.xml", "styles.xml", "meta.xml"}

// writeManifest emits META-INF/manifest.xml describing the package contents.
func writeManifest(w io.Writer, _ *odf.Document) error {
	x := newXMLWriter(w)

	x.start("manifest:manifest",
		attr("xmlns:manifest", nsManifest),
		attr("manifest:version", odfVersion),
	)
	x.empty("manifest:file-entry",
		attr("manifest:full-path", "/"),
		attr("manifest:media-type", Mimetype),
	)
	for _, part := range manifestParts {
		x.empty("manifest:file-entry",
			attr("manifest:full-path", part),
			attr("manifest:media-type", "text/xml"),
		)
	}
	x.end("manifest:manifest")
	return x.flush()
}
