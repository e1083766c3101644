// Package pkg provides the core libraries for Stylebook document generation.
//
// # Overview
//
// Stylebook builds a sample word-processor document that demonstrates a
// catalog of named styles and serializes it as an OpenDocument Text package.
// The pkg directory is organized into four main areas:
//
//  1. [odf] - Document model (style registry, content tree, validation)
//  2. [odf/odt] - OpenDocument Text serialization (XML parts, zip packaging)
//  3. [refdoc] - The styles reference document itself (catalog + body)
//  4. [profile] - TOML profiles for document metadata and page geometry
//
// # Architecture
//
// The typical data flow through Stylebook:
//
//	Profile (TOML or defaults)
//	         ↓
//	    [refdoc] package (register catalog, assemble body)
//	         ↓
//	    [odf] package (document model + validation)
//	         ↓
//	    [odf/odt] package (content.xml, styles.xml, meta.xml, manifest)
//	         ↓
//	    .odt output
//
// # Quick Start
//
//	p := profile.Default()
//	path, err := refdoc.Generate(p, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", path)
//
// Supporting packages [errors] and [buildinfo] provide coded error handling
// and build-time version metadata.
package pkg
