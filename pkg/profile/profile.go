// Package profile loads the optional TOML document profile that customizes
// metadata and page geometry of generated documents.
//
// A profile looks like:
//
//	[document]
//	title = "LibreOffice Styles Reference"
//	subject = "Style catalog demonstration"
//	creator = "stylebook"
//	keywords = ["styles", "reference"]
//
//	[page]
//	margin = "2cm"
//	width = "21cm"
//	height = "29.7cm"
//
// Every field is optional; missing fields keep the built-in defaults.
package profile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/stylebook/stylebook/pkg/errors"
)

// Profile holds document metadata and page geometry for a generation run.
type Profile struct {
	Document Document `toml:"document"`
	Page     Page     `toml:"page"`
}

// Document is the metadata block written to the output's meta part.
type Document struct {
	Title    string   `toml:"title"`
	Subject  string   `toml:"subject"`
	Creator  string   `toml:"creator"`
	Keywords []string `toml:"keywords"`
}

// Page is the geometry applied to registered page styles. All values are
// OpenDocument lengths.
type Page struct {
	Margin string `toml:"margin"`
	Width  string `toml:"width"`
	Height string `toml:"height"`
}

// Default returns the built-in profile used when no file is given.
func Default() Profile {
	return Profile{
		Document: Document{
			Title:   "LibreOffice Styles Reference",
			Subject: "Demonstration of named paragraph, character, list, page, and table styles",
			Creator: "stylebook",
		},
		Page: Page{
			Margin: "2cm",
		},
	}
}

// Load reads a profile file, fills unset fields from Default, and validates
// the page geometry.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile %s", path)
		}
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read profile %s", path)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "parse profile %s", path)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// validate checks the page geometry fields that are set.
func (p Profile) validate() error {
	for _, dim := range []string{p.Page.Margin, p.Page.Width, p.Page.Height} {
		if dim == "" {
			continue
		}
		if err := errors.ValidateLength(dim); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidProfile, err, "page geometry")
		}
	}
	return nil
}
