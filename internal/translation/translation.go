// Package translation resolves a per-request Translator for a language code
// from the embedded go-i18n catalogs.
package translation

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Translator renders a message ID in one language, applying positional args.
type Translator func(messageID string, args ...any) string

// Identity renders message IDs verbatim. It is the default-language
// translator and the fallback for unknown codes.
func Identity(messageID string, args ...any) string {
	if len(args) == 0 {
		return messageID
	}
	return fmt.Sprintf(messageID, args...)
}

// Resolver builds translators. It is safe for concurrent use; it holds no
// notion of a current language.
type Resolver struct {
	bundle  *i18n.Bundle
	catalog Catalog
}

// NewResolver loads the embedded message file of every catalog language that
// has one. Languages without a file render through Identity.
func NewResolver(catalog Catalog) (*Resolver, error) {
	return newResolver(localesFS, catalog)
}

func newResolver(fsys fs.FS, catalog Catalog) (*Resolver, error) {
	bundle := i18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range catalog.Languages() {
		tag, err := Tag(lang.Code)
		if err != nil {
			return nil, fmt.Errorf("invalid language code %q: %w", lang.Code, err)
		}
		path := "locales/active." + tag.String() + ".toml"
		if _, err := fs.Stat(fsys, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return &Resolver{bundle: bundle, catalog: catalog}, nil
}

// Catalog returns the languages the resolver was built for.
func (r *Resolver) Catalog() Catalog {
	return r.catalog
}

// For returns the translator of code, or Identity when code is not in the
// catalog.
func (r *Resolver) For(code string) Translator {
	if _, ok := r.catalog.Lookup(code); !ok {
		return Identity
	}
	tag, err := Tag(code)
	if err != nil {
		return Identity
	}

	localizer := i18n.NewLocalizer(r.bundle, tag.String())
	return func(messageID string, args ...any) string {
		text, err := localizer.Localize(&i18n.LocalizeConfig{
			DefaultMessage: &i18n.Message{ID: messageID, Other: messageID},
		})
		if err != nil && text == "" {
			text = messageID
		}
		return Identity(text, args...)
	}
}

// Tag parses a catalog code such as pt_BR into a BCP 47 tag.
func Tag(code string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(code, "_", "-"))
}
