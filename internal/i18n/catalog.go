// Package i18n holds the message catalog the pages are rendered with.
//
// Only the en-US table is embedded and registered. Other files under
// locales/ are kept for translators but are not loaded.
package i18n

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the only locale pages are rendered in.
const BaseLocale = "en-US"

//go:embed locales/en-US.json
var enUSMessages []byte

// Localizer provides translated strings for view components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Catalog is one locale's message table.
type Catalog struct {
	Locale   string
	Tag      language.Tag
	Messages map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Parse decodes a JSON message table for locale.
func Parse(locale string, data []byte) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", locale, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s catalog has no messages", locale)
	}

	messages := make(map[string]string, len(raw))
	for key, value := range raw {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return nil, fmt.Errorf("%s catalog: message key cannot be blank", locale)
		}
		if _, exists := messages[trimmed]; exists {
			return nil, fmt.Errorf("%s catalog: duplicate key %q", locale, trimmed)
		}
		messages[trimmed] = value
	}

	return &Catalog{Locale: locale, Tag: tag, Messages: messages}, nil
}

// Register registers the messages with x/text/message under the catalog's
// tag and its parent language, so "en" lookups resolve to the same table.
func (c *Catalog) Register() error {
	tags := []language.Tag{c.Tag}
	if parent := c.Tag.Parent(); parent != language.Und && parent != c.Tag {
		tags = append(tags, parent)
	}

	for _, key := range c.Keys() {
		for _, tag := range tags {
			if err := message.SetString(tag, key, c.Messages[key]); err != nil {
				return fmt.Errorf("register %q for %s: %w", key, tag, err)
			}
		}
	}
	return nil
}

// Keys returns the sorted message keys.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Messages))
	for key := range c.Messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Printer returns a printer bound to the catalog's locale.
func (c *Catalog) Printer() *message.Printer {
	return message.NewPrinter(c.Tag)
}

// Default returns the embedded en-US catalog, registering it on first use.
// It panics if the embedded table is malformed, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(BaseLocale, enUSMessages)
		if err != nil {
			panic(err)
		}
		if err := cat.Register(); err != nil {
			panic(err)
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Provider returns the localizer every page is wrapped in. The locale is
// fixed; request headers are not consulted.
func Provider() Localizer {
	return Default().Printer()
}

// T returns the translated message for key. A nil loc uses Provider.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		loc = Provider()
	}
	return loc.Sprintf(key, args...)
}
