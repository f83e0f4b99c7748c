// Package wordbank provides the compiled-in word catalog and word selection.
package wordbank

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tajarush/internal/model"
)

//go:embed catalog.toml
var catalogTOML string

// Catalog maps (language, difficulty) to a non-empty word list.
type Catalog struct {
	words map[model.Language]map[model.Difficulty][]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. An invalid embedded catalog is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogTOML)
		if err != nil {
			panic(fmt.Sprintf("wordbank: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes a TOML catalog and checks that every language and tier has words.
func Load(data string) (*Catalog, error) {
	var raw map[string]map[string][]string
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	c := &Catalog{words: map[model.Language]map[model.Difficulty][]string{}}
	for langKey, tiers := range raw {
		lang, err := model.ParseLanguage(langKey)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, ok := c.words[lang]; ok {
			return nil, fmt.Errorf("catalog: %s is defined more than once", lang)
		}
		byTier := map[model.Difficulty][]string{}
		for tierKey, words := range tiers {
			diff, err := model.ParseDifficulty(tierKey)
			if err != nil {
				return nil, fmt.Errorf("catalog %s: %w", lang, err)
			}
			if _, ok := byTier[diff]; ok {
				return nil, fmt.Errorf("catalog %s: %s is defined more than once", lang, diff)
			}
			if err := checkWords(words, FilterForLang(lang)); err != nil {
				return nil, fmt.Errorf("catalog %s %s: %w", lang, diff, err)
			}
			byTier[diff] = words
		}
		c.words[lang] = byTier
	}
	for _, lang := range model.Languages {
		for _, diff := range model.Difficulties {
			if len(c.words[lang][diff]) == 0 {
				return nil, fmt.Errorf("catalog has no %s words for %s", diff, lang)
			}
		}
	}
	return c, nil
}

// Words returns a copy of the list for the pair.
func (c *Catalog) Words(lang model.Language, diff model.Difficulty) []string {
	words := c.words[lang][diff]
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Contains reports whether word belongs to the pair's list.
func (c *Catalog) Contains(lang model.Language, diff model.Difficulty, word string) bool {
	for _, w := range c.words[lang][diff] {
		if w == word {
			return true
		}
	}
	return false
}

func checkWords(words []string, keep FilterFunc) error {
	for _, w := range words {
		if !keep(w) {
			return fmt.Errorf("invalid word %q", w)
		}
	}
	return nil
}
