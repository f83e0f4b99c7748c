package wordbank

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tajarush/internal/model"
)

// Picker selects prompt words uniformly at random.
type Picker struct {
	catalog *Catalog
	rnd     *rand.Rand
}

// New returns a Picker over catalog. A zero seed seeds from the current time.
func New(catalog *Catalog, seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithSource(catalog, rand.NewSource(seed))
}

// NewWithSource returns a Picker drawing from src.
func NewWithSource(catalog *Catalog, src rand.Source) *Picker {
	return &Picker{catalog: catalog, rnd: rand.New(src)}
}

// Pick returns a random word for the pair. The catalog guarantees the list is non-empty.
func (p *Picker) Pick(lang model.Language, diff model.Difficulty) string {
	words := p.catalog.words[lang][diff]
	return words[p.rnd.Intn(len(words))]
}
