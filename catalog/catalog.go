// Package catalog describes the six engines for display: name, summary,
// complexity classes, stability, pros and cons.
//
// The table lives in algorithms.yaml, embedded at build time and decoded
// once on first use.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortviz/sorting"
)

// ErrUnknownAlgorithm is returned by Get for an algorithm without an entry.
var ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

//go:embed algorithms.yaml
var rawCatalog []byte

// Complexity lists the time complexity classes of an algorithm.
type Complexity struct {
	Best    string `yaml:"best"`
	Average string `yaml:"average"`
	Worst   string `yaml:"worst"`
}

// Info is one catalog entry.
type Info struct {
	Key         sorting.Algorithm `yaml:"key"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Time        Complexity        `yaml:"time"`
	Space       string            `yaml:"space"`
	Stable      bool              `yaml:"stable"`
	Pros        []string          `yaml:"pros"`
	Cons        []string          `yaml:"cons"`
}

var (
	loadOnce sync.Once
	entries  []Info
	byKey    map[sorting.Algorithm]Info
	loadErr  error
)

func load() {
	if err := yaml.Unmarshal(rawCatalog, &entries); err != nil {
		loadErr = fmt.Errorf("catalog: decode algorithms.yaml: %w", err)
		return
	}
	byKey = make(map[sorting.Algorithm]Info, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}
}

// Get returns the entry for a.
func Get(a sorting.Algorithm) (Info, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return Info{}, loadErr
	}
	info, ok := byKey[a]
	if !ok {
		return Info{}, fmt.Errorf("Get(%q): %w", string(a), ErrUnknownAlgorithm)
	}
	return info, nil
}

// All returns every entry in display order.
func All() ([]Info, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Info, len(entries))
	copy(out, entries)
	return out, nil
}

// Name returns the display name of a, falling back to its identifier.
func Name(a sorting.Algorithm) string {
	if info, err := Get(a); err == nil {
		return info.Name
	}
	return string(a)
}
