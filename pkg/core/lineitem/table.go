package lineitem

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"fin_metrics/pkg/models"
)

// Table resolves raw labels to canonical items. A Table is read-only after construction
// and safe for concurrent use.
type Table struct {
	labels map[string]string
	kinds  map[string]Kind
}

// Default returns the built-in table.
func Default() *Table {
	t := &Table{
		labels: make(map[string]string, len(builtinLabels)),
		kinds:  make(map[string]Kind, len(catalog)),
	}
	for _, it := range catalog {
		t.kinds[it.Name] = it.Kind
	}
	for _, l := range builtinLabels {
		t.labels[l.Label] = l.Item
	}
	return t
}

// ExtensionFile is the YAML layout for additional label aliases.
//
//	labels:
//	  营业收入(调整后): Revenue
type ExtensionFile struct {
	Labels map[string]string `yaml:"labels"`
}

// LoadExtensions reads alias definitions from a YAML file.
func LoadExtensions(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read label extensions: %w", err)
	}
	var f ExtensionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse label extensions %s: %w", path, err)
	}
	return f.Labels, nil
}

// Extend returns a copy of t with additional aliases. Every alias must target an
// existing canonical item; the vocabulary itself cannot grow.
func (t *Table) Extend(aliases map[string]string) (*Table, error) {
	next := &Table{
		labels: make(map[string]string, len(t.labels)+len(aliases)),
		kinds:  t.kinds,
	}
	for k, v := range t.labels {
		next.labels[k] = v
	}
	for label, item := range aliases {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("empty label for item %q", item)
		}
		if _, ok := t.kinds[item]; !ok {
			return nil, fmt.Errorf("label %q targets unknown item %q", label, item)
		}
		next.labels[label] = item
	}
	return next, nil
}

// Lookup maps a raw label to its canonical item.
func (t *Table) Lookup(label string) (string, bool) {
	item, ok := t.labels[strings.TrimSpace(label)]
	return item, ok
}

// Kind classifies a canonical item. Unknown names report Flow and false.
func (t *Table) Kind(item string) (Kind, bool) {
	k, ok := t.kinds[item]
	return k, ok
}

// Items returns the canonical vocabulary in column order.
func (t *Table) Items() []Item {
	return Catalog()
}

// Mapped is an observation whose label has been resolved.
type Mapped struct {
	models.Observation
	Item string
}

// Normalize resolves every observation, dropping those with unmapped labels.
// The returned slice follows input order; unmapped counts dropped rows per raw label.
func (t *Table) Normalize(obs []models.Observation) (mapped []Mapped, unmapped map[string]int) {
	mapped = make([]Mapped, 0, len(obs))
	unmapped = make(map[string]int)
	for _, o := range obs {
		item, ok := t.Lookup(o.RawLabel)
		if !ok {
			unmapped[o.RawLabel]++
			continue
		}
		mapped = append(mapped, Mapped{Observation: o, Item: item})
	}
	return mapped, unmapped
}
