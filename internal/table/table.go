// Package table reads and writes word→category weight tables as YAML.
// Files map words to category-code→weight mappings; estimation tables
// carry non-negative weights, delta tables may carry negative ones.
// Written files always list words in lexicographic order.
package table

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"posweights/internal/domain"
	"posweights/internal/taxonomy"
)

// Load reads a weight table from path.
// Category labels must belong to the closed category set; anything else is
// a schema violation and fails the whole load.
func Load(path string) (domain.WordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	var raw map[string]map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}

	out := make(domain.WordTable, len(raw))
	for word, weights := range raw {
		dist := make(domain.Distribution, len(weights))
		for label, w := range weights {
			if !taxonomy.Valid(label) {
				return nil, fmt.Errorf("parse table %s: word %q has unknown category %q", path, word, label)
			}
			dist[domain.Category(label)] = w
		}
		out[word] = dist
	}
	return out, nil
}

// Write serializes t to w with words, and categories within each word,
// in lexicographic order.
func Write(w io.Writer, t domain.WordTable) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save writes t to path, replacing any existing file.
func Save(path string, t domain.WordTable) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}
	return nil
}

// Marshal renders t as YAML. The document is built as an explicitly
// ordered node tree: output ordering is a durable contract compared
// across runs, so it cannot depend on map iteration.
func Marshal(t domain.WordTable) ([]byte, error) {
	words := make([]string, 0, len(t))
	for w := range t {
		words = append(words, w)
	}
	sort.Strings(words)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, word := range words {
		root.Content = append(root.Content,
			scalarNode("!!str", word),
			distNode(t[word]))
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("serialize table: %w", err)
	}
	return data, nil
}

func distNode(d domain.Distribution) *yaml.Node {
	cats := make([]string, 0, len(d))
	for c := range d {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	n := &yaml.Node{Kind: yaml.MappingNode}
	if len(cats) == 0 {
		// render words without signal as an explicit empty mapping
		n.Style = yaml.FlowStyle
		return n
	}
	for _, c := range cats {
		v := strconv.FormatFloat(d[domain.Category(c)], 'g', -1, 64)
		n.Content = append(n.Content,
			scalarNode("!!str", c),
			scalarNode("!!float", v))
	}
	return n
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
