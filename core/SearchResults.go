package core

import (
	"bytes"
	"encoding/json"
	"sort"
)

// SearchResults maps every configured keyword to the files it was found in.
// Keyword order is kept so reports come out in configuration order.
type SearchResults struct {
	keywords []string
	matches  map[string][]string
}

func NewSearchResults(keywords []string) SearchResults {
	results := SearchResults{
		keywords: make([]string, 0, len(keywords)),
		matches:  make(map[string][]string, len(keywords)),
	}
	for _, keyword := range keywords {
		if _, exists := results.matches[keyword]; exists {
			continue
		}
		results.keywords = append(results.keywords, keyword)
		results.matches[keyword] = []string{}
	}
	return results
}

// Extend folds one file's matches into the aggregate. Keys that were not
// configured are ignored.
func (r *SearchResults) Extend(result FileResult) {
	for keyword, paths := range result.Matches {
		existing, ok := r.matches[keyword]
		if !ok {
			continue
		}
		r.matches[keyword] = append(existing, paths...)
	}
}

func (r SearchResults) IsZero() bool {
	return r.matches == nil
}

func (r SearchResults) Keywords() []string {
	keywords := make([]string, len(r.keywords))
	copy(keywords, r.keywords)
	return keywords
}

func (r SearchResults) Get(keyword string) []string {
	paths, ok := r.matches[keyword]
	if !ok {
		return nil
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

func (r SearchResults) Len() int {
	return len(r.keywords)
}

// Map returns a copy of the keyword to paths mapping.
func (r SearchResults) Map() map[string][]string {
	out := make(map[string][]string, len(r.matches))
	for _, keyword := range r.keywords {
		out[keyword] = r.Get(keyword)
	}
	return out
}

func (r SearchResults) Clone() SearchResults {
	clone := NewSearchResults(r.keywords)
	for _, keyword := range r.keywords {
		clone.matches[keyword] = r.Get(keyword)
	}
	return clone
}

// Sorted returns a copy with each keyword's paths sorted.
func (r SearchResults) Sorted() SearchResults {
	sorted := NewSearchResults(r.keywords)
	for _, keyword := range r.keywords {
		paths := r.Get(keyword)
		sort.Strings(paths)
		sorted.matches[keyword] = paths
	}
	return sorted
}

// Equal compares two results as sets, ignoring the order paths arrived in.
func (r SearchResults) Equal(other SearchResults) bool {
	if len(r.matches) != len(other.matches) {
		return false
	}
	a, b := r.Sorted(), other.Sorted()
	for keyword, paths := range a.matches {
		otherPaths, ok := b.matches[keyword]
		if !ok || len(paths) != len(otherPaths) {
			return false
		}
		for i := range paths {
			if paths[i] != otherPaths[i] {
				return false
			}
		}
	}
	return true
}

func (r SearchResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, keyword := range r.keywords {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(keyword)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.matches[keyword])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
