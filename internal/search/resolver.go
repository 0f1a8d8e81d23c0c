// Package search resolves customer queries against the product catalog.
//
// Two entry points matter: Suggest, the per-keystroke autocomplete
// match, and ResolveList/ResolveText, the bulk newline-list resolution.
// Both operate on a product snapshot passed in by the caller; the
// package holds no state of its own.
package search

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/ovchar/storenav/internal/catalog"
)

// Suggest returns the products whose names contain the query as a
// case-insensitive substring.
//
// An empty or blank query yields no suggestions. Candidates are ordered
// by Jaro-Winkler similarity to the query (best first); products with
// equal similarity keep their catalog order. Similarity affects only
// the ordering — membership is pure substring match.
func Suggest(query string, products []catalog.Product) []catalog.Product {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type candidate struct {
		product catalog.Product
		score   float32
	}

	var matched []candidate
	for _, p := range products {
		name := fold(p.Name)
		if !strings.Contains(name, q) {
			continue
		}
		// Similarity errors degrade to zero score, never drop a match.
		score, err := edlib.StringsSimilarity(q, name, edlib.JaroWinkler)
		if err != nil {
			score = 0
		}
		matched = append(matched, candidate{product: p, score: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]catalog.Product, 0, len(matched))
	for _, c := range matched {
		out = append(out, c.product)
	}
	return out
}

// ResolveProduct resolves a suggestion click: looks up the product by
// id and emits a single found result carrying its current section list.
//
// Returns false when the id no longer resolves (the product was deleted
// between suggestion and click).
func ResolveProduct(id string, products []catalog.Product) (catalog.SearchResultItem, bool) {
	for _, p := range products {
		if p.ID == id {
			return catalog.SearchResultItem{
				ProductName:  p.Name,
				SectionNames: append([]string{}, p.SectionNames...),
				Found:        true,
			}, true
		}
	}
	return catalog.SearchResultItem{}, false
}

// ResolveList resolves a list of raw product names, one result per
// non-empty trimmed line, in input order. Duplicate inputs produce
// duplicate results.
//
// A line resolves by exact case-sensitive match against Name. Found
// results carry the product's section list at resolution time;
// not-found results carry an empty (non-nil) list.
func ResolveList(names []string, products []catalog.Product) []catalog.SearchResultItem {
	results := make([]catalog.SearchResultItem, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		results = append(results, resolveOne(name, products))
	}
	return results
}

// ResolveText splits a free-text block on newlines and resolves it as a
// list. Tolerates \r\n line endings and trailing blank lines.
func ResolveText(text string, products []catalog.Product) []catalog.SearchResultItem {
	return ResolveList(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), products)
}

func resolveOne(name string, products []catalog.Product) catalog.SearchResultItem {
	for _, p := range products {
		if p.Name == name {
			return catalog.SearchResultItem{
				ProductName:  name,
				SectionNames: append([]string{}, p.SectionNames...),
				Found:        true,
			}
		}
	}
	return catalog.SearchResultItem{ProductName: name, SectionNames: []string{}, Found: false}
}
