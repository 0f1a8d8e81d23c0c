// Package importer reconciles bulk product-list text against the
// catalog.
//
// The format is the operator TXT format: one product per line,
// `Name;Section,Section,...`. Rows add products that are new and fully
// overwrite the section list of products that already exist; section
// references that don't resolve degrade to warnings instead of aborting
// the import.
package importer

import (
	"fmt"
	"strings"

	"github.com/ovchar/storenav/internal/catalog"
)

// Result is the outcome of one import run.
type Result struct {
	// Products is the reconciled catalog. The input slice is not mutated.
	Products []catalog.Product

	// Added counts rows that created a new product.
	Added int

	// Updated counts rows that overwrote an existing product's sections.
	Updated int

	// Warnings counts rows whose section references did not fully
	// resolve (at most one per row).
	Warnings int
}

// Summary renders the single user-facing notification line for the run.
func (r Result) Summary() string {
	return fmt.Sprintf("Import finished. Added: %d, Updated: %d. Warnings: %d",
		r.Added, r.Updated, r.Warnings)
}

// Import parses text line by line and reconciles it into the catalog.
//
// Per line:
//   - blank lines (after trimming) are skipped;
//   - the first ';' splits name from sections; a line with no ';' at
//     all is malformed and silently skipped — it contributes to no
//     count, warnings included (preserved legacy behavior);
//   - an empty trimmed name skips the line regardless of its sections;
//   - the sections part splits on ',', pieces are trimmed, empties
//     dropped; each candidate must match an existing section name
//     case-sensitively or it is discarded. A row that had a sections
//     part but ended with unresolved or no candidates counts exactly
//     one warning;
//   - reconciliation is by exact product name: no match creates a
//     product with a fresh id, a match overwrites its section list
//     (full replace, not a merge).
//
// Rows skipped before the section step never contribute warnings.
func Import(text string, products []catalog.Product, sections []catalog.Section, ids catalog.IDSource) Result {
	known := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		known[s.Name] = struct{}{}
	}

	// Work on a copy so callers keep their snapshot intact.
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	byName := make(map[string]int, len(out))
	for i, p := range out {
		byName[p.Name] = i
	}

	res := Result{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, sectionsPart, ok := splitRow(line)
		if !ok {
			// Malformed row: no delimiter. Dropped without a warning.
			continue
		}
		if name == "" {
			// A row with no product name is unusable regardless of
			// its section content.
			continue
		}

		names, warned := filterSections(sectionsPart, known)
		if warned {
			res.Warnings++
		}

		if i, exists := byName[name]; exists {
			out[i].SectionNames = names
			res.Updated++
			continue
		}
		out = append(out, catalog.Product{ID: ids.NewID(), Name: name, SectionNames: names})
		byName[name] = len(out) - 1
		res.Added++
	}

	res.Products = out
	return res
}

// splitRow splits a row on the first ';' only; everything after it is
// the sections part even if it contains further ';'. ok is false when
// the row has no delimiter at all.
func splitRow(line string) (name, sectionsPart string, ok bool) {
	namePart, rest, ok := strings.Cut(line, ";")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(namePart), rest, true
}

// filterSections resolves candidate section names against the known
// set. warned is true when the row had at least one unresolved
// reference, or a sections part that trimmed down to nothing — one
// warning per row, not per name.
func filterSections(sectionsPart string, known map[string]struct{}) (names []string, warned bool) {
	names = []string{}
	dropped := false
	for _, piece := range strings.Split(sectionsPart, ",") {
		candidate := strings.TrimSpace(piece)
		if candidate == "" {
			continue
		}
		if _, ok := known[candidate]; ok {
			names = append(names, candidate)
		} else {
			dropped = true
		}
	}
	if dropped || len(names) == 0 {
		return names, true
	}
	return names, false
}
