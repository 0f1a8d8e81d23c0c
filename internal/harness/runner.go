package harness

import (
	"fmt"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/highlight"
	"github.com/ovchar/storenav/internal/importer"
	"github.com/ovchar/storenav/internal/search"
	"github.com/ovchar/storenav/internal/testutil"
)

// Snapshot captures the complete outcome of a scenario execution.
// Ids come from a sequential source, so snapshots are deterministic and
// suitable for golden comparison.
type Snapshot struct {
	ScenarioName string            `json:"scenario_name"`
	Import       *ImportOutcome    `json:"import,omitempty"`
	Searches     []SearchOutcome   `json:"searches,omitempty"`
	Products     []catalog.Product `json:"products"`
}

// ImportOutcome records the reconciliation counters and the user-facing
// summary line.
type ImportOutcome struct {
	Added    int    `json:"added"`
	Updated  int    `json:"updated"`
	Warnings int    `json:"warnings"`
	Summary  string `json:"summary"`
}

// SearchOutcome records one search step: suggestions for autocomplete
// steps, results plus the aggregated highlight set and route for list
// steps. Route is present only when at least one item was found.
type SearchOutcome struct {
	Suggest     string                     `json:"suggest,omitempty"`
	Suggestions []string                   `json:"suggestions,omitempty"`
	List        []string                   `json:"list,omitempty"`
	Results     []catalog.SearchResultItem `json:"results,omitempty"`
	Sections    []string                   `json:"sections,omitempty"`
	Route       string                     `json:"route,omitempty"`
}

// Run executes a scenario and returns its snapshot.
func Run(s *Scenario) (*Snapshot, error) {
	ids := testutil.NewSequentialIDSource("id")
	cat := catalog.New(ids)

	for _, f := range s.Sections {
		coords := catalog.Rect{X: f.Rect.X, Y: f.Rect.Y, W: f.Rect.W, H: f.Rect.H}
		if _, err := cat.AddSection(f.Name, coords); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	for _, f := range s.Products {
		p, err := cat.AddProduct(f.Name)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		if len(f.Sections) > 0 {
			if err := cat.AssignSections(p.ID, f.Sections); err != nil {
				return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
			}
		}
	}

	snap := &Snapshot{ScenarioName: s.Name}

	if s.Import != "" {
		res := importer.Import(s.Import, cat.Products(), cat.Sections(), ids)
		cat.ReplaceProducts(res.Products)
		snap.Import = &ImportOutcome{
			Added:    res.Added,
			Updated:  res.Updated,
			Warnings: res.Warnings,
			Summary:  res.Summary(),
		}
	}

	for _, step := range s.Searches {
		snap.Searches = append(snap.Searches, runSearch(step, cat))
	}

	snap.Products = cat.Products()
	return snap, nil
}

func runSearch(step SearchStep, cat *catalog.Catalog) SearchOutcome {
	if step.Suggest != "" {
		out := SearchOutcome{Suggest: step.Suggest}
		for _, p := range search.Suggest(step.Suggest, cat.Products()) {
			out.Suggestions = append(out.Suggestions, p.Name)
		}
		return out
	}

	results := search.ResolveList(step.List, cat.Products())
	out := SearchOutcome{
		List:     step.List,
		Results:  results,
		Sections: highlight.Aggregate(results),
	}
	for _, r := range results {
		if r.Found {
			out.Route = highlight.MapRoute(out.Sections)
			break
		}
	}
	return out
}
