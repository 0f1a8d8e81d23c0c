// Package highlight turns search results into the highlight set shown
// on the map page, and builds the map route carrying it.
package highlight

import (
	"net/url"
	"strings"

	"github.com/ovchar/storenav/internal/catalog"
)

// MapPath is the route of the map view.
const MapPath = "/tabs/map"

// SectionsParam is the query parameter carrying the highlight set.
const SectionsParam = "sections"

// Delimiter joins section names inside the query parameter value.
const Delimiter = "|"

// Aggregate returns the deduplicated union of section names across all
// found results, in first-seen order. Not-found results contribute
// nothing. The result is identical whether the items came from a single
// suggestion click or a bulk list resolution.
func Aggregate(results []catalog.SearchResultItem) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range results {
		if !r.Found {
			continue
		}
		for _, name := range r.SectionNames {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// MapRoute builds the navigation target for a highlight set.
//
// With at least one section the route carries a single query parameter,
// the pipe-joined URL-encoded section names. With an empty set the
// parameter is omitted entirely — "results but no assigned sections"
// navigates to the bare map, which is distinct from not navigating at
// all on "no results".
func MapRoute(sections []string) string {
	if len(sections) == 0 {
		return MapPath
	}
	q := url.Values{SectionsParam: {strings.Join(sections, Delimiter)}}
	return MapPath + "?" + q.Encode()
}
