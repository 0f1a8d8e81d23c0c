package catalog

// Rect is a rectangle in map-image pixel space.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Section is a named rectangular region on the store map image.
//
// Sections are referenced from Product.SectionNames by name, not by id.
// The reference is soft: a product may name a section that no longer
// exists, and nothing in the data model prevents that.
type Section struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Coords Rect   `json:"coords"`
}

// Product is a catalog entry with zero or more assigned section names.
//
// Name is unique within a catalog (case-sensitive, enforced on add).
// SectionNames preserves assignment order and may be empty.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	SectionNames []string `json:"sectionNames"`
}

// SearchResultItem is one entry of a search or list-resolution result.
//
// SectionNames carries the matched product's section list as it was at
// resolution time. It is a value, not a view: later catalog mutations do
// not alter items that were already produced. Empty when Found is false.
type SearchResultItem struct {
	ProductName  string   `json:"productName"`
	SectionNames []string `json:"sectionNames"`
	Found        bool     `json:"found"`
}

// Clone returns a deep copy of the product.
//
// SectionNames is copied so callers can mutate the result freely, and
// stays non-nil so the product always serializes with a JSON array.
func (p Product) Clone() Product {
	cp := p
	cp.SectionNames = append([]string{}, p.SectionNames...)
	return cp
}
