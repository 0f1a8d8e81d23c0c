// Package catalog holds the in-memory store catalog: products, map
// sections, and the result type shared by search and import.
//
// The catalog is a thin data holder. It enforces name uniqueness on add
// and nothing else; in particular AssignSections does not validate the
// assigned names against the section list (the assignment surface is
// expected to offer only valid names). Persistence is a collaborator,
// not a concern of this package.
package catalog

// Catalog is the in-memory representation of products and sections.
//
// All mutating operations run synchronously on the caller's goroutine;
// exactly one session mutates a catalog at a time, so there is no
// internal locking.
type Catalog struct {
	ids      IDSource
	products []Product
	sections []Section
}

// New creates an empty catalog drawing ids from the given source.
func New(ids IDSource) *Catalog {
	return &Catalog{ids: ids}
}

// Load replaces the catalog contents with persisted state.
func (c *Catalog) Load(products []Product, sections []Section) {
	c.products = append([]Product(nil), products...)
	c.sections = append([]Section(nil), sections...)
}

// Products returns a copy of the product list.
//
// Returns an empty slice (not nil) when the catalog has no products.
// SectionNames slices are deep-copied so callers cannot mutate catalog
// state through the result.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Sections returns a copy of the section list.
// Returns an empty slice (not nil) when the catalog has no sections.
func (c *Catalog) Sections() []Section {
	out := make([]Section, 0, len(c.sections))
	out = append(out, c.sections...)
	return out
}

// AddProduct creates a product with no assigned sections.
//
// Rejects with a DUPLICATE_NAME error when a product with the same name
// (case-sensitive) already exists; the catalog is unchanged on error.
func (c *Catalog) AddProduct(name string) (Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			return Product{}, NewDuplicateNameError("product", name)
		}
	}
	p := Product{ID: c.ids.NewID(), Name: name, SectionNames: []string{}}
	c.products = append(c.products, p)
	return p.Clone(), nil
}

// DeleteProduct removes the product with the given id.
// Rejects with NOT_FOUND when no such product exists.
func (c *Catalog) DeleteProduct(id string) error {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("product", id)
}

// AssignSections replaces the product's section list (full overwrite,
// not a merge). The names are not validated against the section
// catalog; soft references are allowed to dangle here.
func (c *Catalog) AssignSections(productID string, names []string) error {
	for i := range c.products {
		if c.products[i].ID == productID {
			c.products[i].SectionNames = append([]string{}, names...)
			return nil
		}
	}
	return NewNotFoundError("product", productID)
}

// AddSection creates a section with the given name and rectangle.
//
// Rejects with a DUPLICATE_NAME error when a section with the same name
// already exists; the catalog is unchanged on error.
func (c *Catalog) AddSection(name string, coords Rect) (Section, error) {
	for _, s := range c.sections {
		if s.Name == name {
			return Section{}, NewDuplicateNameError("section", name)
		}
	}
	s := Section{ID: c.ids.NewID(), Name: name, Coords: coords}
	c.sections = append(c.sections, s)
	return s, nil
}

// DeleteSection removes the section with the given id and strips its
// name from every product's section list, so a delete cannot leave
// orphaned references behind.
//
// Rejects with NOT_FOUND when no such section exists.
func (c *Catalog) DeleteSection(id string) error {
	idx := -1
	for i, s := range c.sections {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NewNotFoundError("section", id)
	}
	name := c.sections[idx].Name
	c.sections = append(c.sections[:idx], c.sections[idx+1:]...)

	for i := range c.products {
		kept := c.products[i].SectionNames[:0]
		for _, n := range c.products[i].SectionNames {
			if n != name {
				kept = append(kept, n)
			}
		}
		c.products[i].SectionNames = kept
	}
	return nil
}

// FindProductByID returns the product with the given id.
func (c *Catalog) FindProductByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// FindProductByName returns the product with the given name
// (case-sensitive exact match).
func (c *Catalog) FindProductByName(name string) (Product, bool) {
	for _, p := range c.products {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// ReplaceProducts swaps in a new product list. Used by the importer to
// hand back a reconciled catalog.
func (c *Catalog) ReplaceProducts(products []Product) {
	c.products = append([]Product(nil), products...)
}
