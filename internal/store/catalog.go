package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/schema"
)

// Preference keys. These are the original application's keys so an
// exported preference dump round-trips unchanged.
const (
	ProductsKey    = "storeProducts"
	SectionsKey    = "storeMapSections"
	MapImageURIKey = "storeMapFileUri"
)

// Prefs is the key-value collaborator contract the persistence layer
// programs against. *Store satisfies it; tests use an in-memory fake.
type Prefs interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LoadCatalog reads the persisted product and section arrays.
//
// Absent keys yield empty (non-nil) slices: a fresh database is an
// empty catalog, not an error. Present payloads are validated against
// the catalog schema before decoding, so a corrupted blob fails loudly
// with a positioned error instead of loading half a catalog.
func LoadCatalog(ctx context.Context, prefs Prefs) ([]catalog.Product, []catalog.Section, error) {
	products := []catalog.Product{}
	if raw, ok, err := prefs.Get(ctx, ProductsKey); err != nil {
		return nil, nil, fmt.Errorf("load products: %w", err)
	} else if ok {
		if err := schema.ValidateProducts([]byte(raw)); err != nil {
			return nil, nil, fmt.Errorf("load products: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			return nil, nil, fmt.Errorf("load products: %w", err)
		}
	}

	sections := []catalog.Section{}
	if raw, ok, err := prefs.Get(ctx, SectionsKey); err != nil {
		return nil, nil, fmt.Errorf("load sections: %w", err)
	} else if ok {
		if err := schema.ValidateSections([]byte(raw)); err != nil {
			return nil, nil, fmt.Errorf("load sections: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &sections); err != nil {
			return nil, nil, fmt.Errorf("load sections: %w", err)
		}
	}

	return products, sections, nil
}

// SaveCatalog writes both arrays in the persisted JSON shapes.
//
// There is no rollback: if sections fail after products were written,
// in-memory state keeps reflecting the attempted save and the caller
// surfaces the error as a notification.
func SaveCatalog(ctx context.Context, prefs Prefs, products []catalog.Product, sections []catalog.Section) error {
	if products == nil {
		products = []catalog.Product{}
	}
	if sections == nil {
		sections = []catalog.Section{}
	}

	rawProducts, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	rawSections, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	if err := prefs.Set(ctx, ProductsKey, string(rawProducts)); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	if err := prefs.Set(ctx, SectionsKey, string(rawSections)); err != nil {
		return fmt.Errorf("save sections: %w", err)
	}
	return nil
}

// LoadMapImageURI returns the stored map image reference.
// ok is false when no map image has been configured.
func LoadMapImageURI(ctx context.Context, prefs Prefs) (uri string, ok bool, err error) {
	uri, ok, err = prefs.Get(ctx, MapImageURIKey)
	if err != nil {
		return "", false, fmt.Errorf("load map image uri: %w", err)
	}
	if uri == "" {
		// An empty stored value is as good as no value.
		return "", false, nil
	}
	return uri, ok, nil
}

// SaveMapImageURI stores the map image reference.
func SaveMapImageURI(ctx context.Context, prefs Prefs, uri string) error {
	if err := prefs.Set(ctx, MapImageURIKey, uri); err != nil {
		return fmt.Errorf("save map image uri: %w", err)
	}
	return nil
}
