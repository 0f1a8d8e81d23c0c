// Package schema validates persisted catalog JSON against the embedded
// CUE definitions before the application trusts it.
//
// The preference store holds plain JSON blobs; nothing else guards
// their shape. Validating on load turns a corrupted or hand-edited blob
// into a positioned error instead of a zero-valued catalog.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed catalog.cue
var catalogCUE string

var (
	compileOnce sync.Once
	compileErr  error

	productsSchema cue.Value
	sectionsSchema cue.Value
)

// compile builds the schema values once; the CUE context is reused for
// every validation.
func compile() error {
	compileOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(catalogCUE, cue.Filename("catalog.cue"))
		if err := v.Err(); err != nil {
			compileErr = fmt.Errorf("compile catalog schema: %w", err)
			return
		}

		productsSchema = v.LookupPath(cue.ParsePath("#Products"))
		if err := productsSchema.Err(); err != nil {
			compileErr = fmt.Errorf("lookup #Products: %w", err)
			return
		}
		sectionsSchema = v.LookupPath(cue.ParsePath("#Sections"))
		if err := sectionsSchema.Err(); err != nil {
			compileErr = fmt.Errorf("lookup #Sections: %w", err)
		}
	})
	return compileErr
}

// ValidateProducts checks a persisted products array against #Products.
func ValidateProducts(data []byte) error {
	if err := compile(); err != nil {
		return err
	}
	if err := cuejson.Validate(data, productsSchema); err != nil {
		return fmt.Errorf("products payload: %w", err)
	}
	return nil
}

// ValidateSections checks a persisted sections array against #Sections.
func ValidateSections(data []byte) error {
	if err := compile(); err != nil {
		return err
	}
	if err := cuejson.Validate(data, sectionsSchema); err != nil {
		return fmt.Errorf("sections payload: %w", err)
	}
	return nil
}
