package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// marshalSnapshot serializes a snapshot as indented JSON without HTML
// escaping, so Cyrillic names and route query strings stay readable in
// golden files.
func marshalSnapshot(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails; mismatches against the
// golden file fail the test via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	snap, err := Run(scenario)
	if err != nil {
		return err
	}

	data, err := marshalSnapshot(snap)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
