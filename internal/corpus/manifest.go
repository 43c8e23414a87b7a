// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/tests/test_pglz_regression.c (fixed-corpus regression driver, adapted)

package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// ManifestEntry describes one named regression-corpus input, loaded from
// a JSONC (JSON-with-comments) manifest so the corpus can carry
// human-written notes about why each entry exists.
type ManifestEntry struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`     // "repeat" or "random"
	Pattern  string `json:"pattern"`  // for kind=="repeat"
	Count    int    `json:"count"`    // for kind=="repeat": repetitions of Pattern
	Seed     int64  `json:"seed"`     // for kind=="random"
	Size     int    `json:"size"`     // for kind=="random": byte count
	Strategy string `json:"strategy"` // "default" or "always"

	// ExpectedMaxSize, if non-zero, is the regression driver's upper
	// bound on the compressed size for this entry; a smaller observed
	// size is fine, a larger one is a regression.
	ExpectedMaxSize int `json:"expectedMaxSize"`
}

// LoadManifest reads and JWCC-standardizes a corpus manifest file and
// decodes its entries. It does not generate their byte buffers; call
// Materialize on each entry for that.
func LoadManifest(path string) ([]ManifestEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("standardizing JWCC manifest: %w", err)
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(std, &entries); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return entries, nil
}

// Materialize generates the byte buffer a ManifestEntry describes.
func (m ManifestEntry) Materialize() ([]byte, error) {
	switch m.Kind {
	case "repeat":
		return Repeat([]byte(m.Pattern), m.Count*len(m.Pattern)), nil
	case "random":
		return Random(m.Seed, m.Size), nil
	default:
		return nil, fmt.Errorf("corpus: unknown entry kind %q for %q", m.Kind, m.Name)
	}
}
