package astro

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog sources understood by LoadCatalog besides a file path.
const (
	CatalogBuiltin = "builtin"
	CatalogNone    = "none"
)

// ErrInvalidStar is returned for catalog records with out-of-range coordinates.
var ErrInvalidStar = errors.New("invalid star record")

// LoadCatalog resolves a catalog source: "builtin" (or empty) for the
// built-in bright-star list, "none" for an empty catalog, anything else is
// read as a YAML or JSON file.
func LoadCatalog(source string) (StarCatalog, error) {
	switch source {
	case "", CatalogBuiltin:
		return DefaultStarCatalog(), nil
	case CatalogNone:
		return StarCatalog{}, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return StarCatalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := ParseCatalog(f)
	if err != nil {
		return StarCatalog{}, fmt.Errorf("catalog %s: %w", source, err)
	}
	return cat, nil
}

// ParseCatalog decodes a list of star records. JSON is accepted since it is
// valid YAML:
//
//	- {name: Sirius, ra: 101.287, dec: -16.716, mag: -1.46, bv: 0.00}
//	- {ra: 10.5, dec: 41.2, mag: 4.1}
func ParseCatalog(r io.Reader) (StarCatalog, error) {
	var stars []Star
	if err := yaml.NewDecoder(r).Decode(&stars); err != nil {
		if errors.Is(err, io.EOF) {
			return StarCatalog{}, nil
		}
		return StarCatalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range stars {
		s := &stars[i]
		if !finite(s.RAdeg, s.DecDeg, s.Mag) || (s.BV != nil && !finite(*s.BV)) {
			return StarCatalog{}, fmt.Errorf("record %d (%s): non-finite value: %w", i, s.Name, ErrInvalidStar)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			return StarCatalog{}, fmt.Errorf("record %d (%s): dec %v: %w", i, s.Name, s.DecDeg, ErrInvalidStar)
		}
		s.RAdeg = normalizeDegrees(s.RAdeg)
	}

	return StarCatalog{Stars: stars}, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
