// Package catalog loads the static game tables (tiers, county badges, daily
// login bonuses and the gacha pool) from a YAML file.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GachaTrip_Go/internal/collection"
	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/gacha"
	"github.com/osse101/GachaTrip_Go/internal/level"
	"github.com/osse101/GachaTrip_Go/internal/validation"
)

// SchemaName is the name the catalog schema is registered under
const SchemaName = "catalog.schema.json"

//go:embed catalog.schema.json
var schemaJSON []byte

var schemas = validation.NewSchemaValidator()

func init() {
	if err := schemas.AddSchema(SchemaName, schemaJSON); err != nil {
		panic(err)
	}
}

// Catalog holds the static tables injected into the engines
type Catalog struct {
	Tiers            []domain.LevelTier      `yaml:"tiers"`
	CountyShortNames map[string]string       `yaml:"county_short_names"`
	DailyLogin       *domain.DailyLoginRules `yaml:"daily_login"`
	GachaPool        []domain.Destination    `yaml:"gacha_pool"`
}

// Default returns the built-in tables
func Default() *Catalog {
	rules := level.DefaultRules()
	pool := make([]domain.Destination, len(gacha.DefaultPool))
	copy(pool, gacha.DefaultPool)

	return &Catalog{
		Tiers:            rules.Tiers,
		CountyShortNames: maps.Clone(collection.DefaultShortNames),
		DailyLogin:       &rules.DailyLogin,
		GachaPool:        pool,
	}
}

// Load reads the catalog at path. A missing file yields Default();
// sections left out of the file keep their defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog. Unknown keys are rejected and the document
// must match catalog.schema.json.
func Parse(data []byte) (*Catalog, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	if doc != nil {
		if err := schemas.ValidateDocument(doc, SchemaName); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	}

	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	def := Default()
	if c.Tiers == nil {
		c.Tiers = def.Tiers
	}
	if c.CountyShortNames == nil {
		c.CountyShortNames = def.CountyShortNames
	}
	if c.DailyLogin == nil {
		c.DailyLogin = def.DailyLogin
	}
	if c.GachaPool == nil {
		c.GachaPool = def.GachaPool
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every table
func (c *Catalog) Validate() error {
	if err := level.ValidateTiers(c.Tiers); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	if c.DailyLogin.BaseBonus < 0 || c.DailyLogin.MilestoneBonus < 0 {
		return fmt.Errorf("%w: daily login bonuses must not be negative", domain.ErrInvalidCatalog)
	}
	for _, m := range c.DailyLogin.Milestones {
		if m < 1 {
			return fmt.Errorf("%w: streak milestone %d must be at least 1", domain.ErrInvalidCatalog, m)
		}
	}

	seen := make(map[string]bool, len(c.GachaPool))
	for i, d := range c.GachaPool {
		if d.Title == "" || d.County == "" {
			return fmt.Errorf("%w: gacha_pool[%d] needs a title and a county", domain.ErrInvalidCatalog, i)
		}
		key := d.Title + "\x00" + d.County
		if seen[key] {
			return fmt.Errorf("%w: gacha_pool has %q in %s twice", domain.ErrInvalidCatalog, d.Title, d.County)
		}
		seen[key] = true
	}
	if _, err := gacha.NewPuller(c.GachaPool, nil); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	return nil
}

// LevelRules returns the rules for level.Engine
func (c *Catalog) LevelRules() level.Rules {
	return level.Rules{
		Tiers:      c.Tiers,
		DailyLogin: *c.DailyLogin,
	}
}
