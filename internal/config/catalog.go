package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/*.json schema/*.json
var defaultsFS embed.FS

type StructureID = string
type ShipID = string

// Resources is a bundle of the three stockpile kinds. It mirrors the
// game package's Resources; config keeps its own copy so the catalog
// stays a leaf package.
type Resources struct {
	Minerals int `json:"minerals" yaml:"minerals"`
	Gas      int `json:"gas" yaml:"gas"`
	Energy   int `json:"energy" yaml:"energy"`
}

// Prerequisite requires another structure to be at least at a given level
// before the dependent structure may be built or upgraded. MinLevels is
// indexed by the target level minus one.
type Prerequisite struct {
	Structure StructureID `json:"structure"`
	MinLevels []int       `json:"min_levels"`
}

// StructureDef describes one buildable structure kind. All per-level
// slices are indexed by target level minus one and must have exactly
// MaxLevel entries.
type StructureDef struct {
	ID          StructureID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MaxLevel    int         `json:"max_level"`

	Costs      []Resources `json:"costs"`
	BuildTime  []int       `json:"build_time"`
	Production []Resources `json:"production"`
	Storage    []Resources `json:"storage"`

	// ShieldStrength is only meaningful for the shield structure; empty for
	// everything else.
	ShieldStrength   []int `json:"shield_strength,omitempty"`
	ShieldRegenTurns int   `json:"shield_regen_turns,omitempty"`

	Prerequisites []Prerequisite `json:"prerequisites"`
}

// ShipDef describes one ship kind.
type ShipDef struct {
	ID          ShipID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Attack      int `json:"attack"`
	Shield      int `json:"shield"`
	Bombardment int `json:"bombardment"`

	Cost      Resources `json:"cost"`
	BuildTime int       `json:"build_time"`

	// Counters lists ship kinds this one outguns; their presence on the
	// opposing side multiplies this kind's combat power.
	Counters []ShipID `json:"counters"`

	RequiredShipyardLevel int  `json:"required_shipyard_level"`
	Colonizer             bool `json:"colonizer"`
}

// Catalog is the read-only lookup table injected into the engine.
type Catalog struct {
	Structures map[StructureID]*StructureDef
	Ships      map[ShipID]*ShipDef

	// Load order, used anywhere a stable iteration matters.
	StructureOrder []StructureID
	ShipOrder      []ShipID
}

// Structure returns the definition for id, or an error if the catalog does
// not know it. Unknown ids reaching this point indicate a broken install,
// so callers treat the error as fatal.
func (c *Catalog) Structure(id StructureID) (*StructureDef, error) {
	def, ok := c.Structures[id]
	if !ok {
		return nil, configErrf("", "unknown structure %q", id)
	}
	return def, nil
}

func (c *Catalog) Ship(id ShipID) (*ShipDef, error) {
	def, ok := c.Ships[id]
	if !ok {
		return nil, configErrf("", "unknown ship %q", id)
	}
	return def, nil
}

// HasStructure reports whether id is a known structure kind.
func (c *Catalog) HasStructure(id StructureID) bool {
	_, ok := c.Structures[id]
	return ok
}

func (c *Catalog) HasShip(id ShipID) bool {
	_, ok := c.Ships[id]
	return ok
}

const (
	structuresFile = "structures.json"
	shipsFile      = "ships.json"
)

// LoadCatalog reads structure and ship definitions. With dataDir == "" the
// embedded defaults are used; otherwise the two JSON files are read from
// that directory. Every document is validated against its JSON Schema and
// then cross-checked (array lengths vs max_level, counter and prerequisite
// references). Any failure is a ConfigError.
func LoadCatalog(dataDir string) (*Catalog, error) {
	structRaw, err := readCatalogFile(dataDir, structuresFile)
	if err != nil {
		return nil, err
	}
	shipRaw, err := readCatalogFile(dataDir, shipsFile)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(structRaw, shipRaw)
}

// ParseCatalog builds a catalog from raw JSON documents. Exposed separately
// so tests can feed in-memory fixtures through the same validation path.
func ParseCatalog(structuresJSON, shipsJSON []byte) (*Catalog, error) {
	if err := validateSchema(structuresFile, "schema/structures.schema.json", structuresJSON); err != nil {
		return nil, err
	}
	if err := validateSchema(shipsFile, "schema/ships.schema.json", shipsJSON); err != nil {
		return nil, err
	}

	var structDefs []*StructureDef
	if err := json.Unmarshal(structuresJSON, &structDefs); err != nil {
		return nil, configErrf(structuresFile, "parse: %v", err)
	}
	var shipDefs []*ShipDef
	if err := json.Unmarshal(shipsJSON, &shipDefs); err != nil {
		return nil, configErrf(shipsFile, "parse: %v", err)
	}

	cat := &Catalog{
		Structures: make(map[StructureID]*StructureDef, len(structDefs)),
		Ships:      make(map[ShipID]*ShipDef, len(shipDefs)),
	}
	for _, def := range structDefs {
		if _, dup := cat.Structures[def.ID]; dup {
			return nil, configErrf(structuresFile, "duplicate structure id %q", def.ID)
		}
		if err := validateStructureDef(def); err != nil {
			return nil, err
		}
		cat.Structures[def.ID] = def
		cat.StructureOrder = append(cat.StructureOrder, def.ID)
	}
	for _, def := range shipDefs {
		if _, dup := cat.Ships[def.ID]; dup {
			return nil, configErrf(shipsFile, "duplicate ship id %q", def.ID)
		}
		cat.Ships[def.ID] = def
		cat.ShipOrder = append(cat.ShipOrder, def.ID)
	}

	// Cross-file references are checked once everything is indexed.
	for _, def := range structDefs {
		for _, pre := range def.Prerequisites {
			if _, ok := cat.Structures[pre.Structure]; !ok {
				return nil, configErrf(structuresFile,
					"structure %q: prerequisite references unknown structure %q", def.ID, pre.Structure)
			}
			if len(pre.MinLevels) != def.MaxLevel {
				return nil, configErrf(structuresFile,
					"structure %q: prerequisite min_levels has %d entries but max_level is %d",
					def.ID, len(pre.MinLevels), def.MaxLevel)
			}
		}
	}
	for _, def := range shipDefs {
		for _, counter := range def.Counters {
			if _, ok := cat.Ships[counter]; !ok {
				return nil, configErrf(shipsFile,
					"ship %q: counters references unknown ship %q", def.ID, counter)
			}
		}
	}
	return cat, nil
}

func validateStructureDef(def *StructureDef) error {
	if def.MaxLevel < 1 {
		return configErrf(structuresFile, "structure %q: max_level must be at least 1", def.ID)
	}
	checks := []struct {
		field string
		n     int
	}{
		{"costs", len(def.Costs)},
		{"build_time", len(def.BuildTime)},
		{"production", len(def.Production)},
		{"storage", len(def.Storage)},
	}
	for _, c := range checks {
		if c.n != def.MaxLevel {
			return configErrf(structuresFile,
				"structure %q: %s has %d entries but max_level is %d", def.ID, c.field, c.n, def.MaxLevel)
		}
	}
	if len(def.ShieldStrength) != 0 && len(def.ShieldStrength) != def.MaxLevel {
		return configErrf(structuresFile,
			"structure %q: shield_strength has %d entries but max_level is %d",
			def.ID, len(def.ShieldStrength), def.MaxLevel)
	}
	for _, t := range def.BuildTime {
		if t < 1 {
			return configErrf(structuresFile, "structure %q: build_time entries must be positive", def.ID)
		}
	}
	return nil
}

func validateSchema(docName, schemaPath string, doc []byte) error {
	schemaRaw, err := defaultsFS.ReadFile(schemaPath)
	if err != nil {
		return configErrf(schemaPath, "read embedded schema: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, strings.NewReader(string(schemaRaw))); err != nil {
		return configErrf(schemaPath, "compile schema: %v", err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return configErrf(schemaPath, "compile schema: %v", err)
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return configErrf(docName, "parse: %v", err)
	}
	if err := schema.Validate(v); err != nil {
		return configErrf(docName, "schema: %v", err)
	}
	return nil
}

func readCatalogFile(dataDir, name string) ([]byte, error) {
	if dataDir == "" {
		raw, err := defaultsFS.ReadFile("data/" + name)
		if err != nil {
			return nil, configErrf(name, "read embedded defaults: %v", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return nil, &ConfigError{File: name, Reason: fmt.Sprintf("read: %v", err)}
	}
	return raw, nil
}
