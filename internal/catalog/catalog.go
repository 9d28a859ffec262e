package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/validation"
)

//go:embed catalog.yaml
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

var (
	schemaOnce      sync.Once
	schemaValidator = validation.NewSchemaValidator()
	schemaErr       error
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the YAML representation of the catalog
type Config struct {
	Version     string                `yaml:"version"`
	Description string                `yaml:"description"`
	Items       []ItemDef             `yaml:"items"`
	Yields      map[string][]YieldDef `yaml:"yields"`
	Shop        ShopDef               `yaml:"shop"`
	Districts   []DistrictDef         `yaml:"districts"`
}

// ItemDef describes one inventory item kind
type ItemDef struct {
	ID       string          `yaml:"id"`
	Name     string          `yaml:"name"`
	Type     domain.ItemType `yaml:"type"`
	Price    int             `yaml:"price"`
	Buyable  bool            `yaml:"buyable"`
	Sellable bool            `yaml:"sellable"`
	Feed     bool            `yaml:"feed"`
	Icon     domain.Icon     `yaml:"icon"`
}

// YieldDef is one output stack of a harvest
type YieldDef struct {
	ID       string          `yaml:"id"`
	Type     domain.ItemType `yaml:"type"`
	Quantity int             `yaml:"quantity"`
}

// ShopDef holds prices for purchases that are not inventory items
type ShopDef struct {
	PlotCosts   []int          `yaml:"plot_costs"`
	Tank        int            `yaml:"tank"`
	Decorations map[string]int `yaml:"decorations"`
}

// DistrictDef is an informational regional price adjustment
type DistrictDef struct {
	Name      string         `yaml:"name"`
	Modifiers map[string]int `yaml:"modifiers"`
}

// Catalog is the validated, indexed view of a Config
type Catalog struct {
	cfg       *Config
	items     map[string]ItemDef
	order     []string
	districts map[string]DistrictDef
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault is Default for package-level wiring; the embedded file is validated by tests
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads and validates a catalog file from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML, checks it against the catalog schema and
// then applies the cross-reference rules in Validate
func Parse(data []byte) (*Catalog, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	if err := validateSchema(data); err != nil {
		return nil, err
	}
	return New(&cfg)
}

func validateSchema(data []byte) error {
	schemaOnce.Do(func() {
		schemaErr = schemaValidator.Register(SchemaName, catalogSchema)
	})
	if schemaErr != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFailed, schemaErr)
	}
	if err := schemaValidator.ValidateYAML(SchemaName, data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// New validates cfg and builds the lookup indexes
func New(cfg *Config) (*Catalog, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	c := &Catalog{
		cfg:       cfg,
		items:     make(map[string]ItemDef, len(cfg.Items)),
		order:     make([]string, 0, len(cfg.Items)),
		districts: make(map[string]DistrictDef, len(cfg.Districts)),
	}
	for _, item := range cfg.Items {
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
	}
	for _, d := range cfg.Districts {
		c.districts[normalizeName(d.Name)] = d
	}
	return c, nil
}

// Validate checks the catalog configuration for errors
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(cfg.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}
	if len(cfg.Shop.PlotCosts) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoPlotCosts)
	}

	ids := make(map[string]bool, len(cfg.Items))
	for i, item := range cfg.Items {
		if item.ID == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if ids[item.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, item.ID)
		}
		ids[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf(ErrFmtItemHasEmptyName, ErrInvalidConfig, item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, item.ID)
		}
		switch item.Type {
		case domain.ItemTypeSeed, domain.ItemTypeCrop, domain.ItemTypeEgg:
		default:
			return fmt.Errorf(ErrFmtItemUnknownType, ErrInvalidConfig, item.ID, item.Type)
		}
	}

	for seed, outputs := range cfg.Yields {
		if !ids[seed] {
			return fmt.Errorf(ErrFmtYieldUnknownSeed, ErrInvalidConfig, seed)
		}
		for _, out := range outputs {
			if !ids[out.ID] {
				return fmt.Errorf(ErrFmtYieldUnknownItem, ErrInvalidConfig, seed, out.ID)
			}
		}
	}

	for i, d := range cfg.Districts {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf(ErrFmtDistrictEmptyName, ErrInvalidConfig, i)
		}
		for id := range d.Modifiers {
			if !ids[id] {
				return fmt.Errorf(ErrFmtDistrictUnknownItem, ErrInvalidConfig, d.Name, id)
			}
		}
	}

	return nil
}

// Item returns the definition for id
func (c *Catalog) Item(id string) (ItemDef, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns every definition in file order
func (c *Catalog) Items() []ItemDef {
	out := make([]ItemDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Stack builds an inventory entry for id with the given quantity.
// Unknown ids produce a crop stack named after the id with no resale value.
func (c *Catalog) Stack(id string, itemType domain.ItemType, qty int) domain.InventoryItem {
	if def, ok := c.items[id]; ok && def.Type == itemType {
		return domain.InventoryItem{ID: def.ID, Name: def.Name, Type: def.Type, Quantity: qty, Price: def.Price, Icon: def.Icon}
	}
	return domain.InventoryItem{ID: id, Name: displayName(id), Type: itemType, Quantity: qty}
}

// SeedRef returns the reference attached to a plot when id is planted
func (c *Catalog) SeedRef(id string) domain.SeedRef {
	if def, ok := c.items[id]; ok {
		return domain.SeedRef{ID: def.ID, Name: def.Name, Icon: def.Icon}
	}
	return domain.SeedRef{ID: id, Name: displayName(id)}
}

// Yield returns the stacks produced by harvesting a plot planted with seed.
// Seeds without an entry yield one crop named after the seed plus two seeds back.
func (c *Catalog) Yield(seed domain.SeedRef) []domain.InventoryItem {
	if outputs, ok := c.cfg.Yields[seed.ID]; ok {
		stacks := make([]domain.InventoryItem, 0, len(outputs))
		for _, out := range outputs {
			stacks = append(stacks, c.Stack(out.ID, out.Type, out.Quantity))
		}
		return stacks
	}

	cropID := strings.TrimSuffix(seed.ID, seedSuffix)
	crop := c.Stack(cropID, domain.ItemTypeCrop, DefaultCropYield)
	if crop.Icon == (domain.Icon{}) {
		crop.Icon = seed.Icon
	}
	seeds := c.Stack(seed.ID, domain.ItemTypeSeed, DefaultSeedYield)
	if seeds.Icon == (domain.Icon{}) {
		seeds.Icon = seed.Icon
	}
	return []domain.InventoryItem{crop, seeds}
}

// IsSellable reports whether an inventory entry can be sold to the shop
func (c *Catalog) IsSellable(item domain.InventoryItem) bool {
	if def, ok := c.items[item.ID]; ok && def.Type == item.Type {
		return def.Sellable
	}
	return item.Type == domain.ItemTypeCrop || item.Type == domain.ItemTypeEgg
}

// CanFeed reports whether a seed may be fed to the hen
func (c *Catalog) CanFeed(seedID string) bool {
	def, ok := c.items[seedID]
	return ok && def.Type == domain.ItemTypeSeed && def.Feed
}

// PlotCost returns the price of the next plot given the current plot count
func (c *Catalog) PlotCost(plotCount int) (int, bool) {
	idx := plotCount - 1
	costs := c.cfg.Shop.PlotCosts
	if idx < 0 || idx >= len(costs) {
		return 0, false
	}
	return costs[idx], true
}

// TankPrice returns the price of an additional water tank
func (c *Catalog) TankPrice() int {
	return c.cfg.Shop.Tank
}

// DecorationPrice returns the price of a unique decoration
func (c *Catalog) DecorationPrice(id string) (int, bool) {
	price, ok := c.cfg.Shop.Decorations[id]
	return price, ok
}

// District looks up a district ignoring case and accents
func (c *Catalog) District(name string) (DistrictDef, bool) {
	d, ok := c.districts[normalizeName(name)]
	return d, ok
}

// Districts returns every district name in file order
func (c *Catalog) Districts() []string {
	names := make([]string, 0, len(c.cfg.Districts))
	for _, d := range c.cfg.Districts {
		names = append(names, d.Name)
	}
	return names
}

// Modifier returns the informational adjustment for item in district
func (c *Catalog) Modifier(district, itemID string) int {
	d, ok := c.District(district)
	if !ok {
		return 0
	}
	return d.Modifiers[itemID]
}

// Suggest returns the closest known id to a mistyped one, or "" when nothing is close
func (c *Catalog) Suggest(id string) string {
	candidates := make([]string, 0, len(c.order)+2+len(c.cfg.Shop.Decorations))
	candidates = append(candidates, c.order...)
	candidates = append(candidates, domain.ItemPlot, domain.ItemTank)
	for deco := range c.cfg.Shop.Decorations {
		candidates = append(candidates, deco)
	}

	best := ""
	bestDist := MaxSuggestionDistance + 1
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(needle, candidate)
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}
	if bestDist > MaxSuggestionDistance || best == needle {
		return ""
	}
	return best
}

// normalizeName folds case and strips diacritics so "viru" matches "Virú"
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// displayName turns an id like "mango_seed" into "Mango Seed"
func displayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
