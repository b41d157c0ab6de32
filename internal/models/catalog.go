package models

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHireCost is what one new employee costs in cash.
const DefaultHireCost = 5000

// CampaignTemplate is a ready-made marketing campaign offered to the player.
type CampaignTemplate struct {
	Name          string           `yaml:"name"`
	Channel       MarketingChannel `yaml:"channel"`
	Cost          float64          `yaml:"cost"`
	Effectiveness float64          `yaml:"effectiveness"`
	Duration      int              `yaml:"duration"`
	Description   string           `yaml:"description"`
}

// ActivityTemplate is a ready-made operation activity offered to the player.
type ActivityTemplate struct {
	Name        string        `yaml:"name"`
	Type        OperationType `yaml:"type"`
	Cost        float64       `yaml:"cost"`
	Efficiency  float64       `yaml:"efficiency"`
	Description string        `yaml:"description"`
}

// Catalog holds the tunable offers shown in the dashboard. It is read-only
// game content, not saved game state.
type Catalog struct {
	HireCost   float64            `yaml:"hire_cost"`
	Campaigns  []CampaignTemplate `yaml:"campaigns"`
	Activities []ActivityTemplate `yaml:"activities"`
}

// DefaultCatalog returns the built-in offers.
func DefaultCatalog() *Catalog {
	return &Catalog{
		HireCost: DefaultHireCost,
		Campaigns: []CampaignTemplate{
			{
				Name:          "Social Media Campaign",
				Channel:       ChannelSocialMedia,
				Cost:          10000,
				Effectiveness: 7,
				Duration:      3,
				Description:   "Launch a targeted social media campaign to increase brand awareness.",
			},
			{
				Name:          "Print Advertisement",
				Channel:       ChannelPrint,
				Cost:          15000,
				Effectiveness: 5,
				Duration:      4,
				Description:   "Traditional print advertisements in relevant publications.",
			},
			{
				Name:          "Radio Spot",
				Channel:       ChannelRadio,
				Cost:          20000,
				Effectiveness: 6,
				Duration:      3,
				Description:   "Run radio advertisements to reach local audiences.",
			},
			{
				Name:          "Television Commercial",
				Channel:       ChannelTelevision,
				Cost:          50000,
				Effectiveness: 9,
				Duration:      2,
				Description:   "High-impact television commercials during prime viewing hours.",
			},
			{
				Name:          "Online Advertising",
				Channel:       ChannelOnline,
				Cost:          25000,
				Effectiveness: 8,
				Duration:      3,
				Description:   "Digital advertising including search engine marketing and display ads.",
			},
		},
		Activities: []ActivityTemplate{
			{
				Name:        "Expand Production Line",
				Type:        OperationProduction,
				Cost:        15000,
				Efficiency:  6,
				Description: "Add capacity to the main production line.",
			},
			{
				Name:        "Streamline Logistics",
				Type:        OperationLogistics,
				Cost:        10000,
				Efficiency:  5,
				Description: "Renegotiate shipping contracts and consolidate warehouses.",
			},
			{
				Name:        "R&D Program",
				Type:        OperationResearch,
				Cost:        20000,
				Efficiency:  7,
				Description: "Fund a research team to develop the next product.",
			},
			{
				Name:        "Customer Support Desk",
				Type:        OperationCustomerService,
				Cost:        8000,
				Efficiency:  4,
				Description: "Staff a help desk to keep customers happy.",
			},
		},
	}
}

// LoadCatalog reads a YAML catalog from path. Sections missing from the file
// fall back to [DefaultCatalog].
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer f.Close()

	c, err := LoadCatalogFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	return c, nil
}

// LoadCatalogFromReader decodes a YAML catalog from r and validates it.
func LoadCatalogFromReader(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}

	def := DefaultCatalog()
	if c.HireCost == 0 {
		c.HireCost = def.HireCost
	}
	if len(c.Campaigns) == 0 {
		c.Campaigns = def.Campaigns
	}
	if len(c.Activities) == 0 {
		c.Activities = def.Activities
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every template can be dispatched to the engine.
func (c *Catalog) Validate() error {
	var errs []error

	if c.HireCost < 0 {
		errs = append(errs, fmt.Errorf("hire_cost %.0f must not be negative", c.HireCost))
	}
	for i, t := range c.Campaigns {
		prefix := fmt.Sprintf("campaigns[%d]", i)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !t.Channel.IsValid() {
			errs = append(errs, fmt.Errorf("%s.channel %q is invalid", prefix, t.Channel))
		}
		if t.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s.cost %.0f must not be negative", prefix, t.Cost))
		}
		if t.Effectiveness < 0 || t.Effectiveness > 10 {
			errs = append(errs, fmt.Errorf("%s.effectiveness %.1f is out of range [0, 10]", prefix, t.Effectiveness))
		}
		if t.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration %d must not be negative", prefix, t.Duration))
		}
	}
	for i, t := range c.Activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !t.Type.IsValid() {
			errs = append(errs, fmt.Errorf("%s.type %q is invalid", prefix, t.Type))
		}
		if t.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s.cost %.0f must not be negative", prefix, t.Cost))
		}
		if t.Efficiency < 0 {
			errs = append(errs, fmt.Errorf("%s.efficiency %.1f must not be negative", prefix, t.Efficiency))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("catalog: %w", errors.Join(errs...))
}
