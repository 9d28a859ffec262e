package economy

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/water"
)

// Listing is one shop offer as shown to the player.
// Modifier is the district's regional adjustment; it is displayed but the
// charged price is always Price.
type Listing struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	Kind      string      `json:"kind"`
	Price     int         `json:"price"`
	Modifier  int         `json:"modifier"`
	Available bool        `json:"available"`
	Icon      domain.Icon `json:"icon"`
}

// Quote prices a single item for the given snapshot and district
func (e *Engine) Quote(s *domain.Snapshot, itemID, district string) (Listing, error) {
	if err := e.checkDistrict(district); err != nil {
		return Listing{}, err
	}

	switch itemID {
	case domain.ItemPlot:
		return e.plotListing(s), nil
	case domain.ItemTank:
		return e.tankListing(s), nil
	}
	if price, ok := e.catalog.DecorationPrice(itemID); ok {
		return Listing{
			ItemID:    itemID,
			Name:      itemID,
			Kind:      KindDecoration,
			Price:     price,
			Available: !s.HasDecoration(itemID) && s.Resources.Currency >= price,
		}, nil
	}

	def, ok := e.catalog.Item(itemID)
	if !ok {
		return Listing{}, e.unknownItem(itemID)
	}
	return Listing{
		ItemID:    def.ID,
		Name:      def.Name,
		Kind:      KindItem,
		Price:     def.Price,
		Modifier:  e.catalog.Modifier(district, def.ID),
		Available: def.Buyable && s.Resources.Currency >= def.Price,
		Icon:      def.Icon,
	}, nil
}

// Listings returns every buyable offer: seeds first, then plot, tank and decorations
func (e *Engine) Listings(s *domain.Snapshot, district string) ([]Listing, error) {
	if err := e.checkDistrict(district); err != nil {
		return nil, err
	}

	var out []Listing
	for _, def := range e.catalog.Items() {
		if !def.Buyable {
			continue
		}
		l, err := e.Quote(s, def.ID, district)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	out = append(out, e.plotListing(s), e.tankListing(s))
	for _, id := range []string{domain.DecorationHen, domain.DecorationPet} {
		if l, err := e.Quote(s, id, district); err == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (e *Engine) plotListing(s *domain.Snapshot) Listing {
	cost, ok := e.catalog.PlotCost(len(s.Plots))
	return Listing{
		ItemID:    domain.ItemPlot,
		Name:      domain.ItemPlot,
		Kind:      KindPlot,
		Price:     cost,
		Available: ok && len(s.Plots) < domain.MaxPlots && s.Resources.Currency >= cost,
	}
}

func (e *Engine) tankListing(s *domain.Snapshot) Listing {
	price := e.catalog.TankPrice()
	_, err := water.AddTank(s.Resources.WaterTanks)
	return Listing{
		ItemID:    domain.ItemTank,
		Name:      domain.ItemTank,
		Kind:      KindTank,
		Price:     price,
		Available: err == nil && s.Resources.Currency >= price,
	}
}

func (e *Engine) checkDistrict(district string) error {
	if district == "" {
		return nil
	}
	if _, ok := e.catalog.District(district); !ok {
		return fmt.Errorf(ErrMsgDistrictNotFoundFmt, domain.ErrDistrictNotFound, district)
	}
	return nil
}
