package economy

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/inventory"
	"github.com/osse101/Farmstead_Go/internal/water"
)

// Buy purchases one unit of itemID at its base price.
// Plots and tanks extend the farm, decorations are unique, everything else
// lands in the inventory. District modifiers are never charged.
func (e *Engine) Buy(s *domain.Snapshot, itemID string) (*domain.Snapshot, *Receipt, error) {
	switch itemID {
	case domain.ItemPlot:
		return e.buyPlot(s)
	case domain.ItemTank:
		return e.buyTank(s)
	}
	if _, ok := e.catalog.DecorationPrice(itemID); ok {
		return e.buyDecoration(s, itemID)
	}
	return e.buyItem(s, itemID)
}

func (e *Engine) buyPlot(s *domain.Snapshot) (*domain.Snapshot, *Receipt, error) {
	count := len(s.Plots)
	cost, ok := e.catalog.PlotCost(count)
	if count >= domain.MaxPlots || !ok {
		return s, nil, domain.ErrPlotLimitReached
	}
	if err := checkFunds(s, domain.ItemPlot, cost); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	next.Resources.Currency -= cost
	next.Plots = append(next.Plots, domain.NewPlot(count))
	return next, &Receipt{Action: ActionTypeBuy, Kind: KindPlot, ItemID: domain.ItemPlot, Quantity: 1, Amount: cost}, nil
}

func (e *Engine) buyTank(s *domain.Snapshot) (*domain.Snapshot, *Receipt, error) {
	tanks, err := water.AddTank(s.Resources.WaterTanks)
	if err != nil {
		return s, nil, err
	}
	price := e.catalog.TankPrice()
	if err := checkFunds(s, domain.ItemTank, price); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	next.Resources.Currency -= price
	next.Resources.WaterTanks = tanks
	return next, &Receipt{Action: ActionTypeBuy, Kind: KindTank, ItemID: domain.ItemTank, Quantity: 1, Amount: price}, nil
}

func (e *Engine) buyDecoration(s *domain.Snapshot, id string) (*domain.Snapshot, *Receipt, error) {
	if s.HasDecoration(id) {
		return s, nil, fmt.Errorf(ErrMsgDecorationOwnedFmt, domain.ErrDecorationOwned, id)
	}
	price, _ := e.catalog.DecorationPrice(id)
	if err := checkFunds(s, id, price); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	next.Resources.Currency -= price
	next.Decorations[id] = true
	return next, &Receipt{Action: ActionTypeBuy, Kind: KindDecoration, ItemID: id, Quantity: 1, Amount: price}, nil
}

func (e *Engine) buyItem(s *domain.Snapshot, itemID string) (*domain.Snapshot, *Receipt, error) {
	def, ok := e.catalog.Item(itemID)
	if !ok {
		return s, nil, e.unknownItem(itemID)
	}
	if !def.Buyable {
		return s, nil, fmt.Errorf(ErrMsgItemNotBuyableFmt, itemID, domain.ErrNotBuyable)
	}
	if err := checkFunds(s, itemID, def.Price); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	next.Resources.Currency -= def.Price
	next.Inventory = inventory.Add(next.Inventory, e.catalog.Stack(def.ID, def.Type, 1))
	return next, &Receipt{Action: ActionTypeBuy, Kind: KindItem, ItemID: itemID, Quantity: 1, Amount: def.Price}, nil
}
