package economy

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/inventory"
)

// Feed gives the hen one unit of the selected seed in exchange for eggs
func (e *Engine) Feed(s *domain.Snapshot, targetID string) (*domain.Snapshot, *Receipt, error) {
	if targetID != domain.DecorationHen || !s.HasDecoration(domain.DecorationHen) {
		return s, nil, domain.ErrHenMissing
	}
	seedID := s.SelectedSeedID
	if seedID == "" {
		return s, nil, domain.ErrNoSeedSelected
	}
	if !e.catalog.CanFeed(seedID) {
		return s, nil, fmt.Errorf(ErrMsgSeedNotEligibleFmt, domain.ErrSeedNotEligible, seedID)
	}
	inv, err := inventory.Decrement(s.Inventory, seedID, domain.ItemTypeSeed, 1)
	if err != nil {
		return s, nil, fmt.Errorf(ErrMsgInsufficientQuantityFmt, err, seedID)
	}

	next := s.Clone()
	next.Inventory = inventory.Add(inv, e.catalog.Stack(domain.ItemEgg, domain.ItemTypeEgg, domain.EggsPerFeed))
	return next, &Receipt{Action: ActionTypeFeed, Kind: KindItem, ItemID: domain.ItemEgg, Quantity: domain.EggsPerFeed}, nil
}
