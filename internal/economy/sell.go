package economy

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/inventory"
)

// Sell sells an entire stack for quantity × unit price and removes it
func (e *Engine) Sell(s *domain.Snapshot, itemID string) (*domain.Snapshot, *Receipt, error) {
	idx := e.findSellable(s.Inventory, itemID)
	if idx < 0 {
		if inventory.FindByID(s.Inventory, itemID) >= 0 {
			return s, nil, fmt.Errorf(ErrMsgItemNotSellableFmt, domain.ErrNotSellable, itemID)
		}
		if _, known := e.catalog.Item(itemID); !known {
			return s, nil, e.unknownItem(itemID)
		}
		return s, nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrNotInInventory, itemID)
	}

	stack := s.Inventory[idx]
	if stack.Quantity <= 0 {
		return s, nil, fmt.Errorf(ErrMsgInsufficientQuantityFmt, domain.ErrInsufficientQuantity, itemID)
	}

	amount := stack.Quantity * stack.Price
	next := s.Clone()
	next.Resources.Currency += amount
	next.Inventory = inventory.Remove(next.Inventory, idx)
	return next, &Receipt{Action: ActionTypeSell, Kind: KindItem, ItemID: itemID, Quantity: stack.Quantity, Amount: amount}, nil
}

// SellAll sells every sellable stack with units in one step
func (e *Engine) SellAll(s *domain.Snapshot) (*domain.Snapshot, *Receipt, error) {
	kept := make(domain.Inventory, 0, len(s.Inventory))
	amount, sold := 0, 0
	for _, item := range s.Inventory {
		if item.Quantity > 0 && e.catalog.IsSellable(item) {
			amount += item.Quantity * item.Price
			sold += item.Quantity
			continue
		}
		kept = append(kept, item)
	}
	if sold == 0 {
		return s, nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrNotInInventory, "nothing to sell")
	}

	next := s.Clone()
	next.Resources.Currency += amount
	next.Inventory = kept
	return next, &Receipt{Action: ActionTypeSellAll, Kind: KindItem, Quantity: sold, Amount: amount}, nil
}

// findSellable prefers the sellable stack when an id exists under several types
func (e *Engine) findSellable(inv domain.Inventory, itemID string) int {
	for i, item := range inv {
		if item.ID == itemID && e.catalog.IsSellable(item) {
			return i
		}
	}
	return -1
}
