package inventory

import "github.com/osse101/Farmstead_Go/internal/domain"

// Find returns the index of the stack with the given ID and type, or -1
func Find(inv domain.Inventory, id string, itemType domain.ItemType) int {
	for i := range inv {
		if inv[i].ID == id && inv[i].Type == itemType {
			return i
		}
	}
	return -1
}

// FindByID returns the index of the first stack with the given ID regardless of type, or -1
func FindByID(inv domain.Inventory, id string) int {
	for i := range inv {
		if inv[i].ID == id {
			return i
		}
	}
	return -1
}

// Quantity returns how many units of (id, type) the inventory holds
func Quantity(inv domain.Inventory, id string, itemType domain.ItemType) int {
	if idx := Find(inv, id, itemType); idx >= 0 {
		return inv[idx].Quantity
	}
	return 0
}

// Add merges items into the inventory, stacking entries that share (ID, Type).
// The input inventory is not modified.
func Add(inv domain.Inventory, items ...domain.InventoryItem) domain.Inventory {
	out := inv.Clone()
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if idx := Find(out, item.ID, item.Type); idx >= 0 {
			out[idx].Quantity += item.Quantity
			continue
		}
		out = append(out, item)
	}
	return out
}

// Decrement removes qty units of (id, type) and prunes the stack when it empties.
// Returns domain.ErrInsufficientQuantity if there isn't enough.
func Decrement(inv domain.Inventory, id string, itemType domain.ItemType, qty int) (domain.Inventory, error) {
	idx := Find(inv, id, itemType)
	if idx < 0 || inv[idx].Quantity < qty {
		return inv, domain.ErrInsufficientQuantity
	}

	out := inv.Clone()
	out[idx].Quantity -= qty
	if out[idx].Quantity == 0 {
		out = append(out[:idx], out[idx+1:]...)
	}
	return out, nil
}

// Remove drops the stack at idx entirely
func Remove(inv domain.Inventory, idx int) domain.Inventory {
	out := inv.Clone()
	return append(out[:idx], out[idx+1:]...)
}

// Seeds returns the seed stacks that still have units, in inventory order
func Seeds(inv domain.Inventory) []domain.InventoryItem {
	var seeds []domain.InventoryItem
	for _, item := range inv {
		if item.Type == domain.ItemTypeSeed && item.Quantity > 0 {
			seeds = append(seeds, item)
		}
	}
	return seeds
}
