package domain

// ItemType classifies inventory entries
type ItemType string

const (
	ItemTypeSeed ItemType = "seed"
	ItemTypeCrop ItemType = "crop"
	ItemTypeEgg  ItemType = "egg"
)

// InventoryItem is a stack of a single item kind held by the player
type InventoryItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
	Price    int      `json:"price"`
	Icon     Icon     `json:"icon"`
}

// Inventory is the ordered list of stacks
type Inventory []InventoryItem

// Clone returns a copy backed by a new array
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}
