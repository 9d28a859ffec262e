package economy

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
)

// Receipt describes the money and goods moved by a shop transaction
type Receipt struct {
	Action   string `json:"action"`
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
}

// Engine provides pure shop and inventory logic (no persistence)
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an economy engine backed by the given catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the catalog prices are read from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// unknownItem builds an item-not-found error with a "did you mean" hint when one exists
func (e *Engine) unknownItem(itemID string) error {
	if suggestion := e.catalog.Suggest(itemID); suggestion != "" {
		return fmt.Errorf(ErrMsgItemNotFoundSuggestFmt, domain.ErrItemNotFound, itemID, suggestion)
	}
	return fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, itemID)
}

func checkFunds(s *domain.Snapshot, itemID string, price int) error {
	if s.Resources.Currency < price {
		return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, itemID, price, s.Resources.Currency)
	}
	return nil
}
