package economy

// ==================== Error Messages ====================

// Formatted error messages for items
const (
	ErrMsgItemNotFoundFmt         = "%w: %s"
	ErrMsgItemNotFoundSuggestFmt  = "%w: %s (did you mean %q?)"
	ErrMsgItemNotInInventoryFmt   = "%w: %s"
	ErrMsgItemNotSellableFmt      = "%w: %s"
	ErrMsgItemNotBuyableFmt       = "item %s: %w"
	ErrMsgInsufficientFundsFmt    = "%w: %s costs %d, balance %d"
	ErrMsgDecorationOwnedFmt      = "%w: %s"
	ErrMsgDistrictNotFoundFmt     = "%w: %s"
	ErrMsgSeedNotEligibleFmt      = "%w: %s"
	ErrMsgInsufficientQuantityFmt = "%w: %s"
)

// ==================== Transaction Kinds ====================

// Purchase kinds reported on receipts and metrics labels
const (
	KindPlot       = "plot"
	KindTank       = "tank"
	KindDecoration = "decoration"
	KindItem       = "item"
)

// Transaction action types
const (
	ActionTypeSell    = "sell"
	ActionTypeSellAll = "sell_all"
	ActionTypeBuy     = "buy"
	ActionTypeFeed    = "feed"
)
