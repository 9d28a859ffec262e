package growth

// Error format strings
const (
	ErrFmtPlot = "%w: %s"
)
