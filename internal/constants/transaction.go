package constants

const (
	// Flag colors accepted by the budgeting service
	FlagRed    = "red"
	FlagOrange = "orange"
	FlagYellow = "yellow"
	FlagGreen  = "green"
	FlagBlue   = "blue"
	FlagPurple = "purple"

	DefaultQueuedColor = FlagBlue
	DefaultSyncedColor = FlagGreen

	// Date Layout
	DateFormat = "2006-01-02"

	// Amounts on the budgeting side are integer milliunits
	MilliunitsPerUnit = 1000

	// PATCH payload limit used by backfill
	BackfillBatchSize = 100

	SplitwiseCategoryName = "Splitwise"
)

var FlagColors = map[string]bool{
	FlagRed:    true,
	FlagOrange: true,
	FlagYellow: true,
	FlagGreen:  true,
	FlagBlue:   true,
	FlagPurple: true,
}
