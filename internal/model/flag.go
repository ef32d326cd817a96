package model

type FlagState int

const (
	FlagNone FlagState = iota
	FlagQueued
	FlagSynced
	FlagOther
)

func (s FlagState) String() string {
	switch s {
	case FlagNone:
		return "none"
	case FlagQueued:
		return "queued"
	case FlagSynced:
		return "synced"
	default:
		return "other"
	}
}

// FlagScheme maps the two configured flag colors onto sync states.
type FlagScheme struct {
	Queued string
	Synced string
}

func (f FlagScheme) Classify(color string) FlagState {
	switch color {
	case "":
		return FlagNone
	case f.Queued:
		return FlagQueued
	case f.Synced:
		return FlagSynced
	default:
		return FlagOther
	}
}

// State classifies the transaction's flag color under the scheme.
func (f FlagScheme) State(t Transaction) FlagState {
	return f.Classify(t.FlagColor)
}

// NeedsBackfill reports whether t was synced before splitting existed.
func (f FlagScheme) NeedsBackfill(t Transaction) bool {
	return !t.Deleted && f.State(t) == FlagSynced && !t.IsSplit()
}
