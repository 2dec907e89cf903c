package checkout

// Status is the state of an order workflow.
type Status string

const (
	StatusCollectingShipping Status = "COLLECTING_SHIPPING"
	StatusReviewing          Status = "REVIEWING"
	StatusConfirmed          Status = "CONFIRMED"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed
}

func (s Status) String() string {
	return string(s)
}

// canTransitionTo encodes the legal transitions:
// CollectingShipping -> Reviewing -> Confirmed, with Reviewing allowed
// back to CollectingShipping. Confirmed is final.
func (s Status) canTransitionTo(next Status) bool {
	switch s {
	case StatusCollectingShipping:
		return next == StatusReviewing
	case StatusReviewing:
		return next == StatusConfirmed || next == StatusCollectingShipping
	default:
		return false
	}
}
