package rules

// Reject is a rule-violation code returned to the submitting seat. All
// rejections are recoverable: state is unchanged and no other seat is
// notified.
type Reject string

func (r Reject) Error() string { return string(r) }

const (
	InvalidPhase     Reject = "InvalidPhase"
	NotYourTurn      Reject = "NotYourTurn"
	NotDealer        Reject = "NotDealer"
	WrongCardCount   Reject = "WrongCardCount"
	MustFollowSuit   Reject = "MustFollowSuit"
	MustExhaustSuit  Reject = "MustExhaustSuit"
	DeadStick        Reject = "DeadStick"
	InvalidStructure Reject = "InvalidStructure"
	UnknownCard      Reject = "UnknownCard"
	RoomFull         Reject = "RoomFull"
	InvalidSeat      Reject = "InvalidSeat"
	SeatTaken        Reject = "SeatTaken"
	NotSeated        Reject = "NotSeated"
	TooWeak          Reject = "DeclarationTooWeak"
)
