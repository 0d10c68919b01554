package search

import (
	"fmt"
	"time"
)

// TimeControl carries the UCI "go" time parameters for one side, grounded on the
// teacher's searchctl.TimeControl.
type TimeControl struct {
	Remaining time.Duration
	Increment time.Duration
	MovesToGo int // 0 == unspecified, defaults to 40
}

func (t TimeControl) String() string {
	if t.MovesToGo > 0 {
		return fmt.Sprintf("remaining=%v increment=%v movestogo=%v", t.Remaining, t.Increment, t.MovesToGo)
	}
	return fmt.Sprintf("remaining=%v increment=%v", t.Remaining, t.Increment)
}

const (
	defaultMovesToGo = 40
	timeSafetyMargin = 50 * time.Millisecond
	timeCapFraction  = 10 // percent of remaining time
)

// AllocateTime converts a tournament time control into a single move-time budget, per
// spec §5: base = remaining/movestogo + 3/4*increment, capped at 10% of remaining,
// minus a 50ms safety margin. The result is never negative.
func AllocateTime(t TimeControl) time.Duration {
	movesToGo := t.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	base := t.Remaining/time.Duration(movesToGo) + 3*t.Increment/4

	capped := t.Remaining / timeCapFraction
	if base > capped {
		base = capped
	}

	base -= timeSafetyMargin
	if base < 0 {
		base = 0
	}
	return base
}
