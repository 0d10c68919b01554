package search_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestAllocateTimeUsesDefaultMovesToGo(t *testing.T) {
	tc := search.TimeControl{Remaining: 40 * time.Second, Increment: 0}
	got := search.AllocateTime(tc)
	// 40s / 40 movestogo - 50ms margin = 950ms.
	assert.Equal(t, 950*time.Millisecond, got)
}

func TestAllocateTimeAddsThreeQuartersIncrement(t *testing.T) {
	tc := search.TimeControl{Remaining: 40 * time.Second, Increment: 4 * time.Second, MovesToGo: 40}
	got := search.AllocateTime(tc)
	// 1s base + 3s increment - 50ms margin = 3.95s.
	assert.Equal(t, 3950*time.Millisecond, got)
}

func TestAllocateTimeCapsAtTenPercentOfRemaining(t *testing.T) {
	tc := search.TimeControl{Remaining: 10 * time.Second, Increment: 10 * time.Second, MovesToGo: 2}
	got := search.AllocateTime(tc)
	// base would be 5s + 7.5s = 12.5s, capped at 1s, minus 50ms margin = 950ms.
	assert.Equal(t, 950*time.Millisecond, got)
}

func TestAllocateTimeNeverNegative(t *testing.T) {
	tc := search.TimeControl{Remaining: 10 * time.Millisecond, MovesToGo: 40}
	got := search.AllocateTime(tc)
	assert.GreaterOrEqual(t, got, time.Duration(0))
}

func TestTimeControlString(t *testing.T) {
	tc := search.TimeControl{Remaining: time.Second, Increment: 0, MovesToGo: 30}
	assert.Contains(t, tc.String(), "movestogo=30")

	tc2 := search.TimeControl{Remaining: time.Second}
	assert.NotContains(t, tc2.String(), "movestogo")
}
