package battle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestRoller(seed uint64) *Roller {
	return NewRoller(rand.NewSource(seed))
}

func TestRollCountRangeOrder(t *testing.T) {
	roller := newTestRoller(1)

	for _, count := range []int{1, 2, 3} {
		for i := 0; i < 1000; i++ {
			rolls := roller.Roll(count)

			require.Len(t, rolls, count)
			for j, value := range rolls {
				require.GreaterOrEqual(t, value, 1)
				require.LessOrEqual(t, value, DiceSides)
				if j > 0 {
					require.LessOrEqual(t, value, rolls[j-1],
						"rolls should be sorted descending")
				}
			}
		}
	}
}

func TestRollDeterministicWithSeededSource(t *testing.T) {
	first := newTestRoller(42)
	second := newTestRoller(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, first.Roll(3), second.Roll(3),
			"identical seeds should produce identical streams")
	}
}

func TestRollFaceFrequencies(t *testing.T) {
	roller := newTestRoller(7)

	const draws = 60000
	counts := make([]int, DiceSides+1)
	for i := 0; i < draws; i++ {
		counts[roller.Roll(1)[0]]++
	}

	expected := float64(draws) / DiceSides
	for face := 1; face <= DiceSides; face++ {
		require.InDelta(t, expected, float64(counts[face]), expected/10,
			"face %d should appear with uniform frequency", face)
	}
}

func TestRollRejectsBadCount(t *testing.T) {
	roller := newTestRoller(1)

	require.Panics(t, func() { roller.Roll(0) })
	require.Panics(t, func() { roller.Roll(MaxAttackDice + 1) })
}
