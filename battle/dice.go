package battle

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"
)

const DiceSides = 6

// maxFairRoll is the largest multiple of DiceSides representable in a uint32.
// Raw draws at or above it would bias low faces through the modulo and are
// rejected.
const maxFairRoll = (math.MaxUint32 / DiceSides) * DiceSides

// Roller produces sorted dice rolls from an injected random source.
type Roller struct {
	rng *rand.Rand
}

func NewRoller(src rand.Source) *Roller {
	return &Roller{rng: rand.New(src)}
}

var seedSeq atomic.Uint64

// NewSeededRoller returns a roller seeded from the wall clock. Concurrent
// callers get distinct seeds even when the clock has not advanced.
func NewSeededRoller() *Roller {
	seed := uint64(time.Now().UnixNano()) + seedSeq.Add(1)*0x9e3779b97f4a7c15
	return NewRoller(rand.NewSource(seed))
}

// Roll returns count dice values in [1,6], sorted descending. Neither side of
// a combat ever throws more than three dice.
func (r *Roller) Roll(count int) []int {
	if count < 1 || count > MaxAttackDice {
		panic(fmt.Sprintf("dice count %d out of range [1,%d]", count, MaxAttackDice))
	}
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rollOne()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

func (r *Roller) rollOne() int {
	for {
		v := r.rng.Uint32()
		if v < maxFairRoll {
			return int(v%DiceSides) + 1
		}
	}
}
