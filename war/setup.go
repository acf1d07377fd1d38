package war

import (
	"warplan/battle"
	"warplan/forecast"
)

// Setup is a candidate assignment of one bonus amount to one attack vector,
// carrying its prediction. Score is the win likelihood when it clears the
// planner's threshold and zero otherwise: a hard cutoff, not a penalty.
type Setup struct {
	Vector     *battle.AttackVector
	Bonus      int
	Prediction forecast.Prediction
	Score      float64
}

// Plan is one complete allocation: one setup per attack vector, with bonus
// amounts summing to the full pool, scored by the sum of its setups' scores.
type Plan struct {
	TotalScore float64
	Setups     []*Setup
}
