package war

import (
	"warplan/battle"
	"warplan/forecast"
)

// Simulate runs the predictor against each attack vector independently with
// the same bonus and returns one prediction per vector, in input order. No
// scoring or selection happens here.
func Simulate(predictor *forecast.Predictor, vectors []*battle.AttackVector, bonus, iterations int) []forecast.Prediction {
	predictions := make([]forecast.Prediction, len(vectors))
	for i, v := range vectors {
		predictions[i] = predictor.Predict(v, bonus, iterations)
	}
	return predictions
}
