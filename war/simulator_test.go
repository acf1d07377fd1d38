package war

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"warplan/battle"
	"warplan/forecast"
)

func TestSimulateReportsInInputOrder(t *testing.T) {
	vectors := []*battle.AttackVector{
		mustVector(t, "5:0"),    // certain win, no combat
		mustVector(t, "1:3"),    // a lone garrison cannot attack
		mustVector(t, "5:0,0"),  // certain win across two territories
	}
	predictor := forecast.NewPredictor(forecast.WithWorkers(2))

	predictions := Simulate(predictor, vectors, 0, 100)

	require.Len(t, predictions, 3)

	require.Equal(t, 100, predictions[0].Wins)
	require.Equal(t, 4.0, predictions[0].MeanFrontIfWin)

	require.Equal(t, 100, predictions[1].Losses)
	require.Equal(t, 3.0, predictions[1].MeanEnemiesIfLoss)
	require.True(t, math.IsNaN(predictions[1].MeanFrontIfWin))

	require.Equal(t, 100, predictions[2].Wins)
	require.Equal(t, 3.0, predictions[2].MeanFrontIfWin)
}
