package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"warplan/battle"
	"warplan/forecast/metrics"
)

func TestPredictHeavyFavorite(t *testing.T) {
	v := &battle.AttackVector{
		Spec:        "20:1",
		Front:       20,
		Territories: []battle.Territory{{Units: 1}},
	}
	predictor := NewPredictor(WithWorkers(4))

	prediction := predictor.Predict(v, 0, 10000)

	require.Equal(t, 10000, prediction.Wins+prediction.Losses)
	require.GreaterOrEqual(t, prediction.WinLikelihood, 0.95,
		"20 units against a single defender should almost always win")
}

func TestPredictCertainWin(t *testing.T) {
	v := &battle.AttackVector{
		Spec:        "5:0",
		Front:       5,
		Territories: []battle.Territory{{Units: 0}},
	}
	predictor := NewPredictor(WithWorkers(2))

	prediction := predictor.Predict(v, 0, 100)

	require.Equal(t, 100, prediction.Wins)
	require.Equal(t, 0, prediction.Losses)
	require.Equal(t, 1.0, prediction.WinLikelihood)
	require.Equal(t, 4.0, prediction.MeanFrontIfWin)
	require.True(t, math.IsNaN(prediction.MeanEnemiesIfLoss),
		"loss-conditioned fields must be undefined without losses")
	require.True(t, math.IsNaN(prediction.MeanTerritoriesIfLoss))
}

func TestPredictCertainLoss(t *testing.T) {
	// A lone garrison cannot attack: every run fails on the first territory,
	// which still counts among the remaining ones.
	v := &battle.AttackVector{
		Spec:        "1:3,2",
		Front:       1,
		Territories: []battle.Territory{{Units: 3}, {Units: 2}},
	}
	predictor := NewPredictor(WithWorkers(2))

	prediction := predictor.Predict(v, 0, 100)

	require.Equal(t, 0, prediction.Wins)
	require.Equal(t, 100, prediction.Losses)
	require.Equal(t, 0.0, prediction.WinLikelihood)
	require.True(t, math.IsNaN(prediction.MeanFrontIfWin),
		"win-conditioned fields must be undefined without wins")
	require.Equal(t, 5.0, prediction.MeanEnemiesIfLoss)
	require.Equal(t, 2.0, prediction.MeanTerritoriesIfLoss)
}

func TestPredictZeroIterations(t *testing.T) {
	v := &battle.AttackVector{
		Spec:        "5:1",
		Front:       5,
		Territories: []battle.Territory{{Units: 1}},
	}
	predictor := NewPredictor()

	prediction := predictor.Predict(v, 0, 0)

	require.Equal(t, 0, prediction.Wins)
	require.Equal(t, 0, prediction.Losses)
	require.True(t, math.IsNaN(prediction.WinLikelihood))
}

func TestPredictRunToRunStability(t *testing.T) {
	v := &battle.AttackVector{
		Spec:        "10:3,3",
		Front:       10,
		Territories: []battle.Territory{{Units: 3}, {Units: 3}},
	}
	predictor := NewPredictor(WithWorkers(8))

	first := predictor.Predict(v, 0, 10000)
	second := predictor.Predict(v, 0, 10000)

	require.InDelta(t, first.WinLikelihood, second.WinLikelihood, 0.05,
		"repeated runs should agree within sampling noise")
}

func TestPredictCountsSimulations(t *testing.T) {
	v := &battle.AttackVector{
		Spec:        "5:1",
		Front:       5,
		Territories: []battle.Territory{{Units: 1}},
	}
	collector := metrics.NewCollector()
	predictor := NewPredictor(WithWorkers(4), WithCollector(collector))

	predictor.Predict(v, 0, 500)
	metric := collector.Complete()

	require.Equal(t, 4, metric.Workers)
	require.Equal(t, 500, metric.Iterations)
	require.Equal(t, 500, metric.Simulations)
}
