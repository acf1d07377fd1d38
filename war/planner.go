package war

import (
	"sort"

	"github.com/rs/zerolog"

	"warplan/battle"
	"warplan/forecast"
	"warplan/forecast/metrics"
)

type PlannerOption func(p *Planner)

// Planner searches for the allocation of a bonus-unit pool across attack
// vectors that maximizes the summed threshold-gated win likelihood.
type Planner struct {
	predictor  *forecast.Predictor
	iterations int
	threshold  float64
	logger     zerolog.Logger
	writer     *metrics.Writer
}

func WithLogger(logger zerolog.Logger) PlannerOption {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithGridWriter exports the precomputed setup grid through the writer after
// phase A completes.
func WithGridWriter(writer *metrics.Writer) PlannerOption {
	return func(p *Planner) {
		p.writer = writer
	}
}

func NewPlanner(predictor *forecast.Predictor, iterations int, threshold float64, options ...PlannerOption) *Planner {
	p := &Planner{
		predictor:  predictor,
		iterations: iterations,
		threshold:  threshold,
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Plan precomputes a setup for every (vector, bonus) pair, then enumerates
// every way of splitting totalBonus across the vectors and returns the highest
// scoring allocation. Vectors must be non-empty and pre-validated; totalBonus
// must be positive.
//
// Enumeration order is not monotonic in score, so every admissible allocation
// is buffered and ranked afterwards. Ties may resolve in either order.
func (p *Planner) Plan(vectors []*battle.AttackVector, totalBonus int) *Plan {
	setups := p.precompute(vectors, totalBonus)

	var plans []Plan
	combos := newCombinations(len(vectors), totalBonus)
	for digits, ok := combos.next(); ok; digits, ok = combos.next() {
		total := 0
		for _, bonus := range digits {
			total += bonus
		}
		if total != totalBonus {
			continue
		}

		plan := Plan{Setups: make([]*Setup, len(vectors))}
		for i, bonus := range digits {
			setup := setups[i][bonus]
			plan.Setups[i] = setup
			plan.TotalScore += setup.Score
		}
		plans = append(plans, plan)
	}

	p.logger.Info().
		Int("vectors", len(vectors)).
		Int("bonus", totalBonus).
		Int("plans", len(plans)).
		Msg("enumerated admissible plans")

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].TotalScore > plans[j].TotalScore
	})

	best := plans[0]
	return &best
}

// precompute runs phase A: one prediction per (vector, bonus) cell. This is
// the dominant cost of planning, V*(totalBonus+1) predictor runs.
func (p *Planner) precompute(vectors []*battle.AttackVector, totalBonus int) [][]*Setup {
	setups := make([][]*Setup, len(vectors))
	records := make([]metrics.SetupRecord, 0, len(vectors)*(totalBonus+1))

	for i, v := range vectors {
		setups[i] = make([]*Setup, totalBonus+1)
		for bonus := 0; bonus <= totalBonus; bonus++ {
			prediction := p.predictor.Predict(v, bonus, p.iterations)

			// A NaN likelihood (no decided outcomes) never clears the gate.
			score := 0.0
			if prediction.WinLikelihood >= p.threshold {
				score = prediction.WinLikelihood
			}

			setups[i][bonus] = &Setup{
				Vector:     v,
				Bonus:      bonus,
				Prediction: prediction,
				Score:      score,
			}
			records = append(records, metrics.SetupRecord{
				Vector:        v.Spec,
				Bonus:         bonus,
				Wins:          prediction.Wins,
				Losses:        prediction.Losses,
				WinLikelihood: prediction.WinLikelihood,
				Score:         score,
			})
		}
	}

	if p.writer != nil {
		if err := p.writer.WriteSetupGrid(records); err != nil {
			p.logger.Warn().Err(err).Msg("failed to export setup grid")
		}
	}

	return setups
}
