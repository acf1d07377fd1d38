package forecast

import (
	"sync"

	"github.com/rs/zerolog"

	"warplan/battle"
	"warplan/forecast/metrics"
)

// Prediction aggregates win/loss statistics over N independent simulations of
// one attack vector at a fixed bonus level.
//
// The mean fields are conditioned on an outcome: a field whose outcome never
// occurred is NaN, not zero. Check Wins or Losses before reading them.
type Prediction struct {
	Wins   int
	Losses int

	WinLikelihood         float64
	MeanFrontIfWin        float64
	MeanEnemiesIfLoss     float64
	MeanTerritoriesIfLoss float64
}

type Option func(p *Predictor)

// Predictor estimates assault outcomes by Monte Carlo simulation.
type Predictor struct {
	workers   int
	logger    zerolog.Logger
	collector metrics.Collector
}

func WithWorkers(workers int) Option {
	return func(p *Predictor) {
		if workers > 0 {
			p.workers = workers
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Predictor) {
		p.logger = logger
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(p *Predictor) {
		if collector != nil {
			p.collector = collector
		}
	}
}

func NewPredictor(options ...Option) *Predictor {
	p := &Predictor{ // Default values
		workers:   1,
		logger:    zerolog.Nop(),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Predict resolves the vector iterations times at the given bonus level and
// aggregates the outcomes. Runs are fully independent: each worker owns its
// own dice stream, territories start from their original defender counts every
// run, and per-worker tallies merge only after the pool drains.
func (p *Predictor) Predict(v *battle.AttackVector, bonus, iterations int) Prediction {
	p.collector.Start(p.workers, iterations)

	task := make(chan struct{}, iterations)
	for i := 0; i < iterations; i++ {
		task <- struct{}{}
	}
	close(task)

	tallies := make([]tally, p.workers)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(local *tally) {
			defer wg.Done()

			resolver := battle.NewResolver(battle.NewSeededRoller(), p.logger)
			for range task {
				p.logger.Debug().
					Str("vector", v.Spec).
					Int("bonus", bonus).
					Msg("beginning simulation")

				local.record(v, resolver.ResolveVector(v, bonus))
				p.collector.AddSimulation()
			}
		}(&tallies[w])
	}
	wg.Wait()

	var total tally
	for i := range tallies {
		total.merge(&tallies[i])
	}
	p.collector.Complete()

	return total.prediction()
}

// tally accumulates raw counters for one worker.
type tally struct {
	wins              int
	losses            int
	frontOnWin        int
	enemiesOnLoss     int
	territoriesOnLoss int
}

func (t *tally) record(v *battle.AttackVector, result battle.AttackResult) {
	if result.EnemyFront == 0 {
		t.wins++
		t.frontOnWin += result.Front
		return
	}

	// The territory that stopped the assault counts as remaining, with its
	// surviving defenders; territories never reached keep their full counts.
	enemies := result.EnemyFront
	for _, territory := range v.Territories[result.Conquered+1:] {
		enemies += territory.Units
	}

	t.losses++
	t.enemiesOnLoss += enemies
	t.territoriesOnLoss += len(v.Territories) - result.Conquered
}

func (t *tally) merge(other *tally) {
	t.wins += other.wins
	t.losses += other.losses
	t.frontOnWin += other.frontOnWin
	t.enemiesOnLoss += other.enemiesOnLoss
	t.territoriesOnLoss += other.territoriesOnLoss
}

// prediction derives the conditioned statistics. Zero denominators yield NaN
// on purpose.
func (t *tally) prediction() Prediction {
	return Prediction{
		Wins:                  t.wins,
		Losses:                t.losses,
		WinLikelihood:         float64(t.wins) / float64(t.wins+t.losses),
		MeanFrontIfWin:        float64(t.frontOnWin) / float64(t.wins),
		MeanEnemiesIfLoss:     float64(t.enemiesOnLoss) / float64(t.losses),
		MeanTerritoriesIfLoss: float64(t.territoriesOnLoss) / float64(t.losses),
	}
}
