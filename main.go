// Warplan estimates outcomes of Risk-style attack plans.
//
// With 0 bonus armies the attack vectors given on the command line are
// simulated and their estimated outcomes printed. With a non-zero bonus pool
// warplan searches every allocation of the pool across the vectors and prints
// the best looking course of action.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"warplan/battle"
	"warplan/config"
	"warplan/forecast"
	"warplan/forecast/metrics"
	"warplan/war"
)

const usage = `Usage: warplan [simulation iterations] [bonus units] [win threshold] [attack vectors]

Attack vectors are formatted as: [units on front]:[enemy territory 1 units],[enemy territory n units]

Examples:

	Just simulate a single attack vector, no planning:
		warplan 1000 0 0 7:3,3,1

	Simulate multiple attack vectors, no planning:
		warplan 1000 0 0 7:1,1,2 4:5,1

	Given 10 bonus armies, plan an attack across multiple vectors requiring a win likelihood of 0.8:
		warplan 1000 10 0.8 3:2,2 4:1,1,1,1 2:2,1,2
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		abort(err.Error())
	}

	level := zerolog.InfoLevel
	if cfg.Debug() {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	args := os.Args[1:]
	if len(args) < 4 {
		fmt.Print(usage)
		os.Exit(1)
	}

	iterations, err := strconv.Atoi(args[0])
	if err != nil || iterations < 1 {
		abort("simulation iterations must be a positive integer")
	}
	bonus, err := strconv.Atoi(args[1])
	if err != nil || bonus < 0 {
		abort("bonus units must be a non-negative integer")
	}
	threshold, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		abort("win threshold must be a number")
	}

	vectors := make([]*battle.AttackVector, 0, len(args[3:]))
	for _, spec := range args[3:] {
		v, err := battle.ParseVector(spec)
		if err != nil {
			abort(err.Error())
		}
		vectors = append(vectors, v)
	}

	predictor := forecast.NewPredictor(
		forecast.WithWorkers(cfg.Workers),
		forecast.WithLogger(logger),
	)

	if bonus == 0 {
		fmt.Println("Simulating war and printing predictions")
		for i, prediction := range war.Simulate(predictor, vectors, 0, iterations) {
			fmt.Println()
			printPrediction(vectors[i].Spec, prediction)
		}
		return
	}

	fmt.Println("Planning war for the specified vectors")

	options := []war.PlannerOption{war.WithLogger(logger)}
	if cfg.MetricsDir != "" {
		writer, err := metrics.NewWriter(cfg.MetricsDir)
		if err != nil {
			abort(err.Error())
		}
		options = append(options, war.WithGridWriter(writer))
	}

	planner := war.NewPlanner(predictor, iterations, threshold, options...)
	best := planner.Plan(vectors, bonus)

	fmt.Println("\nHighest scoring setup:")
	for _, setup := range best.Setups {
		fmt.Printf("\n%d bonus armies to attack vector '%s'\n", setup.Bonus, setup.Vector.Spec)
		printPrediction(setup.Vector.Spec, setup.Prediction)
	}
}

func printPrediction(spec string, p forecast.Prediction) {
	fmt.Printf("Attack vector '%s' prediction\n", spec)
	fmt.Printf("\tWin count: %d Loss count: %d\n", p.Wins, p.Losses)

	if p.Wins > 0 {
		fmt.Printf("\tWin likelihood: %.2f with %.2f units remaining\n",
			p.WinLikelihood, p.MeanFrontIfWin)
	} else {
		fmt.Printf("\tWin likelihood: 0, no simulated attack succeeded\n")
	}

	if p.Losses > 0 {
		fmt.Printf("\t\tIf lost, %.2f territories remain with %.2f enemies in total\n",
			p.MeanTerritoriesIfLoss, p.MeanEnemiesIfLoss)
	}
}

func abort(reason string) {
	fmt.Fprintf(os.Stderr, "Aborting: %s\n", reason)
	os.Exit(1)
}
