package battle

import (
	"fmt"
	"strconv"
	"strings"
)

// Territory is a single enemy-held position.
type Territory struct {
	Units int
}

// AttackVector is an origin front-line unit count plus an ordered chain of
// enemy territories to be assaulted in sequence.
type AttackVector struct {
	Spec        string // original definition string, kept for display
	Front       int
	Territories []Territory
}

// AttackResult is the outcome of one simulated traversal of an attack vector.
type AttackResult struct {
	Conquered  int // territories fully taken before the assault stopped
	Front      int // attacker units remaining on the front line
	EnemyFront int // defenders left on the last attempted territory, 0 on a win
}

// ParseVector parses a definition string of the form "front:units,units,...",
// e.g. "10:3,2,99": ten units on the front attacking territories holding
// three, two and ninety-nine defenders in that order.
func ParseVector(spec string) (*AttackVector, error) {
	head, tail, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("attack vector %q: missing ':' separator", spec)
	}

	front, err := strconv.Atoi(head)
	if err != nil || front < 1 {
		return nil, fmt.Errorf("attack vector %q: front units must be a positive integer", spec)
	}

	fields := strings.Split(tail, ",")
	territories := make([]Territory, 0, len(fields))
	for _, field := range fields {
		units, err := strconv.Atoi(field)
		if err != nil || units < 0 {
			return nil, fmt.Errorf("attack vector %q: territory units %q must be a non-negative integer", spec, field)
		}
		territories = append(territories, Territory{Units: units})
	}

	return &AttackVector{Spec: spec, Front: front, Territories: territories}, nil
}
