package battle

import "github.com/rs/zerolog"

const (
	// MinFrontUnits is the garrison that can never leave the origin territory.
	MinFrontUnits = 1
	MaxAttackDice = 3
	MaxDefendDice = 2
)

// Resolver plays out dice combat against a roller. Each round and traversal
// outcome is traced on the logger at debug level; pass zerolog.Nop() to
// silence it.
type Resolver struct {
	roller *Roller
	logger zerolog.Logger
}

func NewResolver(roller *Roller, logger zerolog.Logger) *Resolver {
	return &Resolver{roller: roller, logger: logger}
}

// ResolveRound plays a single exchange of dice. The attacker throws
// min(front-1, 3) dice, the defender min(enemy, 2); the sorted rolls are
// compared pairwise and the lower die loses a unit. Ties go to the defender.
func (r *Resolver) ResolveRound(front, enemy int) (attackerLosses, defenderLosses int) {
	attackDice := min(front-MinFrontUnits, MaxAttackDice)
	defendDice := min(enemy, MaxDefendDice)

	attackRolls := r.roller.Roll(attackDice)
	defendRolls := r.roller.Roll(defendDice)

	compared := min(attackDice, defendDice)
	for i := 0; i < compared; i++ {
		if attackRolls[i] > defendRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}

	r.logger.Debug().
		Int("front", front).
		Ints("attack_dice", attackRolls).
		Int("enemy", enemy).
		Ints("defend_dice", defendRolls).
		Int("front_losses", attackerLosses).
		Int("enemy_losses", defenderLosses).
		Msg("combat round")

	return attackerLosses, defenderLosses
}

// ResolveTerritory fights rounds until either the front is down to its
// garrison or the territory holds no defenders.
func (r *Resolver) ResolveTerritory(front int, t Territory) (remainingFront, remainingEnemy int) {
	enemy := t.Units
	for front > MinFrontUnits && enemy > 0 {
		attackerLosses, defenderLosses := r.ResolveRound(front, enemy)
		front -= attackerLosses
		enemy -= defenderLosses
	}
	return front, enemy
}

// ResolveVector assaults the vector's territories in order. A conquered
// territory keeps a one-unit garrison and the rest of the front advances; the
// first territory that holds ends the traversal.
func (r *Resolver) ResolveVector(v *AttackVector, bonus int) AttackResult {
	front := v.Front + bonus
	conquered := 0
	enemy := 0

	for _, t := range v.Territories {
		r.logger.Debug().
			Int("front", front).
			Int("enemy", t.Units).
			Msg("attacking territory")

		front, enemy = r.ResolveTerritory(front, t)
		if enemy > 0 {
			r.logger.Debug().
				Int("front", front).
				Int("enemy", enemy).
				Msg("assault failed")
			break
		}

		front -= MinFrontUnits
		conquered++
	}

	return AttackResult{Conquered: conquered, Front: front, EnemyFront: enemy}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
