package game

import "math"

const (
	// DrawerBonus is the flat score the drawer earns when someone
	// guesses their word. The round ends on the first correct guess,
	// so it is awarded at most once per round.
	DrawerBonus = 50

	// DrawerReward is the flat PRYSMS credit for the drawer.
	DrawerReward = 5
)

// GuessPoints maps remaining round time to guesser score: 500 at the
// instant the round starts, decaying by ~8.33/s to a floor of 100.
func GuessPoints(roundDuration, timeLeft int) int {
	elapsed := roundDuration - timeLeft
	points := 500 - int(math.Floor(float64(elapsed)*8.33))
	if points < 100 {
		points = 100
	}
	return points
}

// GuesserReward converts guesser points into the PRYSMS credit emitted
// toward the currency ledger.
func GuesserReward(points int) int {
	return points / 10
}
