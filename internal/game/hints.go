package game

import (
	"math"
	"math/rand"

	"github.com/prysms/draw-backend/internal"
)

// HintMask builds the per-letter reveal mask for word. Spaces are always
// shown. fraction is the elapsed share of the round; floor(len·fraction)
// positions are revealed, capped at 75% of the word. Newly revealed
// positions are sampled without replacement and recorded in revealed, so
// a letter shown once stays shown on every later tick.
func HintMask(word string, fraction float64, revealed map[int]bool) []string {
	letters := []rune(word)
	if len(letters) == 0 {
		return []string{}
	}

	if fraction > internal.MaxHintReveal {
		fraction = internal.MaxHintReveal
	}
	if fraction < 0 {
		fraction = 0
	}
	target := int(math.Floor(float64(len(letters)) * fraction))

	hidden := make([]int, 0, len(letters))
	for i, r := range letters {
		if r != ' ' && !revealed[i] {
			hidden = append(hidden, i)
		}
	}
	shown := len(letters) - len(hidden)
	for _, r := range letters {
		if r == ' ' {
			shown-- // spaces do not count toward the reveal budget
		}
	}

	for shown < target && len(hidden) > 0 {
		j := rand.Intn(len(hidden))
		revealed[hidden[j]] = true
		hidden[j] = hidden[len(hidden)-1]
		hidden = hidden[:len(hidden)-1]
		shown++
	}

	mask := make([]string, len(letters))
	for i, r := range letters {
		switch {
		case r == ' ', revealed[i]:
			mask[i] = string(r)
		default:
			mask[i] = "_"
		}
	}
	return mask
}
