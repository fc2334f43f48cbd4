package extraction

import (
	"strings"

	"github.com/labelcheck/labelcheck/constants"
)

// DetectBeverageType guesses the beverage category from keyword hits in the
// combined label text. A winner is declared only when it beats the runner-up
// by at least one hit and has a non-zero count; anything closer returns
// Undetermined and the caller must fall back to an external classification.
func DetectBeverageType(fullText string) constants.BeverageType {
	text := strings.ToLower(fullText)

	winner := constants.Undetermined
	winnerHits, runnerUpHits := 0, 0
	for _, bt := range []constants.BeverageType{constants.Wine, constants.DistilledSpirits, constants.MaltBeverage} {
		hits := keywordHits(text, constants.BeverageKeywords[bt])
		switch {
		case hits > winnerHits:
			runnerUpHits = winnerHits
			winnerHits = hits
			winner = bt
		case hits > runnerUpHits:
			runnerUpHits = hits
		}
	}

	if winnerHits == 0 || winnerHits-runnerUpHits < 1 {
		return constants.Undetermined
	}
	return winner
}
