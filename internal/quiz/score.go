package quiz

import "math"

// Mode identifies the kind of practice run.
type Mode string

const (
	ModeQuiz      Mode = "quiz"
	ModeFlashcard Mode = "flashcard"
	ModeTimed     Mode = "timed"
)

// ParseMode parses a persisted mode string. Unknown values fall back to
// ModeQuiz.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeQuiz, ModeFlashcard, ModeTimed:
		return Mode(s), true
	}
	return ModeQuiz, false
}

// maxTimeBonus is the cap on extra points awarded in timed mode. The bonus
// shrinks by one point per second of average time per question, reaching
// zero at a 20-second average.
const maxTimeBonus = 20

// CalculateScore computes the session score as a rounded percentage, with a
// time bonus added before rounding in timed mode. The bonus never goes
// negative, so slow timed runs score exactly the base percentage; fast ones
// can exceed 100.
//
// total must be positive. Callers record at least one answer before
// scoring, so a zero total is a contract violation, not a recoverable case.
func CalculateScore(correct, total int, elapsedSeconds float64, mode Mode) int {
	base := 100 * float64(correct) / float64(total)
	if mode != ModeTimed {
		return int(math.Round(base))
	}

	bonus := maxTimeBonus - elapsedSeconds/float64(total)
	if bonus < 0 {
		bonus = 0
	}
	return int(math.Round(base + bonus))
}
