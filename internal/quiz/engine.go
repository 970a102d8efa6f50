package quiz

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
)

// Config controls question selection for a practice run.
type Config struct {
	// Grade filters the catalog by grade band. GradeAll (or the zero
	// value) selects every band.
	Grade catalog.Grade

	// Topic filters by exact topic tag. Empty means no topic filter.
	Topic string

	// Count truncates the shuffled set. Zero means all filtered questions.
	Count int

	// Rand is the randomness source for shuffling. Nil uses the process
	// global source. Shuffle output is a uniform permutation either way.
	Rand *rand.Rand
}

// SelectQuestions filters the catalog by grade band and topic, shuffles the
// result, and truncates it to the requested count. The input catalog is
// never mutated. An empty result from over-restrictive filters is valid.
func SelectQuestions(cat []catalog.Question, cfg Config) []catalog.Question {
	selected := make([]catalog.Question, 0, len(cat))
	for _, q := range cat {
		if cfg.Grade != "" && cfg.Grade != catalog.GradeAll && q.Grade != cfg.Grade {
			continue
		}
		if cfg.Topic != "" && q.Topic != cfg.Topic {
			continue
		}
		selected = append(selected, q)
	}

	swap := func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	}
	if cfg.Rand != nil {
		cfg.Rand.Shuffle(len(selected), swap)
	} else {
		rand.Shuffle(len(selected), swap)
	}

	if cfg.Count > 0 && cfg.Count < len(selected) {
		selected = selected[:cfg.Count]
	}
	return selected
}

// CheckAnswer reports whether the supplied choice key is the correct one.
func CheckAnswer(q catalog.Question, key string) bool {
	return key == q.Correct
}

// NextQuestion returns the question at index. The second return is false
// past the end of the set; running out of questions is a normal outcome,
// not an error.
func NextQuestion(qs []catalog.Question, index int) (catalog.Question, bool) {
	if index < 0 || index >= len(qs) {
		return catalog.Question{}, false
	}
	return qs[index], true
}

// IsComplete reports whether the run has moved past its last question.
func IsComplete(index, total int) bool {
	return index >= total
}

// Topics returns the distinct topic tags present in qs, sorted for stable
// display order. Questions without a topic are excluded.
func Topics(qs []catalog.Question) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, q := range qs {
		if q.Topic == "" || seen[q.Topic] {
			continue
		}
		seen[q.Topic] = true
		topics = append(topics, q.Topic)
	}
	slices.Sort(topics)
	return topics
}

// SortByMasteryPriority orders questions weakest-first: new before learning
// before mastered. A question absent from the mastery mapping counts as
// new. The sort is stable, so ties keep their original relative order, and
// the input slice is left untouched.
func SortByMasteryPriority(qs []catalog.Question, masteryByID map[string]progress.Mastery) []catalog.Question {
	rank := func(q catalog.Question) int {
		switch masteryByID[q.ID] {
		case progress.MasteryLearning:
			return 1
		case progress.MasteryMastered:
			return 2
		default:
			return 0
		}
	}

	sorted := slices.Clone(qs)
	slices.SortStableFunc(sorted, func(a, b catalog.Question) int {
		return rank(a) - rank(b)
	})
	return sorted
}
