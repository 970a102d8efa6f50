package progress

import (
	"slices"

	"github.com/abhisek/quizdeck/internal/catalog"
)

// TopicStats aggregates attempt outcomes for one topic tag.
type TopicStats struct {
	Topic   string
	Correct int
	Total   int
}

// Accuracy is the topic's correct-to-attempt ratio, 0 with no attempts.
func (t TopicStats) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Stats is a derived snapshot over the full catalog and all progress
// records. It is recomputed on demand and never persisted.
type Stats struct {
	Total    int
	New      int
	Learning int
	Mastered int

	// Accuracy is overall correct/attempts across every record, 0 when
	// nothing has been attempted.
	Accuracy float64

	// Topics holds the per-topic breakdown in catalog encounter order.
	// A slice rather than a map so ranking ties stay deterministic.
	Topics []TopicStats
}

// CalculateStats walks the full catalog: questions without a record count
// as new, and questions with one are bucketed by the record's stored
// mastery tag. Only questions with both a record and a topic contribute to
// the topic breakdown.
func CalculateStats(records map[string]Record, cat []catalog.Question) Stats {
	stats := Stats{Total: len(cat)}

	var totalCorrect, totalAttempts int
	topicIndex := make(map[string]int)

	for _, q := range cat {
		rec, ok := records[q.ID]
		if !ok {
			stats.New++
			continue
		}

		switch rec.Mastery {
		case MasteryLearning:
			stats.Learning++
		case MasteryMastered:
			stats.Mastered++
		default:
			stats.New++
		}

		totalCorrect += rec.CorrectCount
		totalAttempts += rec.Attempts

		if q.Topic == "" {
			continue
		}
		i, seen := topicIndex[q.Topic]
		if !seen {
			i = len(stats.Topics)
			topicIndex[q.Topic] = i
			stats.Topics = append(stats.Topics, TopicStats{Topic: q.Topic})
		}
		stats.Topics[i].Correct += rec.CorrectCount
		stats.Topics[i].Total += rec.Attempts
	}

	if totalAttempts > 0 {
		stats.Accuracy = float64(totalCorrect) / float64(totalAttempts)
	}
	return stats
}

// QuestionsNeedingReview returns catalog questions that are not yet
// mastered, in catalog order. Questions with no record at all need review.
func QuestionsNeedingReview(cat []catalog.Question, records map[string]Record) []catalog.Question {
	var due []catalog.Question
	for _, q := range cat {
		rec, ok := records[q.ID]
		if !ok || rec.Mastery != MasteryMastered {
			due = append(due, q)
		}
	}
	return due
}

// DefaultWeakTopicLimit bounds how many weak topics are surfaced.
const DefaultWeakTopicLimit = 3

// WeakestTopics ranks attempted topics by ascending accuracy and returns up
// to limit topic names. Topics with zero attempts are excluded entirely;
// ties keep their breakdown order. A non-positive limit means the default.
func WeakestTopics(stats Stats, limit int) []string {
	if limit <= 0 {
		limit = DefaultWeakTopicLimit
	}

	attempted := make([]TopicStats, 0, len(stats.Topics))
	for _, t := range stats.Topics {
		if t.Total > 0 {
			attempted = append(attempted, t)
		}
	}

	slices.SortStableFunc(attempted, func(a, b TopicStats) int {
		switch da, db := a.Accuracy(), b.Accuracy(); {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})

	if len(attempted) > limit {
		attempted = attempted[:limit]
	}
	names := make([]string, len(attempted))
	for i, t := range attempted {
		names[i] = t.Topic
	}
	return names
}
