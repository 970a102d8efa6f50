package progress

import (
	"reflect"
	"testing"

	"github.com/abhisek/quizdeck/internal/catalog"
)

func statsCatalog() []catalog.Question {
	return []catalog.Question{
		{ID: "w1", Topic: "wind"},
		{ID: "w2", Topic: "wind"},
		{ID: "r1", Topic: "rain"},
		{ID: "s1", Topic: "sun"},
		{ID: "n1"}, // no topic
	}
}

func record(id string, attempts, correct int) Record {
	return Record{
		QuestionID:     id,
		Attempts:       attempts,
		CorrectCount:   correct,
		IncorrectCount: attempts - correct,
		Mastery:        Classify(attempts, correct),
	}
}

func TestCalculateStats_Buckets(t *testing.T) {
	records := map[string]Record{
		"w1": record("w1", 5, 4), // mastered
		"w2": record("w2", 3, 1), // learning
		"n1": record("n1", 1, 1), // new
	}

	stats := CalculateStats(records, statsCatalog())

	if stats.Total != 5 {
		t.Errorf("total = %d, want 5", stats.Total)
	}
	// r1 and s1 have no record and count as new alongside n1.
	if stats.New != 3 || stats.Learning != 1 || stats.Mastered != 1 {
		t.Errorf("buckets new/learning/mastered = %d/%d/%d, want 3/1/1",
			stats.New, stats.Learning, stats.Mastered)
	}
}

func TestCalculateStats_TrustsStoredMastery(t *testing.T) {
	// The stored tag wins even when it disagrees with the counts.
	rec := record("w1", 5, 5)
	rec.Mastery = MasteryLearning

	stats := CalculateStats(map[string]Record{"w1": rec}, statsCatalog())
	if stats.Learning != 1 || stats.Mastered != 0 {
		t.Errorf("expected stored tag to be trusted: %+v", stats)
	}
}

func TestCalculateStats_TopicBreakdown(t *testing.T) {
	records := map[string]Record{
		"w1": record("w1", 5, 4),
		"w2": record("w2", 5, 3),
		"r1": record("r1", 2, 2),
		"n1": record("n1", 4, 1), // topicless: excluded from breakdown
	}

	stats := CalculateStats(records, statsCatalog())

	want := []TopicStats{
		{Topic: "wind", Correct: 7, Total: 10},
		{Topic: "rain", Correct: 2, Total: 2},
	}
	if !reflect.DeepEqual(stats.Topics, want) {
		t.Errorf("topic breakdown = %+v, want %+v", stats.Topics, want)
	}
}

func TestCalculateStats_OverallAccuracy(t *testing.T) {
	records := map[string]Record{
		"w1": record("w1", 4, 3),
		"r1": record("r1", 6, 2),
	}
	stats := CalculateStats(records, statsCatalog())
	if want := 0.5; stats.Accuracy != want {
		t.Errorf("accuracy = %v, want %v", stats.Accuracy, want)
	}
}

func TestCalculateStats_NoAttemptsMeansZeroAccuracy(t *testing.T) {
	stats := CalculateStats(map[string]Record{}, statsCatalog())
	if stats.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0", stats.Accuracy)
	}
	if stats.New != 5 {
		t.Errorf("new = %d, want 5", stats.New)
	}
}

func TestQuestionsNeedingReview(t *testing.T) {
	records := map[string]Record{
		"w1": record("w1", 5, 5), // mastered: excluded
		"w2": record("w2", 3, 1), // learning
		"r1": record("r1", 1, 0), // new by counts
	}

	due := QuestionsNeedingReview(statsCatalog(), records)

	var got []string
	for _, q := range due {
		got = append(got, q.ID)
	}
	// Catalog order preserved; s1 and n1 have no record at all.
	want := []string{"w2", "r1", "s1", "n1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("review set = %v, want %v", got, want)
	}
}

func TestWeakestTopics_RanksAscendingByAccuracy(t *testing.T) {
	stats := Stats{Topics: []TopicStats{
		{Topic: "wind", Correct: 7, Total: 10},  // 0.70
		{Topic: "rain", Correct: 1, Total: 4},   // 0.25
		{Topic: "sun", Correct: 9, Total: 10},   // 0.90
		{Topic: "soil", Correct: 0, Total: 0},   // excluded
		{Topic: "light", Correct: 2, Total: 8},  // 0.25, tie with rain
	}}

	got := WeakestTopics(stats, 0)
	// Default limit 3; rain before light on the insertion-order tiebreak.
	want := []string{"rain", "light", "wind"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weakest topics = %v, want %v", got, want)
	}
}

func TestWeakestTopics_ExcludesUnattempted(t *testing.T) {
	stats := Stats{Topics: []TopicStats{
		{Topic: "soil", Correct: 0, Total: 0},
		{Topic: "wind", Correct: 0, Total: 2},
	}}

	got := WeakestTopics(stats, 5)
	if !reflect.DeepEqual(got, []string{"wind"}) {
		t.Errorf("weakest topics = %v, want [wind]", got)
	}
}

func TestWeakestTopics_Limit(t *testing.T) {
	stats := Stats{Topics: []TopicStats{
		{Topic: "a", Correct: 1, Total: 2},
		{Topic: "b", Correct: 1, Total: 3},
		{Topic: "c", Correct: 1, Total: 4},
	}}

	got := WeakestTopics(stats, 2)
	if !reflect.DeepEqual(got, []string{"c", "b"}) {
		t.Errorf("weakest topics = %v, want [c b]", got)
	}
}
