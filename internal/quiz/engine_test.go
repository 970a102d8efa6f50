package quiz

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
)

func testCatalog() []catalog.Question {
	return []catalog.Question{
		{ID: "q1", Grade: catalog.GradeElementary, Prompt: "One?", Choices: fourChoices(), Correct: "a", Topic: "wind"},
		{ID: "q2", Grade: catalog.GradeElementary, Prompt: "Two?", Choices: fourChoices(), Correct: "b", Topic: "rain"},
		{ID: "q3", Grade: catalog.GradeMiddle, Prompt: "Three?", Choices: fourChoices(), Correct: "c", Topic: "wind"},
		{ID: "q4", Grade: catalog.GradeMiddle, Prompt: "Four?", Choices: fourChoices(), Correct: "d"},
		{ID: "q5", Grade: catalog.GradeHigh, Prompt: "Five?", Choices: fourChoices(), Correct: "a", Topic: "sun"},
	}
}

func fourChoices() map[string]string {
	return map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"}
}

func ids(qs []catalog.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func sortedIDs(qs []catalog.Question) []string {
	out := ids(qs)
	slices.Sort(out)
	return out
}

func TestSelectQuestions_GradeFilter(t *testing.T) {
	got := SelectQuestions(testCatalog(), Config{Grade: catalog.GradeMiddle})
	want := []string{"q3", "q4"}
	if !reflect.DeepEqual(sortedIDs(got), want) {
		t.Errorf("grade filter: got %v, want %v", sortedIDs(got), want)
	}
}

func TestSelectQuestions_TopicFilter(t *testing.T) {
	got := SelectQuestions(testCatalog(), Config{Topic: "wind"})
	want := []string{"q1", "q3"}
	if !reflect.DeepEqual(sortedIDs(got), want) {
		t.Errorf("topic filter: got %v, want %v", sortedIDs(got), want)
	}
}

func TestSelectQuestions_CombinedFilters(t *testing.T) {
	got := SelectQuestions(testCatalog(), Config{Grade: catalog.GradeElementary, Topic: "wind"})
	if len(got) != 1 || got[0].ID != "q1" {
		t.Errorf("combined filters: got %v, want [q1]", ids(got))
	}
}

func TestSelectQuestions_GradeAllMeansNoFilter(t *testing.T) {
	for _, grade := range []catalog.Grade{"", catalog.GradeAll} {
		got := SelectQuestions(testCatalog(), Config{Grade: grade})
		if len(got) != 5 {
			t.Errorf("grade %q: got %d questions, want 5", grade, len(got))
		}
	}
}

func TestSelectQuestions_CountTruncates(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero means all", 0, 5},
		{"smaller than set", 3, 3},
		{"larger than set", 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectQuestions(testCatalog(), Config{Count: tt.count})
			if len(got) != tt.want {
				t.Errorf("count=%d: got %d questions, want %d", tt.count, len(got), tt.want)
			}
		})
	}
}

func TestSelectQuestions_OutputIsPermutationOfFiltered(t *testing.T) {
	cat := testCatalog()
	r := rand.New(rand.NewPCG(7, 11))
	got := SelectQuestions(cat, Config{Rand: r})
	if !reflect.DeepEqual(sortedIDs(got), sortedIDs(cat)) {
		t.Errorf("output is not a permutation of the input: got %v", sortedIDs(got))
	}
}

func TestSelectQuestions_DoesNotMutateCatalog(t *testing.T) {
	cat := testCatalog()
	before := ids(cat)
	for seed := uint64(0); seed < 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed+1))
		SelectQuestions(cat, Config{Count: 2, Rand: r})
	}
	if !reflect.DeepEqual(ids(cat), before) {
		t.Errorf("catalog order changed: got %v, want %v", ids(cat), before)
	}
}

func TestSelectQuestions_EmptyResultIsValid(t *testing.T) {
	got := SelectQuestions(testCatalog(), Config{Topic: "volcanoes"})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestCheckAnswer(t *testing.T) {
	for _, q := range testCatalog() {
		if !CheckAnswer(q, q.Correct) {
			t.Errorf("question %s: correct key %q rejected", q.ID, q.Correct)
		}
		for _, key := range catalog.ChoiceKeys {
			if key == q.Correct {
				continue
			}
			if CheckAnswer(q, key) {
				t.Errorf("question %s: wrong key %q accepted", q.ID, key)
			}
		}
	}
}

func TestNextQuestion(t *testing.T) {
	qs := testCatalog()

	q, ok := NextQuestion(qs, 0)
	if !ok || q.ID != "q1" {
		t.Errorf("index 0: got (%v, %v), want (q1, true)", q.ID, ok)
	}
	q, ok = NextQuestion(qs, 4)
	if !ok || q.ID != "q5" {
		t.Errorf("index 4: got (%v, %v), want (q5, true)", q.ID, ok)
	}
	if _, ok := NextQuestion(qs, 5); ok {
		t.Error("index past the end: expected absent result")
	}
	if _, ok := NextQuestion(qs, -1); ok {
		t.Error("negative index: expected absent result")
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		index, total int
		want         bool
	}{
		{0, 5, false},
		{4, 5, false},
		{5, 5, true},
		{6, 5, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		if got := IsComplete(tt.index, tt.total); got != tt.want {
			t.Errorf("IsComplete(%d, %d) = %v, want %v", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestTopics_SortedAndDistinct(t *testing.T) {
	got := Topics(testCatalog())
	want := []string{"rain", "sun", "wind"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestSortByMasteryPriority(t *testing.T) {
	qs := testCatalog()
	mastery := map[string]progress.Mastery{
		"q1": progress.MasteryMastered,
		"q2": progress.MasteryLearning,
		"q4": progress.MasteryNew,
		// q3 and q5 absent: treated as new.
	}

	got := SortByMasteryPriority(qs, mastery)
	want := []string{"q3", "q4", "q5", "q2", "q1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("priority order = %v, want %v", ids(got), want)
	}

	// Stable: ties among new (q3, q4, q5) keep catalog order, and the
	// input slice itself is untouched.
	if !reflect.DeepEqual(ids(qs), []string{"q1", "q2", "q3", "q4", "q5"}) {
		t.Errorf("input mutated: %v", ids(qs))
	}
}
