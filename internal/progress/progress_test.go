package progress

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name              string
		attempts, correct int
		want              Mastery
	}{
		{"no attempts", 0, 0, MasteryNew},
		{"two attempts any accuracy", 2, 2, MasteryNew},
		{"two attempts all wrong", 2, 0, MasteryNew},
		{"three attempts perfect", 3, 3, MasteryLearning},
		{"four attempts perfect still learning", 4, 4, MasteryLearning},
		{"five attempts at 80 percent", 5, 4, MasteryMastered},
		{"five attempts at 60 percent", 5, 3, MasteryLearning},
		{"ten attempts at 90 percent", 10, 9, MasteryMastered},
		{"ten attempts below threshold", 10, 7, MasteryLearning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.attempts, tt.correct); got != tt.want {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.attempts, tt.correct, got, tt.want)
			}
		})
	}
}

func TestUpdate_CountsAndInvariant(t *testing.T) {
	r := New("q1")
	outcomes := []bool{true, false, true, true, true, false, true}

	for _, correct := range outcomes {
		r = r.Update(correct)
		if r.Attempts != r.CorrectCount+r.IncorrectCount {
			t.Fatalf("invariant broken: attempts=%d correct=%d incorrect=%d",
				r.Attempts, r.CorrectCount, r.IncorrectCount)
		}
		if r.Mastery != Classify(r.Attempts, r.CorrectCount) {
			t.Fatalf("stored mastery %v disagrees with rule for (%d, %d)",
				r.Mastery, r.Attempts, r.CorrectCount)
		}
	}

	if r.Attempts != 7 || r.CorrectCount != 5 || r.IncorrectCount != 2 {
		t.Errorf("unexpected totals: %+v", r)
	}
}

func TestUpdate_NeverMutatesInput(t *testing.T) {
	r := New("q1").Update(true).Update(true)
	before := r

	r.Update(false)

	if !reflect.DeepEqual(r, before) {
		t.Errorf("input record mutated: before %+v, after %+v", before, r)
	}
}

func TestUpdate_MasteredCanRegress(t *testing.T) {
	r := New("q1")
	for i := 0; i < 5; i++ {
		r = r.Update(true)
	}
	if r.Mastery != MasteryMastered {
		t.Fatalf("after 5/5: mastery = %v, want mastered", r.Mastery)
	}

	// Two misses drop lifetime accuracy to 5/7 < 0.8.
	r = r.Update(false).Update(false)
	if r.Mastery != MasteryLearning {
		t.Errorf("after 5/7: mastery = %v, want learning", r.Mastery)
	}
}

func TestReset_ReturnsZeroStateForSameQuestion(t *testing.T) {
	r := New("q9").Update(true).Update(false).Update(true)
	fresh := r.Reset()

	if fresh.QuestionID != "q9" {
		t.Errorf("reset changed question id: %q", fresh.QuestionID)
	}
	if fresh.Attempts != 0 || fresh.CorrectCount != 0 || fresh.IncorrectCount != 0 {
		t.Errorf("reset left nonzero counters: %+v", fresh)
	}
	if fresh.Mastery != MasteryNew {
		t.Errorf("reset mastery = %v, want new", fresh.Mastery)
	}
}

func TestResetAll(t *testing.T) {
	records := []Record{
		New("a").Update(true).Update(true).Update(true),
		New("b").Update(false),
		New("c"),
	}

	reset := ResetAll(records)

	if len(reset) != len(records) {
		t.Fatalf("length changed: got %d, want %d", len(reset), len(records))
	}
	for i, r := range reset {
		if r.QuestionID != records[i].QuestionID {
			t.Errorf("record %d: id %q, want %q", i, r.QuestionID, records[i].QuestionID)
		}
		if r.Attempts != 0 || r.Mastery != MasteryNew {
			t.Errorf("record %d not zeroed: %+v", i, r)
		}
	}
}

func TestParseMastery(t *testing.T) {
	tests := []struct {
		in     string
		want   Mastery
		wantOK bool
	}{
		{"new", MasteryNew, true},
		{"learning", MasteryLearning, true},
		{"mastered", MasteryMastered, true},
		{"expert", MasteryNew, false},
		{"", MasteryNew, false},
	}
	for _, tt := range tests {
		got, ok := ParseMastery(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMastery(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
