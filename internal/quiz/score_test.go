package quiz

import "testing"

func TestCalculateScore_QuizMode(t *testing.T) {
	tests := []struct {
		name           string
		correct, total int
		elapsed        float64
		want           int
	}{
		{"80 percent", 8, 10, 123, 80},
		{"one third rounds down", 1, 3, 10, 33},
		{"two thirds rounds up", 2, 3, 10, 67},
		{"perfect", 10, 10, 999, 100},
		{"zero correct", 0, 4, 10, 0},
		{"midpoint rounds up", 1, 8, 0, 13}, // 12.5
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.correct, tt.total, tt.elapsed, ModeQuiz)
			if got != tt.want {
				t.Errorf("CalculateScore(%d, %d, %v, quiz) = %d, want %d",
					tt.correct, tt.total, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestCalculateScore_FlashcardIgnoresTime(t *testing.T) {
	if got := CalculateScore(8, 10, 1, ModeFlashcard); got != 80 {
		t.Errorf("flashcard score = %d, want 80", got)
	}
}

func TestCalculateScore_TimedBonus(t *testing.T) {
	// 10/10 in 50s: 5s average gives a 15-point bonus.
	if got := CalculateScore(10, 10, 50, ModeTimed); got != 115 {
		t.Errorf("timed score = %d, want 115", got)
	}
	if got := CalculateScore(10, 10, 50, ModeTimed); got <= 100 {
		t.Errorf("fast perfect timed run should exceed 100, got %d", got)
	}

	// At or beyond a 20s average the bonus is gone.
	if got := CalculateScore(10, 10, 200, ModeTimed); got != 100 {
		t.Errorf("slow timed score = %d, want 100", got)
	}
	if got := CalculateScore(10, 10, 500, ModeTimed); got != 100 {
		t.Errorf("very slow timed score = %d, want 100", got)
	}
}

func TestCalculateScore_TimedMonotoneInElapsed(t *testing.T) {
	// For fixed correct/total, more elapsed time never raises the score.
	prev := CalculateScore(7, 10, 0, ModeTimed)
	for elapsed := 1.0; elapsed <= 300; elapsed++ {
		cur := CalculateScore(7, 10, elapsed, ModeTimed)
		if cur > prev {
			t.Fatalf("score rose from %d to %d at elapsed=%v", prev, cur, elapsed)
		}
		prev = cur
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"quiz", ModeQuiz, true},
		{"flashcard", ModeFlashcard, true},
		{"timed", ModeTimed, true},
		{"exam", ModeQuiz, false},
		{"", ModeQuiz, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
