package catalog

import "testing"

func TestLoad_ValidCatalog(t *testing.T) {
	data := []byte(`[
		{
			"id": "x1",
			"grade": "middle",
			"prompt": "Pick b.",
			"choices": {"a": "no", "b": "yes", "c": "no", "d": "no"},
			"correct": "b",
			"topic": "sample"
		}
	]`)

	qs, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.ID != "x1" || q.Grade != GradeMiddle || q.Correct != "b" || q.Topic != "sample" {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.Explanation != "" {
		t.Errorf("expected empty explanation, got %q", q.Explanation)
	}
}

func TestLoad_RejectsBadGrade(t *testing.T) {
	data := []byte(`[
		{
			"id": "x1",
			"grade": "kindergarten",
			"prompt": "Pick a.",
			"choices": {"a": "yes", "b": "no", "c": "no", "d": "no"},
			"correct": "a"
		}
	]`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected schema validation error for unknown grade")
	}
}

func TestLoad_RejectsMissingChoice(t *testing.T) {
	data := []byte(`[
		{
			"id": "x1",
			"grade": "high",
			"prompt": "Pick a.",
			"choices": {"a": "yes", "b": "no", "c": "no"},
			"correct": "a"
		}
	]`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected schema validation error for missing choice d")
	}
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	data := []byte(`[
		{"id": "dup", "grade": "high", "prompt": "One.", "choices": {"a": "1", "b": "2", "c": "3", "d": "4"}, "correct": "a"},
		{"id": "dup", "grade": "high", "prompt": "Two.", "choices": {"a": "1", "b": "2", "c": "3", "d": "4"}, "correct": "b"}
	]`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	qs := Default()
	if len(qs) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, q := range qs {
		if _, ok := q.Choices[q.Correct]; !ok {
			t.Errorf("question %s: correct key %q not among choices", q.ID, q.Correct)
		}
		if _, ok := ParseGrade(string(q.Grade)); !ok {
			t.Errorf("question %s: invalid grade %q", q.ID, q.Grade)
		}
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in     string
		want   Grade
		wantOK bool
	}{
		{"all", GradeAll, true},
		{"elementary", GradeElementary, true},
		{"middle", GradeMiddle, true},
		{"high", GradeHigh, true},
		{"college", GradeAll, false},
		{"", GradeAll, false},
	}
	for _, tt := range tests {
		got, ok := ParseGrade(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseGrade(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
