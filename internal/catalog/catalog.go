package catalog

// Grade is the grade band a question is aimed at.
type Grade string

const (
	GradeAll        Grade = "all"
	GradeElementary Grade = "elementary"
	GradeMiddle     Grade = "middle"
	GradeHigh       Grade = "high"
)

// ChoiceKeys are the four answer choice labels, in display order.
var ChoiceKeys = []string{"a", "b", "c", "d"}

// ParseGrade parses a persisted grade band string. The second return is
// false for unknown values; callers should fall back to GradeAll so a
// corrupt stored filter never hides the whole catalog.
func ParseGrade(s string) (Grade, bool) {
	switch Grade(s) {
	case GradeAll, GradeElementary, GradeMiddle, GradeHigh:
		return Grade(s), true
	}
	return GradeAll, false
}

// Question is a single immutable catalog entry. The catalog is loaded once
// at startup and never mutated afterwards.
type Question struct {
	// ID uniquely identifies the question across the catalog and in
	// persisted progress records.
	ID string `json:"id"`

	// Grade is the grade band this question belongs to.
	Grade Grade `json:"grade"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Choices maps the keys "a".."d" to answer option text.
	Choices map[string]string `json:"choices"`

	// Correct is the choice key of the right answer.
	Correct string `json:"correct"`

	// Explanation is an optional worked explanation shown after answering.
	Explanation string `json:"explanation,omitempty"`

	// Topic is an optional subject tag used for weakness analysis.
	Topic string `json:"topic,omitempty"`
}
