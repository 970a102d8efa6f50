// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizdeck/ent/attemptevent"
	"github.com/abhisek/quizdeck/ent/progress"
	"github.com/abhisek/quizdeck/ent/schema"
	"github.com/abhisek/quizdeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescGrade is the schema descriptor for grade field.
	attempteventDescGrade := attempteventFields[3].Descriptor()
	// attemptevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	attemptevent.GradeValidator = attempteventDescGrade.Validators[0].(func(string) error)
	// attempteventDescChoice is the schema descriptor for choice field.
	attempteventDescChoice := attempteventFields[4].Descriptor()
	// attemptevent.ChoiceValidator is a validator for the "choice" field. It is called by the builders before save.
	attemptevent.ChoiceValidator = attempteventDescChoice.Validators[0].(func(string) error)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescQuestionID is the schema descriptor for question_id field.
	progressDescQuestionID := progressFields[0].Descriptor()
	// progress.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	progress.QuestionIDValidator = progressDescQuestionID.Validators[0].(func(string) error)
	// progressDescAttempts is the schema descriptor for attempts field.
	progressDescAttempts := progressFields[1].Descriptor()
	// progress.DefaultAttempts holds the default value on creation for the attempts field.
	progress.DefaultAttempts = progressDescAttempts.Default.(int)
	// progressDescCorrectCount is the schema descriptor for correct_count field.
	progressDescCorrectCount := progressFields[2].Descriptor()
	// progress.DefaultCorrectCount holds the default value on creation for the correct_count field.
	progress.DefaultCorrectCount = progressDescCorrectCount.Default.(int)
	// progressDescIncorrectCount is the schema descriptor for incorrect_count field.
	progressDescIncorrectCount := progressFields[3].Descriptor()
	// progress.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	progress.DefaultIncorrectCount = progressDescIncorrectCount.Default.(int)
	// progressDescLastAttempted is the schema descriptor for last_attempted field.
	progressDescLastAttempted := progressFields[4].Descriptor()
	// progress.DefaultLastAttempted holds the default value on creation for the last_attempted field.
	progress.DefaultLastAttempted = progressDescLastAttempted.Default.(func() time.Time)
	// progressDescMastery is the schema descriptor for mastery field.
	progressDescMastery := progressFields[5].Descriptor()
	// progress.DefaultMastery holds the default value on creation for the mastery field.
	progress.DefaultMastery = progressDescMastery.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(float64)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
}
