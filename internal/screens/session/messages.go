package session

import (
	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
)

// sessionInitMsg is sent when the question set and progress records have
// been loaded.
type sessionInitMsg struct {
	Questions []catalog.Question
	Records   map[string]progress.Record
	Err       error
}

// timerTickMsg is sent every second to drive the timed-mode countdown.
// Index names the question the tick belongs to; ticks from an already
// answered question are dropped so only one chain is ever live.
type timerTickMsg struct {
	Index int
}

// explanationMsg carries a fetched explanation for the question at Index.
// Stale messages (Index behind the current question) are dropped.
type explanationMsg struct {
	Index int
	Text  string
	Err   error
}

// persistDoneMsg is sent when the answer's progress row and attempt event
// have been written.
type persistDoneMsg struct {
	Err error
}

// advanceMsg moves past the feedback view to the next question.
type advanceMsg struct{}

// sessionEndMsg triggers the session end flow.
type sessionEndMsg struct{}
