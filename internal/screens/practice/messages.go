package practice

import "time"

// tutorPollMsg checks whether the tutor's answer has arrived.
type tutorPollMsg time.Time

// levelDoneMsg is sent once the last exercise is solved.
type levelDoneMsg struct {
	Awarded bool
}
