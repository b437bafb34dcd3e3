package session

import "time"

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// advanceMsg is sent when the feedback overlay is dismissed and the
// screen should move to the next question or to the summary.
type advanceMsg struct{}
