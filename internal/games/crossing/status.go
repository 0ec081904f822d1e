package crossing

import "time"

// StatusMessage is a transient overlay text shown after round transitions.
type StatusMessage struct {
	Text     string
	Start    time.Time
	Duration time.Duration
}

// Visible reports whether the message should still be drawn at now.
// The message stays up through the last instant of its duration.
func (m StatusMessage) Visible(now time.Time) bool {
	if m.Text == "" {
		return false
	}
	return !now.After(m.Start.Add(m.Duration))
}
