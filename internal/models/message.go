package models

import (
	"fmt"
	"time"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// timestampLayout is the wire format for message timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// Timestamp marshals as "YYYY-MM-DD HH:MM:SS" with second resolution.
type Timestamp time.Time

// Now returns the current wall-clock time truncated to seconds.
func Now() Timestamp {
	return Timestamp(time.Now().Truncate(time.Second))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(timestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp must be a string: %s", s)
	}
	parsed, err := time.Parse(timestampLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Message is one turn's utterance within a session.
type Message struct {
	No        int       `json:"no"`
	Timestamp Timestamp `json:"timestamp"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
}
