package models

// Session groups the ordered messages of one conversation thread.
// Messages are append-only; Topic stays nil until the first successful
// summarization and is never rewritten afterwards.
type Session struct {
	ID       string    `json:"chatId"`
	Messages []Message `json:"messages"`
	Topic    *string   `json:"topic"`
}

// Clone returns a deep copy so callers can read session state without
// holding the store's lock.
func (s *Session) Clone() Session {
	out := Session{ID: s.ID}
	if s.Topic != nil {
		topic := *s.Topic
		out.Topic = &topic
	}
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}
