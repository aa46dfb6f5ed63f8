// Package chat holds the in-session message log, grouped by counterpart.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat bubble. IsMe marks messages authored by the current
// user; Time is a display-formatted clock string, not a sortable timestamp.
type Message struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	IsMe bool   `json:"isMe"`
	Time string `json:"time"`
}

const clockLayout = "3:04 PM"

// NewMessage creates a current-user message stamped with the wall clock.
func NewMessage(text string) Message {
	return Message{
		ID:   uuid.NewString(),
		Text: text,
		IsMe: true,
		Time: time.Now().Format(clockLayout),
	}
}

// Log maps a counterpart user ID to that conversation's messages in
// insertion order. Conversations are independent; appending to one never
// touches another.
type Log map[string][]Message

// Append adds a message to the counterpart's conversation.
func (l Log) Append(counterpartID string, m Message) {
	l[counterpartID] = append(l[counterpartID], m)
}

// Conversation returns the messages exchanged with the counterpart, oldest
// first. A missing conversation is an empty one.
func (l Log) Conversation(counterpartID string) []Message {
	return l[counterpartID]
}
