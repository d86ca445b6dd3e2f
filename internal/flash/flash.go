// Package flash queues one-shot status messages in the session and
// hands them to the next rendered page.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Message is a severity-tagged status line.
type Message struct {
	Category string
	Text     string
}

func init() {
	// Cookie sessions serialize values with gob.
	gob.Register(Message{})
}

// Add queues a message for the next rendered page.
func Add(c *gin.Context, category, text string) {
	s := sessions.Default(c)
	s.AddFlash(Message{Category: category, Text: text})
	_ = s.Save()
}

// Pop consumes and returns all queued messages.
func Pop(c *gin.Context) []Message {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Save persists the removal so messages render exactly once.
	_ = s.Save()
	msgs := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
