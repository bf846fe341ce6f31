// Package memory provides a mailer.Transport that keeps messages in memory.
// Use it for dry runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
)

// Transport records every message it is asked to send.
type Transport struct {
	messages []mailer.Message
	mu       sync.Mutex
}

var _ mailer.Transport = (*Transport)(nil)

// New creates an empty in-memory transport.
func New() *Transport {
	return &Transport{}
}

// Send implements mailer.Transport. It stores a copy of msg that shares no
// address slices with the caller.
func (t *Transport) Send(ctx context.Context, msg *mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, cloneMessage(msg))
	return nil
}

func cloneMessage(msg *mailer.Message) mailer.Message {
	c := *msg
	c.From = slices.Clone(msg.From)
	c.To = slices.Clone(msg.To)
	c.Cc = slices.Clone(msg.Cc)
	c.Bcc = slices.Clone(msg.Bcc)
	return c
}

// Messages returns the recorded messages in send order.
func (t *Transport) Messages() []mailer.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]mailer.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message.
func (t *Transport) Last() (mailer.Message, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.messages) == 0 {
		return mailer.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Reset drops all recorded messages.
func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}
