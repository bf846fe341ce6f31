package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendmail/pkg/mailer"
	"github.com/dmitrymomot/sendmail/pkg/mailer/memory"
)

func TestTransport_RecordsMessages(t *testing.T) {
	t.Parallel()

	tr := memory.New()
	_, ok := tr.Last()
	require.False(t, ok)

	require.NoError(t, tr.Send(context.Background(), &mailer.Message{Subject: "one"}))
	require.NoError(t, tr.Send(context.Background(), &mailer.Message{Subject: "two"}))

	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "one", msgs[0].Subject)

	last, ok := tr.Last()
	require.True(t, ok)
	require.Equal(t, "two", last.Subject)

	tr.Reset()
	require.Empty(t, tr.Messages())
}

func TestTransport_RecordedMessageIsIsolated(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		Subject: "hi",
		From:    []mailer.Address{mailer.Addr("a@x.com")},
		To:      []mailer.Address{mailer.Addr("b@x.com")},
		Cc:      []mailer.Address{mailer.Addr("c@x.com")},
		Bcc:     []mailer.Address{mailer.Addr("d@x.com")},
	}

	tr := memory.New()
	require.NoError(t, tr.Send(context.Background(), msg))

	msg.From[0] = mailer.Addr("changed@x.com")
	msg.To[0] = mailer.Addr("changed@x.com")
	msg.Cc[0] = mailer.Addr("changed@x.com")
	msg.Bcc[0] = mailer.Addr("changed@x.com")

	got, ok := tr.Last()
	require.True(t, ok)
	require.Equal(t, []mailer.Address{mailer.Addr("a@x.com")}, got.From)
	require.Equal(t, []mailer.Address{mailer.Addr("b@x.com")}, got.To)
	require.Equal(t, []mailer.Address{mailer.Addr("c@x.com")}, got.Cc)
	require.Equal(t, []mailer.Address{mailer.Addr("d@x.com")}, got.Bcc)
}

func TestTransport_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := memory.New()
	require.ErrorIs(t, tr.Send(ctx, &mailer.Message{}), context.Canceled)
	require.Empty(t, tr.Messages())
}

func TestTransport_Concurrent(t *testing.T) {
	t.Parallel()

	tr := memory.New()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.Send(context.Background(), &mailer.Message{Subject: "x"})
		}()
	}
	wg.Wait()
	require.Len(t, tr.Messages(), 20)
}
