package createevent

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/collectives/internal/pubsub"
)

type captureSubscriber struct {
	topic   string
	handler pubsub.Handler
	err     error
}

func (c *captureSubscriber) Subscribe(ctx context.Context, topic string, handler pubsub.Handler) error {
	c.topic = topic
	c.handler = handler
	return c.err
}

func (c *captureSubscriber) Close() error { return nil }

func TestSubscriber_LogsCreatedEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sub := &captureSubscriber{}

	require.NoError(t, NewSubscriber(sub, logger).Start(context.Background()))
	assert.Equal(t, TopicEventCreated.Name(), sub.topic)
	require.NotNil(t, sub.handler)

	err := sub.handler(context.Background(), pubsub.Message{
		Topic:   TopicEventCreated.Name(),
		UserID:  "user:ada",
		Payload: []byte(`{"eventId":"event:launch","slug":"launch","collectiveSlug":"webpack","startsAt":"2026-11-01T18:00:00Z"}`),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Collective event created")
	assert.Contains(t, out, "collective=webpack")
	assert.Contains(t, out, "slug=launch")
	assert.Contains(t, out, "created_by=user:ada")
}

func TestSubscriber_RejectsMalformedPayload(t *testing.T) {
	sub := &captureSubscriber{}
	require.NoError(t, NewSubscriber(sub, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Start(context.Background()))

	err := sub.handler(context.Background(), pubsub.Message{Payload: []byte("not json")})
	assert.Error(t, err)
}

func TestSubscriber_IgnoresCanceledContext(t *testing.T) {
	sub := &captureSubscriber{err: context.Canceled}
	assert.NoError(t, NewSubscriber(sub, nil).Start(context.Background()))
}

func TestSubscriber_EndToEnd(t *testing.T) {
	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	got := make(chan EventCreated, 1)
	require.NoError(t, pubsub.Subscribe(ctx, bus, TopicEventCreated, func(ctx context.Context, msg pubsub.Message, e EventCreated) error {
		got <- e
		return nil
	}))

	require.NoError(t, pubsub.Publish(ctx, bus, TopicEventCreated, "user:ada", EventCreated{Slug: "launch", CollectiveSlug: "webpack"}))

	select {
	case e := <-got:
		assert.Equal(t, "launch", e.Slug)
		assert.Equal(t, "webpack", e.CollectiveSlug)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}
