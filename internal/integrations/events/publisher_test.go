package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := NewPublisher(writer, "reservations", nopLogger{})
	occurred := time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return occurred }

	err := p.Publish(context.Background(), Event{
		Type:          TypeReservationCreated,
		ReservationID: "r1",
		UserID:        "u1",
		TimeRangeIDs:  []string{"t1", "t2"},
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("r1"), msg.Key)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.NotEmpty(t, decoded.ID)
	assert.Equal(t, occurred, decoded.OccurredAt)
	assert.Equal(t, []string{"t1", "t2"}, decoded.TimeRangeIDs)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, decoded.ID, headers["event_id"])
	assert.Equal(t, TypeReservationCreated, headers["event_type"])

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestPublisher_WriteError(t *testing.T) {
	p := NewPublisher(&fakeWriter{err: errors.New("broker down")}, "reservations", nopLogger{})

	err := p.Publish(context.Background(), Event{Type: TypeReservationCancelled, ReservationID: "r1"})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, SplitBrokers(""))
}
