package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	event := &service.AccountEvent{
		RequestID:  "req-1",
		Type:       service.AccountRegistered,
		UserID:     "7d9f6a43-3c1b-4f7e-9a52-0c6d1e2b3a4f",
		Email:      "writer@example.com",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localPushSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, event.UserID, received.Message.OrderingKey)
	assert.Equal(t, "account.registered", received.Message.Attributes["event_type"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	err := publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.AccountDeleted})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEncodeEvent_OmitsEmptyRequestID(t *testing.T) {
	msg, err := encodeEvent(&service.AccountEvent{Type: service.AccountDeleted, UserID: "u-1"})

	require.NoError(t, err)
	assert.NotContains(t, msg.attributes, "request_id")
	assert.Equal(t, "u-1", msg.orderingKey)

	_, err = encodeEvent(nil)
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("unset provider is a no-op", func(t *testing.T) {
		for _, cfg := range []*config.PubSubConfig{nil, {}} {
			publisher, err := newPublisher(ctx, cfg, testLogger())

			require.NoError(t, err)
			assert.IsType(t, &noopPublisher{}, publisher)
			assert.NoError(t, publisher.PublishAccountEvent(ctx, &service.AccountEvent{Type: service.AccountDeleted}))
			assert.NoError(t, publisher.Close())
		}
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085/events"}, testLogger())

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("misconfigured", func(t *testing.T) {
		tests := []*config.PubSubConfig{
			{Provider: "local"},
			{Provider: "google", ProjectID: "p"},
			{Provider: "kafka"},
		}
		for _, cfg := range tests {
			_, err := newPublisher(ctx, cfg, testLogger())
			assert.Error(t, err, cfg.Provider)
		}
	})
}
