package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"morrison/config"
	"morrison/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.AccountEvent{
		RequestID:        "req-1",
		Type:             service.EventAccountUsernameChanged,
		AccountID:        7,
		Username:         "ana2",
		PreviousUsername: "ana",
		OccurredAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventAccountUsernameChanged, received.Message.Attributes["type"])
	assert.Equal(t, "7", received.Message.Attributes["account_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ana", decoded.PreviousUsername)
	assert.Equal(t, "ana2", decoded.Username)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.EventAccountRegistered, AccountID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Config: &config.Config{}, Logger: slog.Default()})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.EventAccountRegistered}))

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8085/push"}}
	publisher, err = NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: ProviderLocal}}
	_, err = NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)

	cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: ProviderGoogle}}
	_, err = NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)

	cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
	_, err = NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)
}
