package push_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ltmb786/taskboard-api/internal/platform/push"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGatewaySend(t *testing.T) {
	t.Parallel()

	var received struct {
		Message struct {
			Token        string       `json:"token"`
			Notification push.Message `json:"notification"`
		} `json:"message"`
	}
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := push.NewHTTPGateway(server.URL, "server-key", server.Client(), nil)

	err := gateway.Send(context.Background(), push.Message{Title: "New task", Body: "You were assigned"}, "device-token-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer server-key", gotAuth)
	assert.Equal(t, "device-token-1", received.Message.Token)
	assert.Equal(t, "New task", received.Message.Notification.Title)
	assert.Equal(t, "You were assigned", received.Message.Notification.Body)
}

func TestHTTPGatewaySendRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gateway := push.NewHTTPGateway(server.URL, "server-key", server.Client(), nil)

	err := gateway.Send(context.Background(), push.Message{Title: "t", Body: "b"}, "device-token-1")
	assert.Error(t, err)
}

func TestHTTPGatewaySendEmptyToken(t *testing.T) {
	t.Parallel()

	gateway := push.NewHTTPGateway("http://localhost:0", "server-key", nil, nil)

	err := gateway.Send(context.Background(), push.Message{Title: "t", Body: "b"}, "")
	assert.Error(t, err)
}
