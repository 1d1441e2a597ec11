package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ltmb786/taskboard-api/internal/platform/logger"
)

// defaultSendTimeout bounds a single gateway call so a slow push service
// cannot stall the enclosing request.
const defaultSendTimeout = 5 * time.Second

// HTTPGateway implements Gateway against an FCM-style HTTP endpoint.
type HTTPGateway struct {
	endpoint  string
	serverKey string
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPGateway creates a gateway client for the given endpoint and server
// key. If client is nil a client with a short timeout is used. If logger is
// nil, a default logger will be used.
func NewHTTPGateway(endpoint, serverKey string, client *http.Client, logger *slog.Logger) *HTTPGateway {
	if client == nil {
		client = &http.Client{Timeout: defaultSendTimeout}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPGateway{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    client,
		logger:    logger.With(slog.String("component", "push_gateway")),
	}
}

// Ensure HTTPGateway implements Gateway interface
var _ Gateway = (*HTTPGateway)(nil)

// sendRequest is the wire format of a single push send.
type sendRequest struct {
	Message struct {
		Token        string  `json:"token"`
		Notification Message `json:"notification"`
	} `json:"message"`
}

// Send implements Gateway.Send.
func (g *HTTPGateway) Send(ctx context.Context, msg Message, deviceToken string) error {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if deviceToken == "" {
		return fmt.Errorf("device token cannot be empty")
	}

	var payload sendRequest
	payload.Message.Token = deviceToken
	payload.Message.Notification = msg

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.serverKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push gateway rejected send: status %d", resp.StatusCode)
	}

	log.Debug("push message accepted by gateway",
		slog.Int("status", resp.StatusCode))
	return nil
}
