// Package ledger notifies the platform's currency service of PRYSMS
// credits earned in minigames. The game engine only emits credit
// events; balances live entirely in the external service.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Recorder receives credit events for the external currency ledger.
type Recorder interface {
	Credit(ctx context.Context, playerID string, amount int, reason string)
}

type creditRequest struct {
	Player string `json:"player"`
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// Client posts credits to the ledger service. Delivery is best-effort:
// a failed credit is logged and dropped, the game never blocks on the
// ledger. An empty URL disables delivery entirely.
type Client struct {
	url  string
	http *http.Client
	log  zerolog.Logger
}

func NewClient(url string, log zerolog.Logger) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
		log:  log,
	}
}

func (c *Client) Credit(ctx context.Context, playerID string, amount int, reason string) {
	if c.url == "" {
		return
	}

	body, err := json.Marshal(creditRequest{Player: playerID, Amount: amount, Reason: reason})
	if err != nil {
		c.log.Error().Err(err).Msg("ledger: marshal credit request")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Msg("ledger: build credit request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("player", playerID).Int("amount", amount).
			Msg("ledger: credit delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("player", playerID).
			Int("amount", amount).Msg("ledger: credit rejected")
	}
}
