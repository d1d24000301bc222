package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"
)

type Telegram struct {
	httpClient *http.Client
	apiURL     string
	botToken   string
	chatID     string
}

func NewTelegram(apiURL, botToken, chatID string, timeout time.Duration) *Telegram {
	return &Telegram{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     strings.TrimRight(apiURL, "/"),
		botToken:   botToken,
		chatID:     chatID,
	}
}

func (t *Telegram) NotifySale(ctx context.Context, ev shared.SaleEvent) error {
	body, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    formatSale(ev),
	})
	if err != nil {
		return errs.Wrap(err, "marshal telegram message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL+"/bot"+t.botToken+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "telegram send")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("telegram send failed: status=%d", resp.StatusCode)
	}
	return nil
}
