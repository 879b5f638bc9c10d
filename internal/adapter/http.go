package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// gatewayMessage is the JSON body accepted by the mail gateway.
type gatewayMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type httpMailer struct {
	client   *utils.HTTPClient
	endpoint string
	apiKey   string
	from     string

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that POSTs messages as JSON to
// cfg.APIURL, authenticated with cfg.APIKey as a bearer token. Each request
// is bounded by cfg.Timeout.
//
// Returns an error if cfg.APIURL cannot be parsed as an absolute URL.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	endpoint, err := normalizeEndpoint(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api url: %w", err)
	}

	return &httpMailer{
		client:   utils.NewHTTPClient(cfg.Timeout),
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		from:     cfg.From,
		logger:   logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Send implements [Mailer].
func (h *httpMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(gatewayMessage{From: h.from, To: msg.To, Subject: msg.Subject, Text: msg.Body})
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}

	resp, err := req.Post(h.endpoint)
	if err != nil {
		return fmt.Errorf("%w: send request: %w", ErrMailDispatch, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDispatch, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpMailer.Send").
		Int("recipients", len(msg.To)).
		Int("status", resp.StatusCode()).
		Msg("notification handed over to mail gateway")

	return nil
}
