// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, serverURL string, timeout time.Duration) Mailer {
	t.Helper()
	m, err := NewHTTPMailer(config.Mail{
		APIURL:  serverURL + "/v1/send",
		APIKey:  "secret-key",
		From:    "noreply@example.org",
		Timeout: timeout,
	}, logger.Nop())
	require.NoError(t, err)
	return m
}

var testMessage = models.EmailMessage{
	To:      []string{"a@example.org", "b@example.org"},
	Subject: "New submission",
	Body:    "Hello Asha, you said hi",
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestHTTPMailer_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body gatewayMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "noreply@example.org", body.From)
		assert.Equal(t, testMessage.To, body.To)
		assert.Equal(t, testMessage.Subject, body.Subject)
		assert.Equal(t, testMessage.Body, body.Text)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestMailer(t, srv.URL, time.Second).Send(context.Background(), testMessage)
	require.NoError(t, err)
}

func TestHTTPMailer_Send_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"other", http.StatusServiceUnavailable, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestMailer(t, srv.URL, time.Second).Send(context.Background(), testMessage)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMailDispatch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHTTPMailer_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	err := newTestMailer(t, srv.URL, 50*time.Millisecond).Send(context.Background(), testMessage)

	require.ErrorIs(t, err, ErrMailDispatch)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHTTPMailer_Send_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestMailer(t, srv.URL, time.Second).Send(ctx, testMessage)
	require.ErrorIs(t, err, ErrMailDispatch)
}

func TestHTTPMailer_NoAPIKeyOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m, err := NewHTTPMailer(config.Mail{APIURL: srv.URL, From: "x@example.org"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), testMessage))
}

// ── constructors ────────────────────────────────────────────────────────────

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://mail.example.org/v1/send", want: "https://mail.example.org/v1/send"},
		{raw: "  mail.example.org/send ", want: "https://mail.example.org/send"},
		{raw: "http://localhost:8025", want: "http://localhost:8025"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeEndpoint(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(config.Mail{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	m, err = NewMailer(config.Mail{APIURL: "https://mail.example.org/send", From: "x@example.org"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpMailer{}, m)

	_, err = NewMailer(config.Mail{APIURL: "http://"}, logger.Nop())
	require.Error(t, err)
}

func TestLogMailer_Send(t *testing.T) {
	m := NewLogMailer(logger.Nop())
	require.NoError(t, m.Send(context.Background(), testMessage))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, m.Send(ctx, testMessage), ErrMailDispatch)
}
