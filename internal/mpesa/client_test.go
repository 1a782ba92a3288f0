package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, nil))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestStkPush_SimulatedWithoutCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unconfigured client must not make outbound calls")
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, testLogger())
	require.False(t, c.Configured())

	result, err := c.StkPush(context.Background(), "712345678", 850)
	require.NoError(t, err)
	assert.True(t, result.Simulated)
	assert.Nil(t, result.Data)
}

func TestStkPush_Handshake(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	wantTimestamp := "20240315093045"
	wantPassword := base64.StdEncoding.EncodeToString([]byte("174379" + "passkey" + wantTimestamp))

	var gotPush pushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPush))
			json.NewEncoder(w).Encode(map[string]string{"ResponseCode": "0", "CheckoutRequestID": "ws_CO_1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://example.com/mpesa/callback",
		BaseURL:        srv.URL,
	}, testLogger())
	c.nowFunc = func() time.Time { return fixed }

	result, err := c.StkPush(context.Background(), "712345678", 850)
	require.NoError(t, err)

	assert.False(t, result.Simulated)
	assert.Contains(t, string(result.Data), "ws_CO_1")

	assert.Equal(t, "174379", gotPush.BusinessShortCode)
	assert.Equal(t, wantPassword, gotPush.Password)
	assert.Equal(t, wantTimestamp, gotPush.Timestamp)
	assert.Equal(t, "CustomerPayBillOnline", gotPush.TransactionType)
	assert.Equal(t, 850, gotPush.Amount)
	assert.Equal(t, "254712345678", gotPush.PartyA)
	assert.Equal(t, "254712345678", gotPush.PhoneNumber)
	assert.Equal(t, "174379", gotPush.PartyB)
	assert.Equal(t, "https://example.com/mpesa/callback", gotPush.CallBackURL)
}

func TestStkPush_TokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorMessage":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{ConsumerKey: "key", ConsumerSecret: "bad", BaseURL: srv.URL}, testLogger())

	_, err := c.StkPush(context.Background(), "712345678", 850)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestStkPush_ProviderErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"errorMessage":"push rejected"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{ConsumerKey: "key", ConsumerSecret: "secret", ShortCode: "174379", BaseURL: srv.URL}, testLogger())

	_, err := c.StkPush(context.Background(), "712345678", 850)
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusInternalServerError, provErr.StatusCode)
	assert.Contains(t, provErr.Detail, "push rejected")
}
