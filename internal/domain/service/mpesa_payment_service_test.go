package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateSTKPush(t *testing.T) {
	var pushPayload stkPushPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			json.NewEncoder(w).Encode(mpesaTokenResponse{AccessToken: "token-123", ExpiresIn: "3599"})
		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&pushPayload))
			json.NewEncoder(w).Encode(stkPushResult{
				MerchantRequestID: "merchant-1",
				CheckoutRequestID: "checkout-1",
				ResponseCode:      "0",
				CustomerMessage:   "Success. Request accepted for processing",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := NewMpesaPaymentService(server.URL, "key", "secret", "174379", "passkey", "https://example.com/callback")

	resp, err := svc.InitiateSTKPush(context.Background(), STKPushRequest{
		PhoneNumber: "254712345678",
		Amount:      1500,
		JobID:       "job-1",
		Description: "Fix leaking tap",
	})
	require.NoError(t, err)

	assert.Equal(t, "checkout-1", resp.CheckoutRequestID)
	assert.Equal(t, "0", resp.ResponseCode)

	assert.Equal(t, "174379", pushPayload.BusinessShortCode)
	assert.Equal(t, "1500", pushPayload.Amount)
	assert.Equal(t, "254712345678", pushPayload.PhoneNumber)
	assert.Equal(t, "job-1", pushPayload.AccountReference)
	assert.Equal(t, "CustomerPayBillOnline", pushPayload.TransactionType)
	assert.NotEmpty(t, pushPayload.Password)
}

func TestInitiateSTKPushTokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewMpesaPaymentService(server.URL, "bad", "creds", "174379", "passkey", "")

	_, err := svc.InitiateSTKPush(context.Background(), STKPushRequest{
		PhoneNumber: "254712345678",
		Amount:      100,
		JobID:       "job-1",
	})
	assert.Error(t, err)
}
