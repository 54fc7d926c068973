package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/wizard"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func recordingServer(t *testing.T, status int, responseBody string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&recorded.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

func TestClient_SubmitParticipant(t *testing.T) {
	server, recorded := recordingServer(t, http.StatusCreated, `{}`)
	client := New(server.URL, nil)

	err := client.SubmitParticipant(context.Background(), wizard.Submission{
		ParticipantType: domain.TypeGuest,
		FullName:        "Diego Ramos",
		Email:           "diego@example.com",
		QRToken:         "QR-1700000000000-123",
		PaymentStatus:   domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/participants", recorded.path)
	assert.Empty(t, recorded.auth, "registration needs no token")
	assert.Equal(t, "Diego Ramos", recorded.body["fullName"])
	assert.Equal(t, "I", recorded.body["participantType"])
	assert.Equal(t, "P", recorded.body["paymentStatus"])
}

func TestClient_ChangePaymentStatus(t *testing.T) {
	server, recorded := recordingServer(t, http.StatusOK, `{}`)
	client := New(server.URL, func() string { return "tok-123" })

	err := client.ChangePaymentStatus(context.Background(), 7, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, recorded.method)
	assert.Equal(t, "/participants/updatePaymentStatus/7", recorded.path)
	assert.Equal(t, "Bearer tok-123", recorded.auth)
	assert.Equal(t, map[string]any{"paymentStatus": "C"}, recorded.body)
}

func TestClient_EmptyTokenSendsNoHeader(t *testing.T) {
	server, recorded := recordingServer(t, http.StatusOK, `{}`)
	client := New(server.URL, func() string { return "" })

	require.NoError(t, client.ChangePaymentStatus(context.Background(), 1, domain.StatusRejected))
	assert.Empty(t, recorded.auth)
}

func TestClient_ServerErrorBecomesAPIError(t *testing.T) {
	server, _ := recordingServer(t, http.StatusBadRequest, `{"error":"participant email already exists"}`)
	client := New(server.URL, nil)

	err := client.SubmitParticipant(context.Background(), wizard.Submission{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "participant email already exists", apiErr.Message)
}

func TestClient_ErrorBodyWithoutMessageFallsBackToStatus(t *testing.T) {
	server, _ := recordingServer(t, http.StatusInternalServerError, `{}`)
	client := New(server.URL, nil)

	err := client.SubmitParticipant(context.Background(), wizard.Submission{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_UnreachableServer(t *testing.T) {
	server, _ := recordingServer(t, http.StatusOK, `{}`)
	server.Close()
	client := New(server.URL, nil)

	err := client.ChangePaymentStatus(context.Background(), 1, domain.StatusConfirmed)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}
