package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ferro/internal/domain"
)

func TestPushSendsPayloadForm(t *testing.T) {
	var gotContentType string
	var gotPayload string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotPayload = r.PostFormValue("payload")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	batch := domain.NewBatch()
	batch.RunRows = append(batch.RunRows, domain.HistoryRow{
		"Alana|RUN|2024-01-15T10:00:00Z", "2024-01-15T10:00:00Z", "Alana",
		"5", "25:00", "Easy", "", "5:00 /km",
	})

	client := NewClient(srv.URL)
	require.NoError(t, client.Push(context.Background(), batch))

	assert.Equal(t, "application/x-www-form-urlencoded;charset=UTF-8", gotContentType)
	want, err := batch.EncodePayload()
	require.NoError(t, err)
	assert.JSONEq(t, want, gotPayload)
}

func TestPushEmptyBatchSerializesArrays(t *testing.T) {
	var gotPayload string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPayload = r.PostFormValue("payload")
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL).Push(context.Background(), domain.NewBatch()))
	assert.JSONEq(t, `{"setRows":[],"runRows":[],"nutritionRows":[],"bodyRows":[]}`, gotPayload)
}

func TestPushTreatsNon2xxAsDelivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	// The endpoint gives no readable result, so status codes are logged only.
	assert.NoError(t, NewClient(srv.URL).Push(context.Background(), domain.NewBatch()))
}

func TestPushReturnsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewClient(srv.URL).Push(context.Background(), domain.NewBatch())
	assert.Error(t, err)
}
