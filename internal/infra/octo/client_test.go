//go:build unit

package octo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "0a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"

func newTestClient(t *testing.T, handler http.Handler) (*octo.Client, *recordingSink) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sink := &recordingSink{}
	client := octo.NewClient(config.SupplierConfig{
		Endpoint:     srv.URL,
		Timeout:      5 * time.Second,
		Capabilities: "octo/pricing,octo/pickups,octo/cart",
	}, sink)
	return client, sink
}

type recordingSink struct {
	requests  []octo.RequestEvent
	responses []octo.ResponseEvent
	errors    []octo.ErrorEvent
}

func (s *recordingSink) OnRequest(e octo.RequestEvent)   { s.requests = append(s.requests, e) }
func (s *recordingSink) OnResponse(e octo.ResponseEvent) { s.responses = append(s.responses, e) }
func (s *recordingSink) OnError(e octo.ErrorEvent)       { s.errors = append(s.errors, e) }

func TestClient_RequestHeaders(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]octo.Product{})
	}))

	_, err := client.Products(t.Context(), credential.New(testAPIKey))
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+testAPIKey, got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "octo/pricing,octo/pickups,octo/cart", got.Get("Octo-Capabilities"))
}

func TestClient_Availability_PostsBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody octo.AvailabilityRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode([]octo.Availability{{ID: "a1", Available: true}})
	}))

	req := octo.AvailabilityRequest{
		ProductID:      "p1",
		OptionID:       "o1",
		LocalDateStart: "2026-09-01",
		LocalDateEnd:   "2026-09-07",
		Units:          []octo.UnitQuantity{{ID: "adult", Quantity: 2}},
	}
	records, err := client.Availability(t.Context(), credential.New(testAPIKey), req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/availability", gotPath)
	assert.Equal(t, req, gotBody)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)
}

func TestClient_CancelBooking_UsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody octo.CancelBookingRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(octo.Booking{ID: "b1", Status: "CANCELLED"})
	}))

	booking, err := client.CancelBooking(t.Context(), credential.New(testAPIKey), "b1", octo.CancelBookingRequest{Reason: "changed plans"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/bookings/b1", gotPath)
	assert.Equal(t, "changed plans", gotBody.Reason)
	assert.Equal(t, "CANCELLED", booking.Status)
}

func TestClient_ListBookings_QueryParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]octo.Booking{})
	}))

	params := map[string][]string{"resellerReference": {"ref-1"}}
	_, err := client.ListBookings(t.Context(), credential.New(testAPIKey), params)
	require.NoError(t, err)

	assert.Equal(t, "resellerReference=ref-1", gotQuery)
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind infra.SupplierErrorKind
		wantCode string
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"error":"INVALID_BOOKING_UUID","errorMessage":"no such booking"}`,
			wantKind: infra.KindNotFound,
			wantCode: "INVALID_BOOKING_UUID",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"error":"UNAUTHORIZED","errorMessage":"bad api key"}`,
			wantKind: infra.KindUnauthorized,
			wantCode: "UNAUTHORIZED",
		},
		{
			name:     "forbidden maps to unauthorized",
			status:   http.StatusForbidden,
			body:     "",
			wantKind: infra.KindUnauthorized,
		},
		{
			name:     "bad request",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":"INVALID_UNIT_ID","errorMessage":"unit not found"}`,
			wantKind: infra.KindBadRequest,
			wantCode: "INVALID_UNIT_ID",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     "boom",
			wantKind: infra.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sink := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := client.Products(t.Context(), credential.New(testAPIKey))
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind))

			var se infra.SupplierError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantCode, se.Code)
			require.Len(t, sink.errors, 1)
		})
	}
}

func TestClient_SinkRedactsAuthorization(t *testing.T) {
	client, sink := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]octo.Product{})
	}))

	_, err := client.Products(t.Context(), credential.New(testAPIKey))
	require.NoError(t, err)

	require.Len(t, sink.requests, 1)
	assert.Equal(t, "Bearer [redacted]", sink.requests[0].Headers.Get("Authorization"))
	require.Len(t, sink.responses, 1)
	assert.Equal(t, http.StatusOK, sink.responses[0].StatusCode)
}
