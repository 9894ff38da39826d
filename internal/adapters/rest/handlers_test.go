package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{domain.ErrDemandNotFound, http.StatusNotFound},
		{domain.ErrDealNotFound, http.StatusNotFound},
		{domain.ErrRealtorInUse, http.StatusConflict},
		{domain.ErrOfferSatisfied, http.StatusConflict},
		{domain.ErrDemandSatisfied, http.StatusConflict},
		{domain.ErrInvalidPrice, http.StatusBadRequest},
		{domain.ErrInvalidPropertyType, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusForError(tt.err); got != tt.expected {
			t.Errorf("StatusForError(%v) = %d, expected %d", tt.err, got, tt.expected)
		}
	}
}

type fakeMatchingUC struct {
	offers []domain.Offer
	err    error
}

func (f *fakeMatchingUC) Execute(_ context.Context, _ uuid.UUID) ([]domain.Offer, error) {
	return f.offers, f.err
}

func matchingRequest(t *testing.T, handler *DemandHandler, demandID string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/v1/demands/{demandID}/matching-offers", handler.GetMatchingOffers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/demands/"+demandID+"/matching-offers", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetMatchingOffers(t *testing.T) {
	offer := domain.Offer{
		ID: uuid.New(), ClientID: uuid.New(), RealtorID: uuid.New(),
		PropertyID: uuid.New(), Price: 1000, RentalPeriod: 12,
	}
	handler := NewDemandHandler(nil, nil, nil, nil, nil, &fakeMatchingUC{offers: []domain.Offer{offer}})

	rec := matchingRequest(t, handler, uuid.New().String())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body []OfferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0].ID != offer.ID || body[0].Price != 1000 {
		t.Errorf("unexpected response: %+v", body)
	}
}

func TestGetMatchingOffersDemandNotFound(t *testing.T) {
	handler := NewDemandHandler(nil, nil, nil, nil, nil, &fakeMatchingUC{err: domain.ErrDemandNotFound})

	rec := matchingRequest(t, handler, uuid.New().String())

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error == "" {
		t.Error("expected error message in body")
	}
}

func TestGetMatchingOffersInvalidID(t *testing.T) {
	handler := NewDemandHandler(nil, nil, nil, nil, nil, &fakeMatchingUC{})

	rec := matchingRequest(t, handler, "not-a-uuid")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetMatchingOffersInternalErrorIsHidden(t *testing.T) {
	handler := NewDemandHandler(nil, nil, nil, nil, nil, &fakeMatchingUC{err: errors.New("pg: connection refused")})

	rec := matchingRequest(t, handler, uuid.New().String())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "internal server error" {
		t.Errorf("infrastructure error must not leak, got %q", body.Error)
	}
}
