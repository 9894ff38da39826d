package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"agency-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// StatusForError отображает доменную ошибку в HTTP-статус.
// Неизвестные ошибки считаются инфраструктурными (500).
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRealtorNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrDemandNotFound),
		errors.Is(err, domain.ErrDealNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRealtorInUse),
		errors.Is(err, domain.ErrClientInUse),
		errors.Is(err, domain.ErrPropertyInUse),
		errors.Is(err, domain.ErrOfferInDeal),
		errors.Is(err, domain.ErrDemandInDeal),
		errors.Is(err, domain.ErrOfferSatisfied),
		errors.Is(err, domain.ErrDemandSatisfied):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRealtorNameRequired),
		errors.Is(err, domain.ErrInvalidCommissionShare),
		errors.Is(err, domain.ErrClientContactRequired),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPropertyType),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRentalPeriod),
		errors.Is(err, domain.ErrInvalidPriceRange),
		errors.Is(err, domain.ErrInvalidRentalPeriodRange),
		errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WriteDomainError отвечает клиенту по результату use case: доменные
// ошибки уходят со своим текстом, инфраструктурные прячутся за
// общим сообщением.
func WriteDomainError(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		WriteJSONError(w, status, "internal server error")
		return
	}
	WriteJSONError(w, status, err.Error())
}
