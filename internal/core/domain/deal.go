package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deal - сделка: пара "потребность - предложение" один к одному.
// Запись неизменна после создания, кроме административной починки
// (перепривязки demand/offer).
type Deal struct {
	ID        uuid.UUID
	DemandID  uuid.UUID
	OfferID   uuid.UUID
	CreatedAt time.Time
}

// NewDeal создает сделку с новым идентификатором.
func NewDeal(demandID, offerID uuid.UUID) *Deal {
	return &Deal{
		ID:        uuid.New(),
		DemandID:  demandID,
		OfferID:   offerID,
		CreatedAt: time.Now().UTC(),
	}
}
