package domain

import (
	"github.com/google/uuid"
)

// Offer - предложение по сдаче объекта: фиксированная месячная цена
// и срок сдачи в месяцах. Предложение считается удовлетворенным,
// когда на него ссылается сделка, и после этого в подборе не участвует.
type Offer struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	RealtorID  uuid.UUID
	PropertyID uuid.UUID

	// Price - месячная цена аренды, > 0.
	Price int64
	// RentalPeriod - срок сдачи в месяцах, > 0.
	RentalPeriod int
}

// Validate проверяет положительность цены и срока.
func (o *Offer) Validate() error {
	if o.Price <= 0 {
		return ErrInvalidPrice
	}
	if o.RentalPeriod <= 0 {
		return ErrInvalidRentalPeriod
	}
	return nil
}
