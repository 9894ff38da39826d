package domain

import (
	"github.com/google/uuid"
)

// DefaultCommissionShare - доля риэлтора от комиссии в процентах,
// применяемая, когда у риэлтора доля не задана. Значение участвует
// в расчете распределения комиссии и менять его нельзя без пересмотра
// формул в commission.go.
const DefaultCommissionShare = 45.0

// Realtor - риэлтор агентства.
type Realtor struct {
	ID         uuid.UUID
	Surname    string
	Name       string
	Patronymic string

	// CommissionShare - доля от комиссии в процентах [0, 100].
	// nil означает "не задана" - при расчетах подставляется
	// DefaultCommissionShare.
	CommissionShare *float64
}

// ShareFraction возвращает долю риэлтора как коэффициент [0, 1].
// Незаданная (и нулевая - так вел себя исходный расчет) доля
// заменяется значением по умолчанию.
func (r *Realtor) ShareFraction() float64 {
	if r.CommissionShare == nil || *r.CommissionShare == 0 {
		return DefaultCommissionShare / 100.0
	}
	return *r.CommissionShare / 100.0
}

// Validate проверяет обязательность ФИО и диапазон доли.
func (r *Realtor) Validate() error {
	if r.Surname == "" || r.Name == "" || r.Patronymic == "" {
		return ErrRealtorNameRequired
	}
	if r.CommissionShare != nil && (*r.CommissionShare < 0 || *r.CommissionShare > 100) {
		return ErrInvalidCommissionShare
	}
	return nil
}
