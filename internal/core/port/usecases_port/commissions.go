package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// ComputeDealCommissionsUseCasePort - расчет комиссий по сделке.
type ComputeDealCommissionsUseCasePort interface {
	Execute(ctx context.Context, dealID uuid.UUID) (domain.CommissionBreakdown, error)
}
