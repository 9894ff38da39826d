package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// FindMatchingOffersUseCasePort - подбор предложений под потребность.
type FindMatchingOffersUseCasePort interface {
	Execute(ctx context.Context, demandID uuid.UUID) ([]domain.Offer, error)
}
