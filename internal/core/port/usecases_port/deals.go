package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// CreateDealUseCasePort создает сделку, если обе стороны существуют
// и еще не удовлетворены.
type CreateDealUseCasePort interface {
	Execute(ctx context.Context, demandID, offerID uuid.UUID) (uuid.UUID, error)
}

// UpdateDealUseCasePort - административная перепривязка сделки.
type UpdateDealUseCasePort interface {
	Execute(ctx context.Context, deal *domain.Deal) error
}

type DeleteDealUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetDealsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Deal, error)
}

type GetDealByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
}
