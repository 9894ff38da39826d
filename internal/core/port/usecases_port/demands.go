package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type CreateDemandUseCasePort interface {
	Execute(ctx context.Context, demand *domain.Demand) (uuid.UUID, error)
}

type UpdateDemandUseCasePort interface {
	Execute(ctx context.Context, demand *domain.Demand) error
}

type DeleteDemandUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetDemandsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Demand, error)
}

type GetDemandByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Demand, error)
}
