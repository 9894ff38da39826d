package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, property *domain.Property) (uuid.UUID, error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, property *domain.Property) error
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetPropertiesUseCasePort interface {
	Execute(ctx context.Context, filter port.PropertyFilter) ([]domain.Property, error)
}

type GetPropertyByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}
