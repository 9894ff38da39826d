package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type CreateClientUseCasePort interface {
	Execute(ctx context.Context, client *domain.Client) (uuid.UUID, error)
}

type UpdateClientUseCasePort interface {
	Execute(ctx context.Context, client *domain.Client) error
}

type DeleteClientUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetClientsUseCasePort interface {
	Execute(ctx context.Context, search string) ([]domain.Client, error)
}

type GetClientByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
