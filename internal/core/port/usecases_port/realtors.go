package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type CreateRealtorUseCasePort interface {
	Execute(ctx context.Context, realtor *domain.Realtor) (uuid.UUID, error)
}

type UpdateRealtorUseCasePort interface {
	Execute(ctx context.Context, realtor *domain.Realtor) error
}

// DeleteRealtorUseCasePort удаляет риэлтора; отказывает, если на него
// ссылаются предложения или потребности.
type DeleteRealtorUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetRealtorsUseCasePort interface {
	Execute(ctx context.Context, search string) ([]domain.Realtor, error)
}

type GetRealtorByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Realtor, error)
}
