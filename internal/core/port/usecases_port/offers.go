package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type CreateOfferUseCasePort interface {
	Execute(ctx context.Context, offer *domain.Offer) (uuid.UUID, error)
}

type UpdateOfferUseCasePort interface {
	Execute(ctx context.Context, offer *domain.Offer) error
}

type DeleteOfferUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetOffersUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Offer, error)
}

type GetOfferByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
}
