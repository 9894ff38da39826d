package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-service/internal/core/domain"
)

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) (*OfferRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &OfferRepository{
		pool: pool,
	}, nil
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	query := `
		INSERT INTO offers (id, client_id, realtor_id, property_id, price, rental_period)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		offer.ID, offer.ClientID, offer.RealtorID, offer.PropertyID, offer.Price, offer.RentalPeriod,
	)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	query := `
		UPDATE offers
		SET client_id = $2, realtor_id = $3, property_id = $4, price = $5, rental_period = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		offer.ID, offer.ClientID, offer.RealtorID, offer.PropertyID, offer.Price, offer.RentalPeriod,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	query := `
		SELECT id, client_id, realtor_id, property_id, price, rental_period
		FROM offers
		WHERE id = $1`

	var offer domain.Offer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.ClientID, &offer.RealtorID, &offer.PropertyID, &offer.Price, &offer.RentalPeriod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return &offer, nil
}

func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	query := `
		SELECT id, client_id, realtor_id, property_id, price, rental_period
		FROM offers
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		var offer domain.Offer
		if err := rows.Scan(
			&offer.ID, &offer.ClientID, &offer.RealtorID, &offer.PropertyID, &offer.Price, &offer.RentalPeriod,
		); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
