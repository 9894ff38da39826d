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

type DealRepository struct {
	pool *pgxpool.Pool
}

func NewDealRepository(pool *pgxpool.Pool) (*DealRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DealRepository{
		pool: pool,
	}, nil
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	query := `
		INSERT INTO deals (id, demand_id, offer_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, deal.ID, deal.DemandID, deal.OfferID, deal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) error {
	query := `
		UPDATE deals
		SET demand_id = $2, offer_id = $3
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, deal.ID, deal.DemandID, deal.OfferID)
	if err != nil {
		return fmt.Errorf("failed to update deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDealNotFound
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDealNotFound
	}
	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	query := `
		SELECT id, demand_id, offer_id, created_at
		FROM deals
		WHERE id = $1`

	var deal domain.Deal
	err := r.pool.QueryRow(ctx, query, id).Scan(&deal.ID, &deal.DemandID, &deal.OfferID, &deal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find deal: %w", err)
	}
	return &deal, nil
}

func (r *DealRepository) List(ctx context.Context) ([]domain.Deal, error) {
	query := `
		SELECT id, demand_id, offer_id, created_at
		FROM deals
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	deals := make([]domain.Deal, 0)
	for rows.Next() {
		var deal domain.Deal
		if err := rows.Scan(&deal.ID, &deal.DemandID, &deal.OfferID, &deal.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		deals = append(deals, deal)
	}
	return deals, rows.Err()
}

func (r *DealRepository) ExistsForOffer(ctx context.Context, offerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deals WHERE offer_id = $1)`, offerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check deal for offer: %w", err)
	}
	return exists, nil
}

func (r *DealRepository) ExistsForDemand(ctx context.Context, demandID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deals WHERE demand_id = $1)`, demandID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check deal for demand: %w", err)
	}
	return exists, nil
}

func (r *DealRepository) SatisfiedOfferIDs(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	rows, err := r.pool.Query(ctx, `SELECT offer_id FROM deals`)
	if err != nil {
		return nil, fmt.Errorf("failed to load satisfied offers: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan offer id: %w", err)
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}
