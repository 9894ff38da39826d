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

type RealtorRepository struct {
	pool *pgxpool.Pool
}

func NewRealtorRepository(pool *pgxpool.Pool) (*RealtorRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &RealtorRepository{
		pool: pool,
	}, nil
}

func (r *RealtorRepository) Create(ctx context.Context, realtor *domain.Realtor) error {
	query := `
		INSERT INTO realtors (id, surname, name, patronymic, commission_share)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		realtor.ID, realtor.Surname, realtor.Name, realtor.Patronymic, realtor.CommissionShare,
	)
	if err != nil {
		return fmt.Errorf("failed to create realtor: %w", err)
	}
	return nil
}

func (r *RealtorRepository) Update(ctx context.Context, realtor *domain.Realtor) error {
	query := `
		UPDATE realtors
		SET surname = $2, name = $3, patronymic = $4, commission_share = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		realtor.ID, realtor.Surname, realtor.Name, realtor.Patronymic, realtor.CommissionShare,
	)
	if err != nil {
		return fmt.Errorf("failed to update realtor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRealtorNotFound
	}
	return nil
}

func (r *RealtorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM realtors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete realtor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRealtorNotFound
	}
	return nil
}

func (r *RealtorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	query := `
		SELECT id, surname, name, patronymic, commission_share
		FROM realtors
		WHERE id = $1`

	var realtor domain.Realtor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&realtor.ID, &realtor.Surname, &realtor.Name, &realtor.Patronymic, &realtor.CommissionShare,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find realtor: %w", err)
	}
	return &realtor, nil
}

func (r *RealtorRepository) List(ctx context.Context, search string) ([]domain.Realtor, error) {
	query := `
		SELECT id, surname, name, patronymic, commission_share
		FROM realtors`
	args := make([]interface{}, 0, 1)
	if search != "" {
		query += ` WHERE concat_ws(' ', surname, name, patronymic) ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY surname, name, patronymic`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list realtors: %w", err)
	}
	defer rows.Close()

	realtors := make([]domain.Realtor, 0)
	for rows.Next() {
		var realtor domain.Realtor
		if err := rows.Scan(
			&realtor.ID, &realtor.Surname, &realtor.Name, &realtor.Patronymic, &realtor.CommissionShare,
		); err != nil {
			return nil, fmt.Errorf("failed to scan realtor row: %w", err)
		}
		realtors = append(realtors, realtor)
	}
	return realtors, rows.Err()
}

func (r *RealtorRepository) HasLinkedRecords(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM offers WHERE realtor_id = $1)
		    OR EXISTS (SELECT 1 FROM demands WHERE realtor_id = $1)`

	var linked bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&linked); err != nil {
		return false, fmt.Errorf("failed to check realtor links: %w", err)
	}
	return linked, nil
}
