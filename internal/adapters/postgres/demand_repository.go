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

type DemandRepository struct {
	pool *pgxpool.Pool
}

func NewDemandRepository(pool *pgxpool.Pool) (*DemandRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DemandRepository{
		pool: pool,
	}, nil
}

func (r *DemandRepository) Create(ctx context.Context, demand *domain.Demand) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO demands (id, client_id, realtor_id, property_type,
		                     city, street, house_number, apartment_number,
		                     min_price, max_price, min_rental_period, max_rental_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.Exec(ctx, query,
		demand.ID, demand.ClientID, demand.RealtorID, demand.PropertyType,
		demand.City, demand.Street, demand.HouseNumber, demand.ApartmentNumber,
		demand.MinPrice, demand.MaxPrice, demand.MinRentalPeriod, demand.MaxRentalPeriod,
	)
	if err != nil {
		return fmt.Errorf("failed to create demand: %w", err)
	}

	if err := r.insertRanges(ctx, tx, demand); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit demand: %w", err)
	}
	return nil
}

func (r *DemandRepository) Update(ctx context.Context, demand *domain.Demand) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE demands
		SET client_id = $2, realtor_id = $3, property_type = $4,
		    city = $5, street = $6, house_number = $7, apartment_number = $8,
		    min_price = $9, max_price = $10, min_rental_period = $11, max_rental_period = $12
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		demand.ID, demand.ClientID, demand.RealtorID, demand.PropertyType,
		demand.City, demand.Street, demand.HouseNumber, demand.ApartmentNumber,
		demand.MinPrice, demand.MaxPrice, demand.MinRentalPeriod, demand.MaxRentalPeriod,
	)
	if err != nil {
		return fmt.Errorf("failed to update demand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDemandNotFound
	}

	// Диапазоны перезаписываются целиком. Тип мог смениться,
	// поэтому чистим все три таблицы.
	for _, q := range []string{
		`DELETE FROM apartment_demands WHERE demand_id = $1`,
		`DELETE FROM house_demands WHERE demand_id = $1`,
		`DELETE FROM land_demands WHERE demand_id = $1`,
	} {
		if _, err := tx.Exec(ctx, q, demand.ID); err != nil {
			return fmt.Errorf("failed to reset demand ranges: %w", err)
		}
	}
	if err := r.insertRanges(ctx, tx, demand); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit demand: %w", err)
	}
	return nil
}

func (r *DemandRepository) insertRanges(ctx context.Context, tx pgx.Tx, demand *domain.Demand) error {
	switch demand.PropertyType {
	case domain.PropertyTypeApartment:
		d := demand.Apartment
		if d == nil {
			d = &domain.ApartmentDemand{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO apartment_demands (demand_id, min_area, max_area, min_rooms, max_rooms, min_floor, max_floor)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			demand.ID, d.MinArea, d.MaxArea, d.MinRooms, d.MaxRooms, d.MinFloor, d.MaxFloor,
		)
		if err != nil {
			return fmt.Errorf("failed to save apartment ranges: %w", err)
		}
	case domain.PropertyTypeHouse:
		d := demand.House
		if d == nil {
			d = &domain.HouseDemand{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO house_demands (demand_id, min_area, max_area, min_rooms, max_rooms, min_floors, max_floors)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			demand.ID, d.MinArea, d.MaxArea, d.MinRooms, d.MaxRooms, d.MinFloors, d.MaxFloors,
		)
		if err != nil {
			return fmt.Errorf("failed to save house ranges: %w", err)
		}
	case domain.PropertyTypeLand:
		d := demand.Land
		if d == nil {
			d = &domain.LandDemand{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO land_demands (demand_id, min_area, max_area) VALUES ($1, $2, $3)`,
			demand.ID, d.MinArea, d.MaxArea,
		)
		if err != nil {
			return fmt.Errorf("failed to save land ranges: %w", err)
		}
	}
	return nil
}

func (r *DemandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM demands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete demand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDemandNotFound
	}
	return nil
}

const demandSelect = `
	SELECT d.id, d.client_id, d.realtor_id, d.property_type,
	       d.city, d.street, d.house_number, d.apartment_number,
	       d.min_price, d.max_price, d.min_rental_period, d.max_rental_period,
	       ad.min_area, ad.max_area, ad.min_rooms, ad.max_rooms, ad.min_floor, ad.max_floor,
	       hd.min_area, hd.max_area, hd.min_rooms, hd.max_rooms, hd.min_floors, hd.max_floors,
	       ld.min_area, ld.max_area
	FROM demands d
	LEFT JOIN apartment_demands ad ON ad.demand_id = d.id
	LEFT JOIN house_demands hd ON hd.demand_id = d.id
	LEFT JOIN land_demands ld ON ld.demand_id = d.id`

func scanDemand(row pgx.Row) (*domain.Demand, error) {
	var d domain.Demand
	var a domain.ApartmentDemand
	var h domain.HouseDemand
	var l domain.LandDemand

	err := row.Scan(
		&d.ID, &d.ClientID, &d.RealtorID, &d.PropertyType,
		&d.City, &d.Street, &d.HouseNumber, &d.ApartmentNumber,
		&d.MinPrice, &d.MaxPrice, &d.MinRentalPeriod, &d.MaxRentalPeriod,
		&a.MinArea, &a.MaxArea, &a.MinRooms, &a.MaxRooms, &a.MinFloor, &a.MaxFloor,
		&h.MinArea, &h.MaxArea, &h.MinRooms, &h.MaxRooms, &h.MinFloors, &h.MaxFloors,
		&l.MinArea, &l.MaxArea,
	)
	if err != nil {
		return nil, err
	}

	switch d.PropertyType {
	case domain.PropertyTypeApartment:
		d.Apartment = &a
	case domain.PropertyTypeHouse:
		d.House = &h
	case domain.PropertyTypeLand:
		d.Land = &l
	}
	return &d, nil
}

func (r *DemandRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Demand, error) {
	demand, err := scanDemand(r.pool.QueryRow(ctx, demandSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find demand: %w", err)
	}
	return demand, nil
}

func (r *DemandRepository) List(ctx context.Context) ([]domain.Demand, error) {
	rows, err := r.pool.Query(ctx, demandSelect+` ORDER BY d.created_at, d.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list demands: %w", err)
	}
	defer rows.Close()

	demands := make([]domain.Demand, 0)
	for rows.Next() {
		demand, err := scanDemand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan demand row: %w", err)
		}
		demands = append(demands, *demand)
	}
	return demands, rows.Err()
}
