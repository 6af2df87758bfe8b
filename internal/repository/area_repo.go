package repository

import (
	"context"
	"errors"
	"time"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/ids"
	"OrgRegistryAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AreaRepository struct {
	DB *pgxpool.Pool
}

func NewAreaRepository(db *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{DB: db}
}

func (r *AreaRepository) Create(ctx context.Context, area *model.Area) error {
	area.ID = ids.New()
	now := time.Now()
	area.CreatedAt, area.UpdatedAt = now, now
	query := `INSERT INTO areas (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, area.ID, area.Name, area.CreatedAt, area.UpdatedAt); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *AreaRepository) GetByID(ctx context.Context, id string) (*model.Area, error) {
	var area model.Area
	query := `SELECT id, name, created_at, updated_at FROM areas WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&area.ID, &area.Name, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Area not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &area, nil
}

func (r *AreaRepository) List(ctx context.Context) ([]model.Area, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, created_at, updated_at FROM areas ORDER BY name`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Area{}
	for rows.Next() {
		var area model.Area
		if err := rows.Scan(&area.ID, &area.Name, &area.CreatedAt, &area.UpdatedAt); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, area)
	}
	return out, nil
}

func (r *AreaRepository) Update(ctx context.Context, area *model.Area) error {
	area.UpdatedAt = time.Now()
	query := `UPDATE areas SET name=$1, updated_at=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, area.Name, area.UpdatedAt, area.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Area not found")
	}
	return nil
}

func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM areas WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Area not found")
	}
	return nil
}

func (r *AreaRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM areas WHERE name=$1 AND id<>$2)`
	if err := r.DB.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, apperr.Wrap(err)
	}
	return exists, nil
}
