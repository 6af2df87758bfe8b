package repository

import (
	"context"
	"errors"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/ids"
	"OrgRegistryAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository struct {
	DB *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	activity.ID = ids.New()
	query := `INSERT INTO activities (id, code, name) VALUES ($1, $2, $3)`
	if _, err := r.DB.Exec(ctx, query, activity.ID, activity.Code, activity.Name); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity
	err := r.DB.QueryRow(ctx, `SELECT id, code, name FROM activities WHERE id=$1`, id).Scan(&a.ID, &a.Code, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Activity not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &a, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, code, name FROM activities ORDER BY code`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Code, &a.Name); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *model.Activity) error {
	tag, err := r.DB.Exec(ctx, `UPDATE activities SET code=$1, name=$2 WHERE id=$3`, activity.Code, activity.Name, activity.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Activity not found")
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM activities WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Activity not found")
	}
	return nil
}
