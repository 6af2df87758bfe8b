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

type BusinessUnitRepository struct {
	DB *pgxpool.Pool
}

func NewBusinessUnitRepository(db *pgxpool.Pool) *BusinessUnitRepository {
	return &BusinessUnitRepository{DB: db}
}

func (r *BusinessUnitRepository) Create(ctx context.Context, bu *model.BusinessUnit) error {
	bu.ID = ids.New()
	query := `INSERT INTO business_units (id, name, description, activity_id) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, bu.ID, bu.Name, bu.Description, bu.ActivityID); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *BusinessUnitRepository) GetByID(ctx context.Context, id string) (*model.BusinessUnit, error) {
	var bu model.BusinessUnit
	err := r.DB.QueryRow(ctx, `SELECT id, name, description, activity_id FROM business_units WHERE id=$1`, id).
		Scan(&bu.ID, &bu.Name, &bu.Description, &bu.ActivityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Business unit not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &bu, nil
}

func (r *BusinessUnitRepository) List(ctx context.Context) ([]model.BusinessUnit, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, description, activity_id FROM business_units ORDER BY name`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.BusinessUnit{}
	for rows.Next() {
		var bu model.BusinessUnit
		if err := rows.Scan(&bu.ID, &bu.Name, &bu.Description, &bu.ActivityID); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, bu)
	}
	return out, nil
}

func (r *BusinessUnitRepository) Update(ctx context.Context, bu *model.BusinessUnit) error {
	tag, err := r.DB.Exec(ctx, `UPDATE business_units SET name=$1, description=$2, activity_id=$3 WHERE id=$4`, bu.Name, bu.Description, bu.ActivityID, bu.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Business unit not found")
	}
	return nil
}

func (r *BusinessUnitRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM business_units WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Business unit not found")
	}
	return nil
}
