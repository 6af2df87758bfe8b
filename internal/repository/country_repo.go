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

type CountryRepository struct {
	DB *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{DB: db}
}

func (r *CountryRepository) Create(ctx context.Context, country *model.Country) error {
	country.ID = ids.New()
	now := time.Now()
	country.CreatedAt, country.UpdatedAt = now, now
	query := `INSERT INTO countries (id, area_id, code, name, name_en, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.DB.Exec(ctx, query, country.ID, country.AreaID, country.Code, country.Name, country.NameEN, country.CreatedAt, country.UpdatedAt); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id string) (*model.Country, error) {
	var c model.Country
	query := `SELECT id, area_id, code, name, name_en, created_at, updated_at FROM countries WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.AreaID, &c.Code, &c.Name, &c.NameEN, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Country not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &c, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]model.Country, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, area_id, code, name, name_en, created_at, updated_at FROM countries ORDER BY code`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Country{}
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.AreaID, &c.Code, &c.Name, &c.NameEN, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CountryRepository) Update(ctx context.Context, country *model.Country) error {
	country.UpdatedAt = time.Now()
	query := `UPDATE countries SET area_id=$1, code=$2, name=$3, name_en=$4, updated_at=$5 WHERE id=$6`
	tag, err := r.DB.Exec(ctx, query, country.AreaID, country.Code, country.Name, country.NameEN, country.UpdatedAt, country.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Country not found")
	}
	return nil
}

func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM countries WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Country not found")
	}
	return nil
}

func (r *CountryRepository) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM countries WHERE code=$1 AND id<>$2)`
	if err := r.DB.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, apperr.Wrap(err)
	}
	return exists, nil
}

// CountByArea counts countries referencing the given area.
func (r *CountryRepository) CountByArea(ctx context.Context, areaID string) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM countries WHERE area_id=$1`, areaID).Scan(&n); err != nil {
		return 0, apperr.Wrap(err)
	}
	return n, nil
}
