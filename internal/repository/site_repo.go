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

type SiteRepository struct {
	DB *pgxpool.Pool
}

func NewSiteRepository(db *pgxpool.Pool) *SiteRepository {
	return &SiteRepository{DB: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *model.Site) error {
	site.ID = ids.New()
	query := `INSERT INTO sites (id, code, name, internal_code, country_id, company_id, city, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.DB.Exec(ctx, query, site.ID, site.Code, site.Name, site.InternalCode, site.CountryID, site.CompanyID, site.City, site.Address); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *SiteRepository) GetByID(ctx context.Context, id string) (*model.Site, error) {
	var s model.Site
	query := `SELECT id, code, name, internal_code, country_id, company_id, city, address FROM sites WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&s.ID, &s.Code, &s.Name, &s.InternalCode, &s.CountryID, &s.CompanyID, &s.City, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Site not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &s, nil
}

func (r *SiteRepository) List(ctx context.Context) ([]model.Site, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, code, name, internal_code, country_id, company_id, city, address FROM sites ORDER BY name`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Site{}
	for rows.Next() {
		var s model.Site
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.InternalCode, &s.CountryID, &s.CompanyID, &s.City, &s.Address); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SiteRepository) Update(ctx context.Context, site *model.Site) error {
	query := `UPDATE sites SET code=$1, name=$2, internal_code=$3, country_id=$4, company_id=$5, city=$6, address=$7 WHERE id=$8`
	tag, err := r.DB.Exec(ctx, query, site.Code, site.Name, site.InternalCode, site.CountryID, site.CompanyID, site.City, site.Address, site.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Site not found")
	}
	return nil
}

func (r *SiteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM sites WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Site not found")
	}
	return nil
}
