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

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	company.ID = ids.New()
	query := `INSERT INTO companies (id, name, country_id) VALUES ($1, $2, $3)`
	if _, err := r.DB.Exec(ctx, query, company.ID, company.Name, company.CountryID); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	var c model.Company
	query := `SELECT id, name, country_id FROM companies WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Company not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, country_id FROM companies ORDER BY name`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Company{}
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	query := `UPDATE companies SET name=$1, country_id=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, company.Name, company.CountryID, company.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Company not found")
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Company not found")
	}
	return nil
}
