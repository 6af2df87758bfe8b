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

type LanguageRepository struct {
	DB *pgxpool.Pool
}

func NewLanguageRepository(db *pgxpool.Pool) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) Create(ctx context.Context, lang *model.Language) error {
	lang.ID = ids.New()
	query := `INSERT INTO languages (id, code, name) VALUES ($1, $2, $3)`
	if _, err := r.DB.Exec(ctx, query, lang.ID, lang.Code, lang.Name); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *LanguageRepository) GetByID(ctx context.Context, id string) (*model.Language, error) {
	var l model.Language
	err := r.DB.QueryRow(ctx, `SELECT id, code, name FROM languages WHERE id=$1`, id).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Language not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &l, nil
}

func (r *LanguageRepository) List(ctx context.Context) ([]model.Language, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, code, name FROM languages ORDER BY code`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Language{}
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *LanguageRepository) Update(ctx context.Context, lang *model.Language) error {
	tag, err := r.DB.Exec(ctx, `UPDATE languages SET code=$1, name=$2 WHERE id=$3`, lang.Code, lang.Name, lang.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Language not found")
	}
	return nil
}

func (r *LanguageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM languages WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Language not found")
	}
	return nil
}
