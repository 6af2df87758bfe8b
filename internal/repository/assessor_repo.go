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

type AssessorRepository struct {
	DB *pgxpool.Pool
}

func NewAssessorRepository(db *pgxpool.Pool) *AssessorRepository {
	return &AssessorRepository{DB: db}
}

func (r *AssessorRepository) Create(ctx context.Context, a *model.Assessor) error {
	a.ID = ids.New()
	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	query := `INSERT INTO assessors (id, first_name, last_name, email, phone, type, is_suzuki, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.DB.Exec(ctx, query, a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.Type, a.IsSuzuki, a.CreatedAt, a.UpdatedAt); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *AssessorRepository) GetByID(ctx context.Context, id string) (*model.Assessor, error) {
	var a model.Assessor
	query := `SELECT id, first_name, last_name, email, phone, type, is_suzuki, created_at, updated_at FROM assessors WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Type, &a.IsSuzuki, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Assessor not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &a, nil
}

func (r *AssessorRepository) List(ctx context.Context) ([]model.Assessor, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, first_name, last_name, email, phone, type, is_suzuki, created_at, updated_at FROM assessors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Assessor{}
	for rows.Next() {
		var a model.Assessor
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Type, &a.IsSuzuki, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AssessorRepository) Update(ctx context.Context, a *model.Assessor) error {
	a.UpdatedAt = time.Now()
	query := `UPDATE assessors SET first_name=$1, last_name=$2, email=$3, phone=$4, type=$5, is_suzuki=$6, updated_at=$7 WHERE id=$8`
	tag, err := r.DB.Exec(ctx, query, a.FirstName, a.LastName, a.Email, a.Phone, a.Type, a.IsSuzuki, a.UpdatedAt, a.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Assessor not found")
	}
	return nil
}

func (r *AssessorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM assessors WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Assessor not found")
	}
	return nil
}

func (r *AssessorRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM assessors WHERE email=$1 AND id<>$2)`
	if err := r.DB.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, apperr.Wrap(err)
	}
	return exists, nil
}
