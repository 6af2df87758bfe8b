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

type RoleRepository struct {
	DB *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{DB: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	role.ID = ids.New()
	now := time.Now()
	role.CreatedAt, role.UpdatedAt = now, now
	query := `INSERT INTO roles (id, code, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.Exec(ctx, query, role.ID, role.Code, role.Name, role.Description, role.CreatedAt, role.UpdatedAt); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	query := `SELECT id, code, name, description, created_at, updated_at FROM roles WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&role.ID, &role.Code, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Role not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &role, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]model.Role, error) {
	query := `SELECT id, code, name, description, created_at, updated_at FROM roles ORDER BY code`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Code, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, role)
	}
	return out, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	role.UpdatedAt = time.Now()
	query := `UPDATE roles SET code=$1, name=$2, description=$3, updated_at=$4 WHERE id=$5`
	tag, err := r.DB.Exec(ctx, query, role.Code, role.Name, role.Description, role.UpdatedAt, role.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Role not found")
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM roles WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Role not found")
	}
	return nil
}

func (r *RoleRepository) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM roles WHERE code=$1 AND id<>$2)`
	if err := r.DB.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, apperr.Wrap(err)
	}
	return exists, nil
}
