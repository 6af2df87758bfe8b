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

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user. The identifier and timestamps are assigned
// here and written back onto u.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	u.ID = ids.New()
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	query := `INSERT INTO users (id, role_id, assessor_id, username, password_hash, first_name, last_name, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := r.DB.Exec(ctx, query, u.ID, u.RoleID, u.AssessorID, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.CreatedAt, u.UpdatedAt); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// GetByID returns the user including its password hash. Callers that
// serialize the record outward must sanitize it first.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	query := `SELECT id, role_id, assessor_id, username, password_hash, first_name, last_name, is_active, created_at, updated_at
			FROM users
			WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.RoleID, &u.AssessorID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "User not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	query := `SELECT id, role_id, assessor_id, username, password_hash, first_name, last_name, is_active, created_at, updated_at
			FROM users
			WHERE username=$1`
	err := r.DB.QueryRow(ctx, query, username).Scan(&u.ID, &u.RoleID, &u.AssessorID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "User not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, role_id, assessor_id, username, password_hash, first_name, last_name, is_active, created_at, updated_at
			FROM users
			ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.RoleID, &u.AssessorID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	u.UpdatedAt = time.Now()
	query := `UPDATE users SET role_id=$1, assessor_id=$2, username=$3, first_name=$4, last_name=$5, is_active=$6, updated_at=$7 WHERE id=$8`
	tag, err := r.DB.Exec(ctx, query, u.RoleID, u.AssessorID, u.Username, u.FirstName, u.LastName, u.IsActive, u.UpdatedAt, u.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "User not found")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash=$1, updated_at=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "User not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "User not found")
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, apperr.Wrap(err)
	}
	return n, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1 AND id<>$2)`
	if err := r.DB.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, apperr.Wrap(err)
	}
	return exists, nil
}

// CountByRole counts users referencing the given role.
func (r *UserRepository) CountByRole(ctx context.Context, roleID string) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role_id=$1`, roleID).Scan(&n); err != nil {
		return 0, apperr.Wrap(err)
	}
	return n, nil
}
