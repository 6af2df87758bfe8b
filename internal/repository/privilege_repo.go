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

type PrivilegeRepository struct {
	DB *pgxpool.Pool
}

func NewPrivilegeRepository(db *pgxpool.Pool) *PrivilegeRepository {
	return &PrivilegeRepository{DB: db}
}

func (r *PrivilegeRepository) Create(ctx context.Context, p *model.Privilege) error {
	p.ID = ids.New()
	query := `INSERT INTO privileges (id, code, name, description) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, p.ID, p.Code, p.Name, p.Description); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (r *PrivilegeRepository) GetByID(ctx context.Context, id string) (*model.Privilege, error) {
	var p model.Privilege
	err := r.DB.QueryRow(ctx, `SELECT id, code, name, description FROM privileges WHERE id=$1`, id).
		Scan(&p.ID, &p.Code, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "Privilege not found")
		}
		return nil, apperr.Wrap(err)
	}
	return &p, nil
}

func (r *PrivilegeRepository) List(ctx context.Context) ([]model.Privilege, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, code, name, description FROM privileges ORDER BY code`)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Privilege{}
	for rows.Next() {
		var p model.Privilege
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PrivilegeRepository) Update(ctx context.Context, p *model.Privilege) error {
	tag, err := r.DB.Exec(ctx, `UPDATE privileges SET code=$1, name=$2, description=$3 WHERE id=$4`, p.Code, p.Name, p.Description, p.ID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Privilege not found")
	}
	return nil
}

func (r *PrivilegeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM privileges WHERE id=$1`, id)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Privilege not found")
	}
	return nil
}

// Assign links a privilege to a user.
func (r *PrivilegeRepository) Assign(ctx context.Context, up *model.UserPrivilege) error {
	up.ID = ids.New()
	query := `INSERT INTO user_privileges (id, user_id, privilege_id) VALUES ($1, $2, $3) ON CONFLICT (user_id, privilege_id) DO NOTHING`
	if _, err := r.DB.Exec(ctx, query, up.ID, up.UserID, up.PrivilegeID); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// Unassign removes a user/privilege link.
func (r *PrivilegeRepository) Unassign(ctx context.Context, userID, privilegeID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM user_privileges WHERE user_id=$1 AND privilege_id=$2`, userID, privilegeID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "Assignment not found")
	}
	return nil
}

// ListByUser returns the privileges assigned to a user.
func (r *PrivilegeRepository) ListByUser(ctx context.Context, userID string) ([]model.Privilege, error) {
	query := `SELECT p.id, p.code, p.name, p.description
			FROM privileges p
			JOIN user_privileges up ON up.privilege_id = p.id
			WHERE up.user_id=$1
			ORDER BY p.code`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	defer rows.Close()

	out := []model.Privilege{}
	for rows.Next() {
		var p model.Privilege
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description); err != nil {
			return nil, apperr.Wrap(err)
		}
		out = append(out, p)
	}
	return out, nil
}
