package repository

import (
	"context"
	"time"

	"iwparking/internal/domain/user"
	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	dbtx db.DBTX
}

func NewUserRepository(dbtx db.DBTX) shared.UserRepository {
	return &UserRepository{dbtx: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.dbtx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Name(), u.Role().String(), u.CreatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.dbtx.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, created_at
		FROM users
		WHERE email = $1`, email)

	var (
		id                               uuid.UUID
		emailStr, hash, nameStr, roleStr string
		createdAt                        time.Time
	)
	if err := row.Scan(&id, &emailStr, &hash, &nameStr, &roleStr, &createdAt); err != nil {
		return nil, infra.ClassifyPgErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored email is invalid", err)
	}

	return user.ReconstructUser(id, emailVO, hash, nameStr, user.Role(roleStr), createdAt), nil
}
