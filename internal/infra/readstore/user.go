package readstore

import (
	"context"

	"iwparking/internal/infra"
	"iwparking/internal/infra/db"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) queries.UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := s.dbtx.QueryRow(ctx, `
		SELECT id, email, name, role
		FROM users
		WHERE id = $1`, id)

	var view queries.AuthorizedUserView
	if err := row.Scan(&view.ID, &view.Email, &view.Name, &view.Role); err != nil {
		return nil, infra.ClassifyPgErr("failed to find user view", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := s.dbtx.QueryRow(ctx, `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE email = $1`, email)

	var (
		view queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&view.ID, &view.Email, &view.Name, &view.Role, &hash); err != nil {
		return nil, "", infra.ClassifyPgErr("failed to find user view", err)
	}
	return &view, hash, nil
}
