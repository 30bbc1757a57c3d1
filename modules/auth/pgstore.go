package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordcrm/nordcrm/pkg/pg"
)

// PGStore reads user accounts from the platform store. The tenant slug is
// joined in so login can stamp it into token claims without a second query.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore wraps a pgx pool as UserStorage.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const getUserByEmailQuery = `
SELECT u.id, u.email, u.name, u.password_hash, u.tenant_id, t.slug, u.role, u.created_at
FROM users u
JOIN tenants t ON t.id = u.tenant_id
WHERE u.email = $1`

func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx, getUserByEmailQuery, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.TenantID, &u.TenantSlug, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Join(errors.New("auth: get user by email"), err)
	}
	return &u, nil
}
