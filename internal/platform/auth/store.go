package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Librarian は librarian_accounts テーブルの1行
type Librarian struct {
	ID           string
	PasswordHash string
	Role         string
	IsDisabled   bool
	CreatedAt    time.Time
}

type LibrarianStore interface {
	GetByID(ctx context.Context, id string) (*Librarian, error)
	Create(ctx context.Context, a *Librarian) error
	Delete(ctx context.Context, id string) (int64, error)
	UpdateID(ctx context.Context, oldID, newID string) (int64, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) LibrarianStore {
	return &Store{db: db}
}

func (s *Store) GetByID(ctx context.Context, id string) (*Librarian, error) {
	const q = `
SELECT id, password_hash, role, is_disabled, created_at
FROM librarian_accounts
WHERE id = ?
LIMIT 1
`
	var a Librarian
	var isDisabledInt int
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID,
		&a.PasswordHash,
		&a.Role,
		&isDisabledInt,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if isDisabledInt != 0 {
		a.IsDisabled = true
	}
	return &a, nil
}

func (s *Store) Create(ctx context.Context, a *Librarian) error {
	const q = `
INSERT INTO librarian_accounts (id, password_hash, role, is_disabled, created_at)
VALUES (?, ?, ?, 0, CURRENT_TIMESTAMP)
`
	_, err := s.db.ExecContext(ctx, q, a.ID, a.PasswordHash, a.Role)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	const q = `DELETE FROM librarian_accounts WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) UpdateID(ctx context.Context, oldID, newID string) (int64, error) {
	// PKの書き換え。重複時はUNIQUE違反がそのまま返る
	const q = `UPDATE librarian_accounts SET id = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, newID, oldID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
