package members

import (
	"context"
	"database/sql"
)

// Member は members テーブルの1行を表す
type Member struct {
	MemberID int64
	FullName string
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, fullName string) (int64, error) {
	const q = `INSERT INTO members (full_name) VALUES (?)`
	res, err := s.db.ExecContext(ctx, q, fullName)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Member, error) {
	const q = `SELECT id, full_name FROM members WHERE id = ?`
	var m Member
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&m.MemberID, &m.FullName); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("member not found")
		}
		return nil, err
	}
	return &m, nil
}

// FindByNamePattern: LIKEパターンそのまま（%・_は呼び出し側が付ける）。最初の1件だけ返す
func (s *Store) FindByNamePattern(ctx context.Context, pattern string) (*Member, error) {
	const q = `SELECT id, full_name FROM members WHERE full_name LIKE ? LIMIT 1`
	var m Member
	if err := s.db.QueryRowContext(ctx, q, pattern).Scan(&m.MemberID, &m.FullName); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("member not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) List(ctx context.Context) ([]Member, error) {
	const q = `SELECT id, full_name FROM members`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Member, 0, 32)
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.MemberID, &m.FullName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete: 会員のreviews/reservation_recordsは消さない（元仕様どおり）
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM members WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
