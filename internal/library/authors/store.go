package authors

import (
	"context"
	"database/sql"

	platformdb "booklibrary-backend/internal/platform/db"
)

// Author は authors テーブルの1行を表す
type Author struct {
	AuthorID int64
	FullName string
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, fullName string) (int64, error) {
	const q = `INSERT INTO authors (full_name) VALUES (?)`
	res, err := s.db.ExecContext(ctx, q, fullName)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Author, error) {
	const q = `SELECT id, full_name FROM authors WHERE id = ?`
	var a Author
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&a.AuthorID, &a.FullName); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("author not found")
		}
		return nil, err
	}
	return &a, nil
}

// List: 登録順（行順）のまま返す
func (s *Store) List(ctx context.Context) ([]Author, error) {
	const q = `SELECT id, full_name FROM authors`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Author, 0, 16)
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.AuthorID, &a.FullName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteCascade: 著者の books を消してから authors の行を消す。
// 元の実装は2本のDELETEを別々に投げていて途中失敗で中途半端に残るので、
// 1トランザクションにまとめる。
func (s *Store) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := platformdb.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx platformdb.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM books WHERE author_id = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
