package ratings

import (
	"context"
	"database/sql"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AvgForBook: 本1冊の平均評価とレビュー件数。キャッシュせず毎回計算する
func (s *Store) AvgForBook(ctx context.Context, bookID int64) (sql.NullFloat64, int, error) {
	const q = `SELECT AVG(rating), COUNT(*) FROM reviews WHERE book_id = ?`
	var avg sql.NullFloat64
	var count int
	if err := s.db.QueryRowContext(ctx, q, bookID).Scan(&avg, &count); err != nil {
		return sql.NullFloat64{}, 0, err
	}
	return avg, count, nil
}

// AvgForAuthor: 著者の全著書のレビューを横断した平均評価
func (s *Store) AvgForAuthor(ctx context.Context, authorID int64) (sql.NullFloat64, int, error) {
	const q = `
	SELECT AVG(rating), COUNT(*)
	FROM reviews
	WHERE book_id IN (SELECT id FROM books WHERE author_id = ?)`
	var avg sql.NullFloat64
	var count int
	if err := s.db.QueryRowContext(ctx, q, authorID).Scan(&avg, &count); err != nil {
		return sql.NullFloat64{}, 0, err
	}
	return avg, count, nil
}

// GenresForAuthor: 著者の著書が属するジャンルの集合
func (s *Store) GenresForAuthor(ctx context.Context, authorID int64) ([]string, error) {
	const q = `SELECT DISTINCT genre FROM books WHERE author_id = ?`
	rows, err := s.db.QueryContext(ctx, q, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, 8)
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ReviewCountForMember: 会員が書いたレビューの件数
func (s *Store) ReviewCountForMember(ctx context.Context, memberID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM reviews WHERE member_id = ?`
	var n int
	if err := s.db.QueryRowContext(ctx, q, memberID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
