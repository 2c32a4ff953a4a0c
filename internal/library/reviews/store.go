package reviews

import (
	"context"
	"database/sql"
)

// Review は reviews テーブルの1行を表す。作成後の更新・削除はない
type Review struct {
	ReviewID  int64
	MemberID  int64
	BookID    int64
	Text      string
	Rating    int
	BookTitle sql.NullString
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, memberID, bookID int64, text string, rating int) (int64, error) {
	const q = `INSERT INTO reviews (member_id, book_id, text, rating) VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, memberID, bookID, text, rating)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) ListForBook(ctx context.Context, bookID int64) ([]Review, error) {
	const q = `
	SELECT r.id, r.member_id, r.book_id, r.text, r.rating, b.title
	FROM reviews r
	LEFT JOIN books b ON b.id = r.book_id
	WHERE r.book_id = ?`
	return s.queryReviews(ctx, q, bookID)
}

func (s *Store) ListByMember(ctx context.Context, memberID int64) ([]Review, error) {
	const q = `
	SELECT r.id, r.member_id, r.book_id, r.text, r.rating, b.title
	FROM reviews r
	LEFT JOIN books b ON b.id = r.book_id
	WHERE r.member_id = ?`
	return s.queryReviews(ctx, q, memberID)
}

func (s *Store) queryReviews(ctx context.Context, q string, args ...any) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0, 16)
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ReviewID, &r.MemberID, &r.BookID, &r.Text, &r.Rating, &r.BookTitle); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	return s.existsOne(ctx, `SELECT 1 FROM members WHERE id = ? LIMIT 1`, memberID)
}

func (s *Store) BookExists(ctx context.Context, bookID int64) (bool, error) {
	return s.existsOne(ctx, `SELECT 1 FROM books WHERE id = ? LIMIT 1`, bookID)
}

func (s *Store) existsOne(ctx context.Context, q string, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
