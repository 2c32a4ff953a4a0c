package books

import (
	"context"
	"database/sql"

	platformdb "booklibrary-backend/internal/platform/db"
)

// Book は books テーブルの1行を表す。
// reserved_by は「現在予約中の会員」の非正規化キャッシュで、
// 正は reservation_records 側（returned_at IS NULL の行）にある。
type Book struct {
	BookID     int64
	Title      string
	AuthorID   int64
	Genre      string
	Year       int
	ReservedBy sql.NullInt64
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

const selectCols = `id, title, author_id, genre, year, reserved_by`

func (s *Store) Insert(ctx context.Context, title string, authorID int64, genre string, year int) (int64, error) {
	const q = `INSERT INTO books (title, author_id, genre, year) VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, title, authorID, genre, year)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Book, error) {
	return getByID(ctx, s.db, id)
}

// getByID: Tx内外どちらからでも呼べるように DBTX を受ける
func getByID(ctx context.Context, db platformdb.DBTX, id int64) (*Book, error) {
	const q = `SELECT ` + selectCols + ` FROM books WHERE id = ?`
	var b Book
	err := db.QueryRowContext(ctx, q, id).Scan(
		&b.BookID, &b.Title, &b.AuthorID, &b.Genre, &b.Year, &b.ReservedBy,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("book not found")
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) List(ctx context.Context) ([]Book, error) {
	const q = `SELECT ` + selectCols + ` FROM books`
	return s.queryBooks(ctx, q)
}

func (s *Store) ListByAuthor(ctx context.Context, authorID int64) ([]Book, error) {
	const q = `SELECT ` + selectCols + ` FROM books WHERE author_id = ?`
	return s.queryBooks(ctx, q, authorID)
}

func (s *Store) queryBooks(ctx context.Context, q string, args ...any) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0, 32)
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.BookID, &b.Title, &b.AuthorID, &b.Genre, &b.Year, &b.ReservedBy); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete: reviews / reservation_records は消さない（元仕様どおり孤児として残す）
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM books WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM authors WHERE id = ? LIMIT 1`, authorID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// detailRow: 詳細ダイアログ用の集約行
type detailRow struct {
	Book
	AuthorName     string
	ReservedByName sql.NullString
	AvgRating      sql.NullFloat64
	ReviewCount    int
}

// GetDetail: book + 著者名 + 予約会員名 + レビュー集計を読み取り専用Txで揃えて取る
func (s *Store) GetDetail(ctx context.Context, id int64) (*detailRow, error) {
	var d detailRow
	err := platformdb.ReadOnly(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		b, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		d.Book = *b

		const joinQ = `
	SELECT a.full_name, m.full_name
	FROM books b
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN members m ON m.id = b.reserved_by
	WHERE b.id = ?`
		if err := tx.QueryRowContext(ctx, joinQ, id).Scan(&d.AuthorName, &d.ReservedByName); err != nil {
			return err
		}

		const ratingQ = `SELECT AVG(rating), COUNT(*) FROM reviews WHERE book_id = ?`
		return tx.QueryRowContext(ctx, ratingQ, id).Scan(&d.AvgRating, &d.ReviewCount)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}
