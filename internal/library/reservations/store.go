package reservations

import (
	"context"
	"database/sql"
	"errors"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	platformdb "booklibrary-backend/internal/platform/db"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

const selectCols = `id, reservation_ulid, member_id, book_id, reserved_at, returned_at`

// ---- Transactional Methods ----

// ExecReserve は予約登録の一連の流れを1トランザクションで行う。
// 1. books.reserved_by を確認（埋まっていたらCONFLICT）
// 2. 会員の存在確認
// 3. books.reserved_by を更新
// 4. reservation_records に有効行（returned_at NULL）をINSERT
// 元のデスクトップ版は 3 と 4 を別ステートメントで投げていて途中失敗で
// キャッシュと履歴がずれるため、ここでまとめてコミットする。
func (s *Store) ExecReserve(ctx context.Context, m *ReservationRecord) error {
	return platformdb.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx platformdb.DBTX) error {
		var reservedBy sql.NullInt64
		err := tx.QueryRowContext(ctx, `SELECT reserved_by FROM books WHERE id = ?`, m.BookID).Scan(&reservedBy)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound("book not found")
			}
			return err
		}
		if reservedBy.Valid {
			return ErrConflict("book is already reserved")
		}

		var one int
		err = tx.QueryRowContext(ctx, `SELECT 1 FROM members WHERE id = ? LIMIT 1`, m.MemberID).Scan(&one)
		if err == sql.ErrNoRows {
			return ErrInvalid("member does not exist")
		}
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `UPDATE books SET reserved_by = ? WHERE id = ? AND reserved_by IS NULL`,
			m.MemberID, m.BookID)
		if err != nil {
			return err
		}
		aff, _ := res.RowsAffected()
		if aff != 1 {
			// SELECTとUPDATEの間で別の予約が入った
			return ErrConflict("book is already reserved")
		}

		ins, err := tx.ExecContext(ctx, `
	INSERT INTO reservation_records (reservation_ulid, member_id, book_id, reserved_at, returned_at)
	VALUES (?, ?, ?, ?, NULL)`,
			m.ReservationULID, m.MemberID, m.BookID, m.ReservedAt)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 {
				// reservation_ulid のUNIQUE衝突。ULIDではまず起きない
				return ErrConflict("duplicate reservation id")
			}
			return err
		}
		id, _ := ins.LastInsertId()
		m.ReservationID = id
		return nil
	})
}

// ExecReturn は返却の一連の流れを1トランザクションで行う。
// 有効行（returned_at NULL）に returned_at を入れ、books.reserved_by を外す。
// 有効行が見つからない場合（データ不整合）でも reserved_by のクリアは続行する。
// その場合 rec は nil で返る。
func (s *Store) ExecReturn(ctx context.Context, bookID int64, now time.Time) (*ReservationRecord, error) {
	var rec *ReservationRecord
	err := platformdb.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx platformdb.DBTX) error {
		var reservedBy sql.NullInt64
		err := tx.QueryRowContext(ctx, `SELECT reserved_by FROM books WHERE id = ?`, bookID).Scan(&reservedBy)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound("book not found")
			}
			return err
		}
		if !reservedBy.Valid {
			return ErrConflict("book is not reserved")
		}

		var m ReservationRecord
		err = tx.QueryRowContext(ctx, `
	SELECT `+selectCols+`
	FROM reservation_records
	WHERE book_id = ? AND returned_at IS NULL
	ORDER BY reserved_at DESC
	LIMIT 1`, bookID).Scan(
			&m.ReservationID, &m.ReservationULID, &m.MemberID, &m.BookID, &m.ReservedAt, &m.ReturnedAt,
		)
		switch {
		case err == sql.ErrNoRows:
			// reserved_by だけ立っていて履歴が無い不整合。クリアだけ進める
			rec = nil
		case err != nil:
			return err
		default:
			if _, err := tx.ExecContext(ctx,
				`UPDATE reservation_records SET returned_at = ? WHERE id = ?`, now, m.ReservationID); err != nil {
				return err
			}
			m.ReturnedAt = sql.NullTime{Time: now, Valid: true}
			rec = &m
		}

		_, err = tx.ExecContext(ctx, `UPDATE books SET reserved_by = NULL WHERE id = ?`, bookID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ---- Queries ----

func (s *Store) GetByULID(ctx context.Context, ulid string) (*ReservationRecord, error) {
	const q = `SELECT ` + selectCols + ` FROM reservation_records WHERE reservation_ulid = ?`
	var m ReservationRecord
	err := s.db.QueryRowContext(ctx, q, ulid).Scan(
		&m.ReservationID, &m.ReservationULID, &m.MemberID, &m.BookID, &m.ReservedAt, &m.ReturnedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("reservation not found")
		}
		return nil, err
	}
	return &m, nil
}

// ListAll: 履歴全件、新しい順
func (s *Store) ListAll(ctx context.Context) ([]ReservationRecord, error) {
	const q = `SELECT ` + selectCols + ` FROM reservation_records ORDER BY reserved_at DESC`
	return s.queryRecords(ctx, q)
}

func (s *Store) ListByBook(ctx context.Context, bookID int64) ([]ReservationRecord, error) {
	const q = `SELECT ` + selectCols + ` FROM reservation_records WHERE book_id = ? ORDER BY reserved_at DESC`
	return s.queryRecords(ctx, q, bookID)
}

func (s *Store) ListByMember(ctx context.Context, memberID int64) ([]ReservationRecord, error) {
	const q = `SELECT ` + selectCols + ` FROM reservation_records WHERE member_id = ? ORDER BY reserved_at DESC`
	return s.queryRecords(ctx, q, memberID)
}

// CountActiveForBook: 整合性チェック用。有効行は高々1のはず
func (s *Store) CountActiveForBook(ctx context.Context, bookID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservation_records WHERE book_id = ? AND returned_at IS NULL`, bookID).Scan(&n)
	return n, err
}

func (s *Store) queryRecords(ctx context.Context, q string, args ...any) ([]ReservationRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReservationRecord, 0, 16)
	for rows.Next() {
		var m ReservationRecord
		if err := rows.Scan(&m.ReservationID, &m.ReservationULID, &m.MemberID, &m.BookID, &m.ReservedAt, &m.ReturnedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
