package reservations

import (
	"database/sql"
	"time"
)

// ReservationRecord は reservation_records テーブルの1行を表す。
// returned_at が NULL の間が「有効な予約」。1冊につき有効な行は高々1つ。
type ReservationRecord struct {
	ReservationID   int64
	ReservationULID string
	MemberID        int64
	BookID          int64
	ReservedAt      time.Time
	ReturnedAt      sql.NullTime
}

func (r *ReservationRecord) Returned() bool {
	return r.ReturnedAt.Valid
}
