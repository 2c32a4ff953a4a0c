package reservations

import "time"

// 予約登録リクエスト
type CreateReservationRequest struct {
	BookID   int64 `json:"book_id" binding:"required"`
	MemberID int64 `json:"member_id" binding:"required"`
}

// 返却登録リクエスト。返却は本単位（1冊に有効予約は高々1つ）
type CreateReturnRequest struct {
	BookID int64 `json:"book_id" binding:"required"`
}

// 予約レスポンス
type ReservationResponse struct {
	ReservationID   int64      `json:"reservation_id"`
	ReservationULID string     `json:"reservation_ulid"`
	MemberID        int64      `json:"member_id"`
	BookID          int64      `json:"book_id"`
	ReservedAt      time.Time  `json:"reserved_at"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	Returned        bool       `json:"returned"`
}
