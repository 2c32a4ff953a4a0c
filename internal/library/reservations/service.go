package reservations

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
)

// ===== インターフェース群 =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ===== Service本体 =====

type Service struct {
	db    *sql.DB
	store *Store
	clock Clock
	id    IDGen
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:    db,
		store: NewStore(db),
		clock: realClock{},
		id:    ulidGen{},
	}
}

// 予約登録。空いている本にだけ成立する
func (s *Service) Reserve(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error) {
	if req.BookID <= 0 {
		return nil, ErrInvalid("book_id must be > 0")
	}
	if req.MemberID <= 0 {
		return nil, ErrInvalid("member_id must be > 0")
	}

	idStr, err := s.id.New()
	if err != nil {
		return nil, err
	}

	rec := &ReservationRecord{
		ReservationULID: idStr,
		MemberID:        req.MemberID,
		BookID:          req.BookID,
		ReservedAt:      s.clock.Now(),
	}

	if err := s.store.ExecReserve(ctx, rec); err != nil {
		return nil, err
	}

	resp := buildResponse(rec)
	return &resp, nil
}

// 返却登録。有効な予約レコードに返却時刻を入れて reserved_by を外す。
// 履歴が欠けていても reserved_by のクリアは成立させる（冪等寄りの挙動）。
// その場合レコードは nil。
func (s *Service) Return(ctx context.Context, req CreateReturnRequest) (*ReservationResponse, error) {
	if req.BookID <= 0 {
		return nil, ErrInvalid("book_id must be > 0")
	}

	rec, err := s.store.ExecReturn(ctx, req.BookID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	resp := buildResponse(rec)
	return &resp, nil
}

func (s *Service) GetReservationByULID(ctx context.Context, ulid string) (*ReservationResponse, error) {
	if ulid == "" {
		return nil, ErrInvalid("reservation_ulid is required")
	}
	rec, err := s.store.GetByULID(ctx, ulid)
	if err != nil {
		return nil, err
	}
	resp := buildResponse(rec)
	return &resp, nil
}

// 履歴一覧（全件・新しい順）
func (s *Service) ListHistory(ctx context.Context) ([]ReservationResponse, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildResponses(items), nil
}

func (s *Service) ListHistoryForBook(ctx context.Context, bookID int64) ([]ReservationResponse, error) {
	if bookID <= 0 {
		return nil, ErrInvalid("book_id must be > 0")
	}
	items, err := s.store.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return buildResponses(items), nil
}

func (s *Service) ListHistoryForMember(ctx context.Context, memberID int64) ([]ReservationResponse, error) {
	if memberID <= 0 {
		return nil, ErrInvalid("member_id must be > 0")
	}
	items, err := s.store.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return buildResponses(items), nil
}

// ヘルパー関数
func buildResponse(rec *ReservationRecord) ReservationResponse {
	resp := ReservationResponse{
		ReservationID:   rec.ReservationID,
		ReservationULID: rec.ReservationULID,
		MemberID:        rec.MemberID,
		BookID:          rec.BookID,
		ReservedAt:      rec.ReservedAt,
		Returned:        rec.Returned(),
	}
	if rec.ReturnedAt.Valid {
		v := rec.ReturnedAt.Time
		resp.ReturnedAt = &v
	}
	return resp
}

func buildResponses(items []ReservationRecord) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(items))
	for i := range items {
		out = append(out, buildResponse(&items[i]))
	}
	return out
}
