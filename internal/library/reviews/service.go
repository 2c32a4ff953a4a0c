package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// ===== Error model (authors/books/members と同型) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeConflict:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(db *sql.DB) *Service { return &Service{db: db, store: NewStore(db)} }

// レビュー登録。
// rating が 1〜5 の範囲外でも警告を出すだけで登録はする（旧デスクトップ版の挙動を踏襲。
// 既知の欠陥として残している。弾くならここで ErrInvalid を返すだけでよい）。
// 戻り値の warned は範囲外だったかどうか。
func (s *Service) CreateReview(ctx context.Context, in CreateReviewRequest) (ReviewResponse, bool, error) {
	if in.MemberID <= 0 || in.BookID <= 0 {
		return ReviewResponse{}, false, ErrInvalid("member_id and book_id must be > 0")
	}

	ok, err := s.store.MemberExists(ctx, in.MemberID)
	if err != nil {
		return ReviewResponse{}, false, err
	}
	if !ok {
		return ReviewResponse{}, false, ErrInvalid("member does not exist")
	}
	ok, err = s.store.BookExists(ctx, in.BookID)
	if err != nil {
		return ReviewResponse{}, false, err
	}
	if !ok {
		return ReviewResponse{}, false, ErrInvalid("book does not exist")
	}

	warned := in.Rating < 1 || in.Rating > 5
	if warned {
		log.Printf("[WARN] review rating %d is outside 1-5 (member=%d book=%d), storing anyway",
			in.Rating, in.MemberID, in.BookID)
	}

	id, err := s.store.Insert(ctx, in.MemberID, in.BookID, in.Text, in.Rating)
	if err != nil {
		return ReviewResponse{}, warned, err
	}

	return ReviewResponse{
		ReviewID: id,
		MemberID: in.MemberID,
		BookID:   in.BookID,
		Text:     in.Text,
		Rating:   in.Rating,
	}, warned, nil
}

func (s *Service) ListReviewsForBook(ctx context.Context, bookID int64) ([]ReviewResponse, error) {
	items, err := s.store.ListForBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return buildResponses(items), nil
}

func (s *Service) ListReviewsByMember(ctx context.Context, memberID int64) ([]ReviewResponse, error) {
	items, err := s.store.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return buildResponses(items), nil
}

func buildResponses(items []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, r := range items {
		resp := ReviewResponse{
			ReviewID: r.ReviewID,
			MemberID: r.MemberID,
			BookID:   r.BookID,
			Text:     r.Text,
			Rating:   r.Rating,
		}
		if r.BookTitle.Valid {
			v := r.BookTitle.String
			resp.BookTitle = &v
		}
		out = append(out, resp)
	}
	return out
}
