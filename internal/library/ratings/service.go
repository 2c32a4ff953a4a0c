package ratings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

// 本の平均評価。レビューが無ければ average=0, review_count=0。
// 平均は旧実装に合わせて小数切り捨ての整数
func (s *Service) AverageRatingForBook(ctx context.Context, bookID int64) (RatingResponse, error) {
	if bookID <= 0 {
		return RatingResponse{}, ErrInvalid("book_id must be > 0")
	}
	avg, count, err := s.store.AvgForBook(ctx, bookID)
	if err != nil {
		return RatingResponse{}, err
	}
	return buildRating(avg, count), nil
}

// 著者の平均評価（全著書のレビュー横断）
func (s *Service) AverageRatingForAuthor(ctx context.Context, authorID int64) (RatingResponse, error) {
	if authorID <= 0 {
		return RatingResponse{}, ErrInvalid("author_id must be > 0")
	}
	avg, count, err := s.store.AvgForAuthor(ctx, authorID)
	if err != nil {
		return RatingResponse{}, err
	}
	return buildRating(avg, count), nil
}

func (s *Service) GenresForAuthor(ctx context.Context, authorID int64) (GenresResponse, error) {
	if authorID <= 0 {
		return GenresResponse{}, ErrInvalid("author_id must be > 0")
	}
	genres, err := s.store.GenresForAuthor(ctx, authorID)
	if err != nil {
		return GenresResponse{}, err
	}
	return GenresResponse{Genres: genres}, nil
}

func (s *Service) ReviewCountForMember(ctx context.Context, memberID int64) (ReviewCountResponse, error) {
	if memberID <= 0 {
		return ReviewCountResponse{}, ErrInvalid("member_id must be > 0")
	}
	n, err := s.store.ReviewCountForMember(ctx, memberID)
	if err != nil {
		return ReviewCountResponse{}, err
	}
	return ReviewCountResponse{ReviewCount: n}, nil
}

func buildRating(avg sql.NullFloat64, count int) RatingResponse {
	out := RatingResponse{ReviewCount: count}
	if avg.Valid {
		out.Average = int(avg.Float64)
	}
	return out
}
