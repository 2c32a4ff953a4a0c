package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// ===== Error model (authors/members/reviews と同型) =====
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

func (s *Service) CreateBook(ctx context.Context, in CreateBookRequest) (BookResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Genre) == "" {
		return BookResponse{}, ErrInvalid("title and genre are required")
	}
	if in.AuthorID <= 0 {
		return BookResponse{}, ErrInvalid("author_id must be > 0")
	}

	// 著者の存在を先に確認する（FK違反を400に倒すため）
	ok, err := s.store.AuthorExists(ctx, in.AuthorID)
	if err != nil {
		return BookResponse{}, err
	}
	if !ok {
		return BookResponse{}, ErrInvalid("author does not exist")
	}

	id, err := s.store.Insert(ctx, strings.TrimSpace(in.Title), in.AuthorID, strings.TrimSpace(in.Genre), in.Year)
	if err != nil {
		// 存在確認と INSERT の間で著者が消された場合はFKエラーで返る
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1452 {
			return BookResponse{}, ErrInvalid("author does not exist")
		}
		return BookResponse{}, err
	}

	return BookResponse{
		BookID:   id,
		Title:    strings.TrimSpace(in.Title),
		AuthorID: in.AuthorID,
		Genre:    strings.TrimSpace(in.Genre),
		Year:     in.Year,
	}, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (BookResponse, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return BookResponse{}, err
	}
	return buildBookResponse(b), nil
}

// GetBookDetail: 詳細ダイアログ相当。著者名・予約会員名・平均評価込み
func (s *Service) GetBookDetail(ctx context.Context, id int64) (BookDetailResponse, error) {
	d, err := s.store.GetDetail(ctx, id)
	if err != nil {
		return BookDetailResponse{}, err
	}

	out := BookDetailResponse{
		BookResponse: buildBookResponse(&d.Book),
		AuthorName:   d.AuthorName,
		ReviewCount:  d.ReviewCount,
	}
	if d.ReservedByName.Valid {
		v := d.ReservedByName.String
		out.ReservedByName = &v
	}
	if d.AvgRating.Valid {
		// 元実装に合わせて小数は切り捨て
		out.AverageRating = int(d.AvgRating.Float64)
	}
	return out, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]BookResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildBookResponses(items), nil
}

func (s *Service) ListBooksByAuthor(ctx context.Context, authorID int64) ([]BookResponse, error) {
	items, err := s.store.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return buildBookResponses(items), nil
}

// 蔵書削除。予約状態とは無関係に消せる。reviews/reservation_recordsは残る
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound("book not found")
	}
	return nil
}

func buildBookResponse(b *Book) BookResponse {
	resp := BookResponse{
		BookID:   b.BookID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Genre:    b.Genre,
		Year:     b.Year,
	}
	if b.ReservedBy.Valid {
		v := b.ReservedBy.Int64
		resp.ReservedBy = &v
	}
	return resp
}

func buildBookResponses(items []Book) []BookResponse {
	out := make([]BookResponse, 0, len(items))
	for i := range items {
		out = append(out, buildBookResponse(&items[i]))
	}
	return out
}
