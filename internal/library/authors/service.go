package authors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ===== Error model (books/members/reviews と同型) =====
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

// 著者登録。氏名のuniquenessチェックはしない（同姓同名は別人として扱う）
func (s *Service) CreateAuthor(ctx context.Context, in CreateAuthorRequest) (AuthorResponse, error) {
	name := norm.NFC.String(strings.TrimSpace(in.FullName))
	if name == "" {
		return AuthorResponse{}, ErrInvalid("full_name is required")
	}

	id, err := s.store.Insert(ctx, name)
	if err != nil {
		return AuthorResponse{}, err
	}
	return AuthorResponse{AuthorID: id, FullName: name}, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (AuthorResponse, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return AuthorResponse{}, err
	}
	return AuthorResponse{AuthorID: a.AuthorID, FullName: a.FullName}, nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]AuthorResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AuthorResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AuthorResponse{AuthorID: a.AuthorID, FullName: a.FullName})
	}
	return out, nil
}

// 著者削除。著者のbooksも一緒に消える（reviews/reservation_recordsは残る）
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	n, err := s.store.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound("author not found")
	}
	return nil
}
