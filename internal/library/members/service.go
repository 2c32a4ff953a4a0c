package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ===== Error model (authors/books/reviews と同型) =====
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

func (s *Service) CreateMember(ctx context.Context, in CreateMemberRequest) (MemberResponse, error) {
	// 氏名はNFCに正規化してから保存（LIKE検索が結合文字の揺れで外れないように）
	name := norm.NFC.String(strings.TrimSpace(in.FullName))
	if name == "" {
		return MemberResponse{}, ErrInvalid("full_name is required")
	}

	id, err := s.store.Insert(ctx, name)
	if err != nil {
		return MemberResponse{}, err
	}
	return MemberResponse{MemberID: id, FullName: name}, nil
}

func (s *Service) GetMember(ctx context.Context, id int64) (MemberResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return MemberResponse{}, err
	}
	return MemberResponse{MemberID: m.MemberID, FullName: m.FullName}, nil
}

// 名前検索。SQLのLIKEワイルドカード（% _）をそのまま受け付け、最初の1件を返す
func (s *Service) FindMemberByNamePattern(ctx context.Context, pattern string) (MemberResponse, error) {
	pattern = norm.NFC.String(pattern)
	if strings.TrimSpace(pattern) == "" {
		return MemberResponse{}, ErrInvalid("pattern is required")
	}
	m, err := s.store.FindByNamePattern(ctx, pattern)
	if err != nil {
		return MemberResponse{}, err
	}
	return MemberResponse{MemberID: m.MemberID, FullName: m.FullName}, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]MemberResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MemberResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MemberResponse{MemberID: m.MemberID, FullName: m.FullName})
	}
	return out, nil
}

func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound("member not found")
	}
	return nil
}
