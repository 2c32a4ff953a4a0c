package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"booklibrary-backend/internal/library/testdb"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "admin"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tokenStr, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims["sub"] != "alice" || claims["role"] != "admin" {
		t.Errorf("claims: got sub=%v role=%v", claims["sub"], claims["role"])
	}
}

func TestLoginFailures(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		id, pass string
	}{
		{"wrong password", "alice", "wrong"},
		{"unknown id", "bob", "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.id, tt.pass); !errors.Is(err, ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := db.Exec(`UPDATE librarian_accounts SET is_disabled = 1 WHERE id = 'alice'`); err != nil {
		t.Fatalf("disable account: %v", err)
	}

	if _, err := svc.Login(ctx, "alice", "s3cret"); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed for disabled account, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Register(ctx, "alice", "other", "librarian"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestChangeID(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db, []byte(testSecret))
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "s3cret", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Register(ctx, "bob", "hunter2", "librarian"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ChangeID(ctx, "alice", "carol"); err != nil {
		t.Fatalf("ChangeID: %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "s3cret"); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("old id must stop working, got %v", err)
	}
	if _, err := svc.Login(ctx, "carol", "s3cret"); err != nil {
		t.Errorf("new id must work: %v", err)
	}

	if err := svc.ChangeID(ctx, "carol", "bob"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("taken id: expected ErrAlreadyExists, got %v", err)
	}
	if err := svc.ChangeID(ctx, "nobody", "dave"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: expected ErrNotFound, got %v", err)
	}
}
