package authors

import (
	"context"
	"errors"
	"testing"

	"booklibrary-backend/internal/library/testdb"
)

func TestCreateAndGetAuthor(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	created, err := svc.CreateAuthor(ctx, CreateAuthorRequest{FullName: "  Jane Doe  "})
	if err != nil {
		t.Fatalf("CreateAuthor: %v", err)
	}
	if created.AuthorID <= 0 {
		t.Fatalf("expected positive author_id, got %d", created.AuthorID)
	}
	if created.FullName != "Jane Doe" {
		t.Errorf("expected trimmed name, got %q", created.FullName)
	}

	got, err := svc.GetAuthor(ctx, created.AuthorID)
	if err != nil {
		t.Fatalf("GetAuthor: %v", err)
	}
	if got.FullName != "Jane Doe" {
		t.Errorf("round trip: got %q, want %q", got.FullName, "Jane Doe")
	}
}

func TestCreateAuthorValidation(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAuthor(context.Background(), CreateAuthorRequest{FullName: tt.in})
			var api *APIError
			if !errors.As(err, &api) || api.Code != CodeInvalidArgument {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

func TestListAuthorsKeepsInsertionOrder(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	names := []string{"Frank Herbert", "Ursula K. Le Guin", "Stanislaw Lem"}
	for _, n := range names {
		if _, err := svc.CreateAuthor(ctx, CreateAuthorRequest{FullName: n}); err != nil {
			t.Fatalf("CreateAuthor(%q): %v", n, err)
		}
	}

	items, err := svc.ListAuthors(ctx)
	if err != nil {
		t.Fatalf("ListAuthors: %v", err)
	}
	if len(items) != len(names) {
		t.Fatalf("expected %d authors, got %d", len(names), len(items))
	}
	for i, n := range names {
		if items[i].FullName != n {
			t.Errorf("items[%d]: got %q, want %q", i, items[i].FullName, n)
		}
	}
}

// 著者削除はその著者のbooksを巻き込んで消すが、reviewsは孤児として残る
func TestDeleteAuthorCascadesBooksButKeepsReviews(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	a, err := svc.CreateAuthor(ctx, CreateAuthorRequest{FullName: "Frank Herbert"})
	if err != nil {
		t.Fatalf("CreateAuthor: %v", err)
	}

	res, err := db.Exec(`INSERT INTO books (title, author_id, genre, year) VALUES (?, ?, ?, ?)`,
		"Dune", a.AuthorID, "Science Fiction", 1965)
	if err != nil {
		t.Fatalf("seed book: %v", err)
	}
	bookID, _ := res.LastInsertId()
	if _, err := db.Exec(`INSERT INTO books (title, author_id, genre, year) VALUES (?, ?, ?, ?)`,
		"Dune Messiah", a.AuthorID, "Science Fiction", 1969); err != nil {
		t.Fatalf("seed book: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO reviews (member_id, book_id, text, rating) VALUES (1, ?, 'great', 5)`, bookID); err != nil {
		t.Fatalf("seed review: %v", err)
	}

	if err := svc.DeleteAuthor(ctx, a.AuthorID); err != nil {
		t.Fatalf("DeleteAuthor: %v", err)
	}

	var books int
	if err := db.QueryRow(`SELECT COUNT(*) FROM books WHERE author_id = ?`, a.AuthorID).Scan(&books); err != nil {
		t.Fatal(err)
	}
	if books != 0 {
		t.Errorf("expected author's books to be deleted, %d remain", books)
	}

	var reviews int
	if err := db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE book_id = ?`, bookID).Scan(&reviews); err != nil {
		t.Fatal(err)
	}
	if reviews != 1 {
		t.Errorf("expected orphaned review to remain, got %d", reviews)
	}

	_, err = svc.GetAuthor(ctx, a.AuthorID)
	var api *APIError
	if !errors.As(err, &api) || api.Code != CodeNotFound {
		t.Errorf("expected NOT_FOUND after delete, got %v", err)
	}
}

func TestDeleteAuthorNotFound(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	err := svc.DeleteAuthor(context.Background(), 9999)
	var api *APIError
	if !errors.As(err, &api) || api.Code != CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
