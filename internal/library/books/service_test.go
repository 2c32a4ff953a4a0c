package books

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"booklibrary-backend/internal/library/testdb"
)

func seedAuthor(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO authors (full_name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("seed author: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func seedMember(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO members (full_name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func TestCreateBookRequiresExistingAuthor(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	_, err := svc.CreateBook(context.Background(), CreateBookRequest{
		Title: "Dune", AuthorID: 42, Genre: "Science Fiction", Year: 1965,
	})
	var api *APIError
	if !errors.As(err, &api) || api.Code != CodeInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for missing author, got %v", err)
	}
}

func TestCreateAndGetBook(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	authorID := seedAuthor(t, db, "Frank Herbert")

	created, err := svc.CreateBook(ctx, CreateBookRequest{
		Title: "Dune", AuthorID: authorID, Genre: "Science Fiction", Year: 1965,
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if created.BookID <= 0 {
		t.Fatalf("expected positive book_id, got %d", created.BookID)
	}

	got, err := svc.GetBook(ctx, created.BookID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "Dune" || got.AuthorID != authorID || got.Genre != "Science Fiction" || got.Year != 1965 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.ReservedBy != nil {
		t.Errorf("new book must not be reserved, reserved_by=%d", *got.ReservedBy)
	}
}

func TestListBooksByAuthor(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	herbert := seedAuthor(t, db, "Frank Herbert")
	leguin := seedAuthor(t, db, "Ursula K. Le Guin")

	for _, b := range []CreateBookRequest{
		{Title: "Dune", AuthorID: herbert, Genre: "Science Fiction", Year: 1965},
		{Title: "Dune Messiah", AuthorID: herbert, Genre: "Science Fiction", Year: 1969},
		{Title: "The Dispossessed", AuthorID: leguin, Genre: "Science Fiction", Year: 1974},
	} {
		if _, err := svc.CreateBook(ctx, b); err != nil {
			t.Fatalf("CreateBook(%q): %v", b.Title, err)
		}
	}

	all, err := svc.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 books total, got %d", len(all))
	}

	byHerbert, err := svc.ListBooksByAuthor(ctx, herbert)
	if err != nil {
		t.Fatalf("ListBooksByAuthor: %v", err)
	}
	if len(byHerbert) != 2 {
		t.Fatalf("expected 2 books for author, got %d", len(byHerbert))
	}
	for _, b := range byHerbert {
		if b.AuthorID != herbert {
			t.Errorf("filter leaked book %q (author_id=%d)", b.Title, b.AuthorID)
		}
	}
}

// 蔵書削除のあともレビューと予約履歴は残る
func TestDeleteBookKeepsReviewsAndHistory(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	authorID := seedAuthor(t, db, "Frank Herbert")
	memberID := seedMember(t, db, "Paul Atreides")

	b, err := svc.CreateBook(ctx, CreateBookRequest{
		Title: "Dune", AuthorID: authorID, Genre: "Science Fiction", Year: 1965,
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO reviews (member_id, book_id, text, rating) VALUES (?, ?, 'classic', 5)`,
		memberID, b.BookID); err != nil {
		t.Fatalf("seed review: %v", err)
	}
	if _, err := db.Exec(`
	INSERT INTO reservation_records (reservation_ulid, member_id, book_id, reserved_at, returned_at)
	VALUES ('01HXXXXXXXXXXXXXXXXXXXXXXX', ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		memberID, b.BookID); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	if err := svc.DeleteBook(ctx, b.BookID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}

	var reviews, records int
	if err := db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE book_id = ?`, b.BookID).Scan(&reviews); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM reservation_records WHERE book_id = ?`, b.BookID).Scan(&records); err != nil {
		t.Fatal(err)
	}
	if reviews != 1 || records != 1 {
		t.Errorf("expected orphans to remain (reviews=%d, records=%d)", reviews, records)
	}

	_, err = svc.GetBook(ctx, b.BookID)
	var api *APIError
	if !errors.As(err, &api) || api.Code != CodeNotFound {
		t.Errorf("expected NOT_FOUND after delete, got %v", err)
	}
}

func TestGetBookDetail(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	authorID := seedAuthor(t, db, "Frank Herbert")
	memberID := seedMember(t, db, "Paul Atreides")

	b, err := svc.CreateBook(ctx, CreateBookRequest{
		Title: "Dune", AuthorID: authorID, Genre: "Science Fiction", Year: 1965,
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	// 平均4.5 → 切り捨てで4になる
	for _, r := range []int{5, 4} {
		if _, err := db.Exec(`INSERT INTO reviews (member_id, book_id, text, rating) VALUES (?, ?, '', ?)`,
			memberID, b.BookID, r); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}
	if _, err := db.Exec(`UPDATE books SET reserved_by = ? WHERE id = ?`, memberID, b.BookID); err != nil {
		t.Fatalf("seed reservation cache: %v", err)
	}

	d, err := svc.GetBookDetail(ctx, b.BookID)
	if err != nil {
		t.Fatalf("GetBookDetail: %v", err)
	}
	if d.AuthorName != "Frank Herbert" {
		t.Errorf("author_name: got %q", d.AuthorName)
	}
	if d.ReservedByName == nil || *d.ReservedByName != "Paul Atreides" {
		t.Errorf("reserved_by_name: got %v", d.ReservedByName)
	}
	if d.AverageRating != 4 {
		t.Errorf("average_rating: got %d, want 4 (truncated from 4.5)", d.AverageRating)
	}
	if d.ReviewCount != 2 {
		t.Errorf("review_count: got %d, want 2", d.ReviewCount)
	}
}

func TestGetBookDetailNoReviews(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	authorID := seedAuthor(t, db, "Frank Herbert")
	b, err := svc.CreateBook(ctx, CreateBookRequest{
		Title: "Dune", AuthorID: authorID, Genre: "Science Fiction", Year: 1965,
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	d, err := svc.GetBookDetail(ctx, b.BookID)
	if err != nil {
		t.Fatalf("GetBookDetail: %v", err)
	}
	if d.AverageRating != 0 || d.ReviewCount != 0 {
		t.Errorf("expected 0/0 for no reviews, got avg=%d count=%d", d.AverageRating, d.ReviewCount)
	}
	if d.ReservedByName != nil {
		t.Errorf("expected nil reserved_by_name, got %q", *d.ReservedByName)
	}
}
