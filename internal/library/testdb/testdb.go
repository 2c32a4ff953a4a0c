// Package testdb はストア/サービステスト用のインメモリSQLiteを用意する。
// 本番はMySQLだが、SQLは両方で動く書き方にしてあるのでテストはSQLiteで回す。
package testdb

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// schema.sql と同じ形をSQLite方言で再現したもの
const ddl = `
CREATE TABLE authors (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL
);

CREATE TABLE members (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL
);

CREATE TABLE books (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    author_id   INTEGER NOT NULL,
    genre       TEXT NOT NULL,
    year        INTEGER NOT NULL,
    reserved_by INTEGER
);

CREATE TABLE reviews (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER NOT NULL,
    book_id   INTEGER NOT NULL,
    text      TEXT NOT NULL,
    rating    INTEGER NOT NULL
);

CREATE TABLE reservation_records (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    reservation_ulid TEXT NOT NULL UNIQUE,
    member_id        INTEGER NOT NULL,
    book_id          INTEGER NOT NULL,
    reserved_at      TIMESTAMP NOT NULL,
    returned_at      TIMESTAMP
);

CREATE TABLE librarian_accounts (
    id            TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'librarian',
    is_disabled   INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open はスキーマ適用済みのインメモリDBを返す。クリーンアップはt.Cleanupで行う。
func Open(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: はコネクションごとに別DBになるので1本に固定する
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		t.Fatalf("apply schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
