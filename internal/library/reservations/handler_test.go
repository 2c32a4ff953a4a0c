package reservations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"booklibrary-backend/internal/library/testdb"
)

func TestReservationEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t)
	svc := newTestService(db, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	// 空のDBなので book=1, member=1,2 になる
	seed(t, db)

	r := gin.New()
	RegisterRoutes(r, svc)

	post := func(path, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	get := func(path string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// 予約成立 → 201 + Location
	w := post("/reservations", `{"book_id":1,"member_id":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("reserve: got %d, body=%s", w.Code, w.Body.String())
	}
	var created ReservationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loc := w.Header().Get("Location"); loc != "/reservations/"+created.ReservationULID {
		t.Errorf("Location: got %q", loc)
	}

	// 二重予約 → 409
	w = post("/reservations", `{"book_id":1,"member_id":2}`)
	if w.Code != http.StatusConflict {
		t.Errorf("double reserve: got %d, want 409", w.Code)
	}

	// ULIDで取得 → 200
	w = get("/reservations/" + created.ReservationULID)
	if w.Code != http.StatusOK {
		t.Errorf("get by ulid: got %d", w.Code)
	}

	// 返却 → 200、returned が立つ
	w = post("/returns", `{"book_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("return: got %d, body=%s", w.Code, w.Body.String())
	}
	var returned ReservationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &returned); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !returned.Returned {
		t.Errorf("expected returned=true: %s", w.Body.String())
	}

	// 未予約の返却 → 409
	w = post("/returns", `{"book_id":1}`)
	if w.Code != http.StatusConflict {
		t.Errorf("return unreserved: got %d, want 409", w.Code)
	}

	// 必須フィールド欠け → 400
	w = post("/reservations", `{"book_id":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing member_id: got %d, want 400", w.Code)
	}

	// 履歴一覧のエンベロープ
	w = get("/books/1/reservations")
	if w.Code != http.StatusOK {
		t.Fatalf("book history: got %d", w.Code)
	}
	var env struct {
		Items []ReservationResponse `json:"items"`
		Total int                   `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Total != 1 || len(env.Items) != 1 {
		t.Errorf("expected 1 record, got total=%d items=%d", env.Total, len(env.Items))
	}
}
