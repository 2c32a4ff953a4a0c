package books

// 蔵書登録リクエスト
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	AuthorID int64  `json:"author_id" binding:"required"`
	Genre    string `json:"genre" binding:"required"`
	Year     int    `json:"year" binding:"required"`
}

// 蔵書レスポンス
type BookResponse struct {
	BookID     int64  `json:"book_id"`
	Title      string `json:"title"`
	AuthorID   int64  `json:"author_id"`
	Genre      string `json:"genre"`
	Year       int    `json:"year"`
	ReservedBy *int64 `json:"reserved_by,omitempty"`
}

// 蔵書詳細レスポンス（画面の詳細ダイアログ相当）
type BookDetailResponse struct {
	BookResponse
	AuthorName     string  `json:"author_name"`
	ReservedByName *string `json:"reserved_by_name,omitempty"`
	AverageRating  int     `json:"average_rating"`
	ReviewCount    int     `json:"review_count"`
}
