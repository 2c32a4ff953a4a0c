package authors

// 著者登録リクエスト
type CreateAuthorRequest struct {
	FullName string `json:"full_name" binding:"required"`
}

// 著者レスポンス
type AuthorResponse struct {
	AuthorID int64  `json:"author_id"`
	FullName string `json:"full_name"`
}
