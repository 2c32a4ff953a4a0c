package reviews

// レビュー登録リクエスト
type CreateReviewRequest struct {
	MemberID int64  `json:"member_id" binding:"required"`
	BookID   int64  `json:"book_id" binding:"required"`
	Text     string `json:"text"`
	// requiredを付けると0が「未指定」扱いで弾かれてしまうので付けない
	Rating int `json:"rating"`
}

// レビューレスポンス
type ReviewResponse struct {
	ReviewID int64  `json:"review_id"`
	MemberID int64  `json:"member_id"`
	BookID   int64  `json:"book_id"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	// 対象のbookが消えている場合はnull（孤児レビューは残る仕様）
	BookTitle *string `json:"book_title,omitempty"`
}
