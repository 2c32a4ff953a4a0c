package members

// 会員登録リクエスト
type CreateMemberRequest struct {
	FullName string `json:"full_name" binding:"required"`
}

// 会員レスポンス
type MemberResponse struct {
	MemberID int64  `json:"member_id"`
	FullName string `json:"full_name"`
}
