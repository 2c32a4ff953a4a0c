package ratings

// 評価レスポンス。
// average はレビューが無いとき 0 になるが、本当に平均0なのかレビュー0件
// なのかは review_count で区別できる
type RatingResponse struct {
	Average     int `json:"average"`
	ReviewCount int `json:"review_count"`
}

type GenresResponse struct {
	Genres []string `json:"genres"`
}

type ReviewCountResponse struct {
	ReviewCount int `json:"review_count"`
}
