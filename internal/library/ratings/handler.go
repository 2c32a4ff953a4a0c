package ratings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/books/:book_id/rating", h.BookRating)
	r.GET("/authors/:author_id/rating", h.AuthorRating)
	r.GET("/authors/:author_id/genres", h.AuthorGenres)
	r.GET("/members/:member_id/review-count", h.MemberReviewCount)
}

// BookRating godoc
// @Summary 本の平均評価
// @Tags ratings
// @Produce json
// @Param book_id path int true "book id"
// @Success 200 {object} RatingResponse
// @Router /books/{book_id}/rating [get]
func (h *Handler) BookRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	res, err := h.svc.AverageRatingForBook(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) AuthorRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("author_id must be a number"))
		return
	}
	res, err := h.svc.AverageRatingForAuthor(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) AuthorGenres(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("author_id must be a number"))
		return
	}
	res, err := h.svc.GenresForAuthor(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) MemberReviewCount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("member_id must be a number"))
		return
	}
	res, err := h.svc.ReviewCountForMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}
