package reviews

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/reviews", h.CreateReview)
	r.GET("/books/:book_id/reviews", h.ListForBook)
	r.GET("/members/:member_id/reviews", h.ListByMember)
}

// CreateReview godoc
// @Summary レビュー登録
// @Tags reviews
// @Accept json
// @Produce json
// @Param body body CreateReviewRequest true "review"
// @Success 201 {object} ReviewResponse
// @Router /reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json or missing required fields"))
		return
	}
	res, warned, err := h.svc.CreateReview(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	body := gin.H{"review": res}
	if warned {
		body["warning"] = "rating is outside 1-5"
	}
	c.JSON(http.StatusCreated, body)
}

func (h *Handler) ListForBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	items, err := h.svc.ListReviewsForBook(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) ListByMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("member_id must be a number"))
		return
	}
	items, err := h.svc.ListReviewsByMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
