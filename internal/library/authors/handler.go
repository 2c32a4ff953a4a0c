package authors

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/authors", h.CreateAuthor)
	r.GET("/authors", h.ListAuthors)
	r.GET("/authors/:author_id", h.GetAuthor)
	r.DELETE("/authors/:author_id", h.DeleteAuthor)
}

// CreateAuthor godoc
// @Summary 著者登録
// @Tags authors
// @Accept json
// @Produce json
// @Param body body CreateAuthorRequest true "author"
// @Success 201 {object} AuthorResponse
// @Router /authors [post]
func (h *Handler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.CreateAuthor(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.Header("Location", "/authors/"+strconv.FormatInt(res.AuthorID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetAuthor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("author_id must be a number"))
		return
	}
	res, err := h.svc.GetAuthor(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListAuthors(c *gin.Context) {
	items, err := h.svc.ListAuthors(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) DeleteAuthor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("author_id must be a number"))
		return
	}
	if err := h.svc.DeleteAuthor(c.Request.Context(), id); err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
