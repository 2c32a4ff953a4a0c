package books

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/books", h.CreateBook)
	r.GET("/books", h.ListBooks)
	r.GET("/books/:book_id", h.GetBook)
	r.GET("/books/:book_id/detail", h.GetBookDetail)
	r.DELETE("/books/:book_id", h.DeleteBook)
}

// CreateBook godoc
// @Summary 蔵書登録
// @Tags books
// @Accept json
// @Produce json
// @Param body body CreateBookRequest true "book"
// @Success 201 {object} BookResponse
// @Router /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json or missing required fields"))
		return
	}
	res, err := h.svc.CreateBook(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.Header("Location", "/books/"+strconv.FormatInt(res.BookID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	res, err := h.svc.GetBook(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetBookDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	res, err := h.svc.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /books?author_id= で著者絞り込み
func (h *Handler) ListBooks(c *gin.Context) {
	if v := c.Query("author_id"); v != "" {
		authorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || authorID <= 0 {
			c.JSON(http.StatusBadRequest, ErrInvalid("author_id must be a number"))
			return
		}
		items, err := h.svc.ListBooksByAuthor(c.Request.Context(), authorID)
		if err != nil {
			c.JSON(toHTTPStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
		return
	}

	items, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	if err := h.svc.DeleteBook(c.Request.Context(), id); err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
