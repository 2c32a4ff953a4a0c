package reservations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// 1. 予約リソース
	r.POST("/reservations", h.CreateReservation)
	r.GET("/reservations", h.ListHistory)
	r.GET("/reservations/:reservation_ulid", h.GetReservation)

	// 2. 返却リソース（独立）
	r.POST("/returns", h.CreateReturn)

	// 3. 本・会員起点の履歴
	r.GET("/books/:book_id/reservations", h.ListForBook)
	r.GET("/members/:member_id/reservations", h.ListForMember)
}

// CreateReservation godoc
// @Summary 予約登録
// @Tags reservations
// @Accept json
// @Produce json
// @Param body body CreateReservationRequest true "reservation"
// @Success 201 {object} ReservationResponse
// @Router /reservations [post]
func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json or missing required fields"))
		return
	}

	res, err := h.svc.Reserve(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}

	c.Header("Location", "/reservations/"+res.ReservationULID)
	c.JSON(http.StatusCreated, res)
}

// CreateReturn godoc
// @Summary 返却登録
// @Tags reservations
// @Accept json
// @Produce json
// @Param body body CreateReturnRequest true "return"
// @Success 200 {object} ReservationResponse
// @Router /returns [post]
func (h *Handler) CreateReturn(c *gin.Context) {
	var req CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json"))
		return
	}

	res, err := h.svc.Return(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	if res == nil {
		// 履歴の無い予約を解除したケース。クリアだけ成立している
		c.JSON(http.StatusOK, gin.H{"message": "reservation cleared (no active record found)"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetReservation(c *gin.Context) {
	res, err := h.svc.GetReservationByULID(c.Request.Context(), c.Param("reservation_ulid"))
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListHistory(c *gin.Context) {
	items, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) ListForBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("book_id must be a number"))
		return
	}
	items, err := h.svc.ListHistoryForBook(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) ListForMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("member_id must be a number"))
		return
	}
	items, err := h.svc.ListHistoryForMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
