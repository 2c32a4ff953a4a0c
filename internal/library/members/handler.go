package members

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/members", h.CreateMember)
	r.GET("/members", h.ListMembers)
	// searchを:member_idより先に登録する（ginは同一プレフィックスのstatic優先だが明示しておく）
	r.GET("/members/search", h.SearchMember)
	r.GET("/members/:member_id", h.GetMember)
	r.DELETE("/members/:member_id", h.DeleteMember)
}

// CreateMember godoc
// @Summary 会員登録
// @Tags members
// @Accept json
// @Produce json
// @Param body body CreateMemberRequest true "member"
// @Success 201 {object} MemberResponse
// @Router /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.CreateMember(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.Header("Location", "/members/"+strconv.FormatInt(res.MemberID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("member_id must be a number"))
		return
	}
	res, err := h.svc.GetMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /members/search?pattern=山田%
func (h *Handler) SearchMember(c *gin.Context) {
	pattern := c.Query("pattern")
	res, err := h.svc.FindMemberByNamePattern(c.Request.Context(), pattern)
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListMembers(c *gin.Context) {
	items, err := h.svc.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) DeleteMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrInvalid("member_id must be a number"))
		return
	}
	if err := h.svc.DeleteMember(c.Request.Context(), id); err != nil {
		c.JSON(toHTTPStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
