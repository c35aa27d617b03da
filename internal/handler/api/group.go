package api

import (
	"net/http"
	"strconv"

	resdto "tripmatch/internal/handler/dto/response"
	"tripmatch/internal/handler/httperr"
	"tripmatch/internal/handler/middleware"
	"tripmatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupHandler struct {
	groups  queries.GroupQueries
	pending queries.PendingQueries
}

func NewGroupHandler(groups queries.GroupQueries, pending queries.PendingQueries) *GroupHandler {
	return &GroupHandler{groups: groups, pending: pending}
}

// @Summary List my groups
// @Description Groups the caller belongs to, newest first, with keyset pagination
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/groups [get]
func (h *GroupHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.groups.ListForMember(c.Request.Context(), principal.UserID(), cursor, limit)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	items, err := resdto.FromGroupViews(views)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	resp := gin.H{"groups": items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get group
// @Description A group the caller belongs to; other groups are reported as not found
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/groups/{id} [get]
func (h *GroupHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid id",
			resdto.ValidationDetail{Field: "id", Reason: "invalid_range"})
		return
	}

	view, err := h.groups.GetForMember(c.Request.Context(), id, principal.UserID())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	resp, err := resdto.FromGroupView(view)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my pending submissions
// @Description Submissions still waiting for peers, oldest first
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/pending [get]
func (h *GroupHandler) ListPending(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	views, err := h.pending.ListForUser(c.Request.Context(), principal.UserID())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	items, err := resdto.FromPendingViews(views)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": items})
}
