package api

import (
	"net/http"
	"strings"

	"tripmatch/internal/domain/trip"
	reqdto "tripmatch/internal/handler/dto/request"
	resdto "tripmatch/internal/handler/dto/response"
	"tripmatch/internal/handler/httperr"
	"tripmatch/internal/handler/middleware"
	"tripmatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	cmds commands.MatchCommands
}

func NewMatchHandler(cmds commands.MatchCommands) *MatchHandler {
	return &MatchHandler{cmds: cmds}
}

// @Summary Submit trip criteria
// @Description Join a travel group with matching week, destination and interest, or wait in the pool
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MatchRequest true "Trip criteria"
// @Success 201 {object} resdto.MatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/trips/match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid request body", nil)
		return
	}
	if uid := strings.TrimSpace(req.UserID); uid != "" && uid != principal.UserID() {
		abortWithMatchError(c, commands.ErrIdentityMismatch)
		return
	}

	sub, err := trip.Validate(req.ToSubmission(principal.UserID()))
	if err != nil {
		abortWithMatchError(c, err)
		return
	}

	result, err := h.cmds.Match(c.Request.Context(), principal, sub)
	if err != nil {
		abortWithMatchError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMatchResult(result))
}
