package api

import (
	"context"
	"log/slog"
	"net/http"

	"tripmatch/internal/domain/trip"
	resdto "tripmatch/internal/handler/dto/response"
	"tripmatch/internal/handler/httperr"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/commands"
	"tripmatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is sent with transient_conflict responses.
const retryAfterSeconds = "1"

func abortWithMatchError(c *gin.Context, err error) {
	var verr *trip.ValidationError
	switch {
	case errs.As(err, &verr):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid submission",
			resdto.ValidationDetail{Field: verr.Field, Reason: string(verr.Kind)})
	case errs.Is(err, trip.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid submission", nil)
	case errs.Is(err, commands.ErrDuplicateSubmission):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeDuplicate, err,
			"A pending submission with the same criteria already exists", nil)
	case errs.Is(err, commands.ErrTransientConflict), errs.Is(err, context.DeadlineExceeded):
		c.Header("Retry-After", retryAfterSeconds)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, httperr.CodeTransientConflict, err,
			"Too much concurrent activity, please retry", nil)
	case errs.Is(err, commands.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Unauthorized", nil)
	case errs.Is(err, commands.ErrIdentityMismatch):
		httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeIdentityMismatch, err,
			"Submission user does not match the authenticated user", nil)
	default:
		// an invalid group lands here too; its reason is logged by the matcher, never returned
		slog.ErrorContext(c.Request.Context(), "match failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
	}
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrGroupNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeNotFound, err, "Group not found", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid cursor",
			resdto.ValidationDetail{Field: "after", Reason: string(trip.KindInvalidRange)})
	default:
		slog.ErrorContext(c.Request.Context(), "query failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
	}
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
}
