package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "servemart/internal/handler/dto/response"
	"servemart/internal/handler/httperr"
	"servemart/internal/handler/middleware"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"
	"servemart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	views   queries.BookingQueries
	sweeper commands.SweeperCommands
}

func NewProfileHandler(views queries.BookingQueries, sweeper commands.SweeperCommands) *ProfileHandler {
	return &ProfileHandler{views: views, sweeper: sweeper}
}

// @Summary Profile
// @Description Role-dependent profile aggregate with booking lists and slot counts
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Sweep first so the lists never show stale past-slot bookings. A sweep
	// failure degrades to a slightly stale profile rather than an error page.
	if _, err := h.sweeper.SweepExpired(c.Request.Context()); err != nil {
		slog.Warn("expiry sweep failed before profile load", "error", err.Error())
	}

	view, err := h.views.Profile(c.Request.Context(), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
