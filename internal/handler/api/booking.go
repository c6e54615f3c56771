package api

import (
	"context"
	"errors"
	"net/http"

	"servemart/internal/domain/booking"
	"servemart/internal/domain/user"
	reqdto "servemart/internal/handler/dto/request"
	resdto "servemart/internal/handler/dto/response"
	"servemart/internal/handler/httperr"
	"servemart/internal/handler/middleware"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"
	"servemart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings commands.BookingCommands
	views    queries.BookingQueries
}

func NewBookingHandler(bookings commands.BookingCommands, views queries.BookingQueries) *BookingHandler {
	return &BookingHandler{bookings: bookings, views: views}
}

// @Summary Create booking
// @Description Book a service slot; responds with how many confirmed paid bookings the slot now holds
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookings.Create(c.Request.Context(), userID, commands.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, errs.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date or time format",
			})
		case errors.Is(err, errs.ErrInsufficientLeadTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bookings require at least one full day of lead time",
			})
		case errors.Is(err, errs.ErrDuplicateActiveBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An active booking for this service already exists",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.views.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel own booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.bookings.Cancel, "Booking cancelled")
}

// @Summary Approve booking
// @Description Provider approves a pending booking request
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	h.transition(c, h.bookings.Approve, "Booking approved")
}

// @Summary Confirm booking
// @Description Provider confirms a booking directly from the manage view
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	count, err := h.bookings.ConfirmDirectly(c.Request.Context(), userID, id)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Booking confirmed",
		"slot_count": count,
	})
}

// @Summary Reject booking
// @Description Provider rejects a pending booking request
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.transition(c, h.bookings.Reject, "Booking rejected")
}

// @Summary Slot count
// @Description Count confirmed paid bookings for a service slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param service_id query string true "Service ID"
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Param time query string true "Slot time (HH:MM)"
// @Success 200 {object} resdto.SlotCountResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/slot-count [get]
func (h *BookingHandler) SlotCount(c *gin.Context) {
	var req reqdto.SlotCountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}
	timeOfDay, err := booking.ParseTimeOfDay(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time format",
		})
		return
	}

	count, err := h.views.SlotCount(c.Request.Context(), serviceID, date, timeOfDay)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, &resdto.SlotCountResponse{
		ServiceID: serviceID,
		Date:      date.String(),
		Time:      timeOfDay.String(),
		Total:     count,
	})
}

// @Summary Slot summary
// @Description Per-slot counts of confirmed paid bookings across services
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotSummaryResponse
// @Router /bookings/slot-summary [get]
func (h *BookingHandler) SlotSummary(c *gin.Context) {
	rows, err := h.views.SlotSummary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotSummaryRows(rows))
}

// @Summary List bookings
// @Description List own bookings; clients see bookings they made, providers see requests for their services
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)

	var (
		items []*queries.BookingListItem
		err   error
	)
	if role == user.RoleProvider {
		items, err = h.views.ListByProvider(c.Request.Context(), userID)
	} else {
		items, err = h.views.ListByClient(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, bookingID uuid.UUID) error, okMsg string) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := op(c.Request.Context(), userID, id); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking status does not allow this action",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
