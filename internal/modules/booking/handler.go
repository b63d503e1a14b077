package booking

import (
	"errors"
	"net/http"

	"tripdesk/internal/domain"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts all booking endpoints; every one of them requires a
// bearer token, so the group is expected to carry the auth middleware.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	bookings := protected.Group("/bookings")
	{
		bookings.POST("/flight", h.BookFlight)
		bookings.POST("/hotel", h.BookHotel)
		bookings.POST("/cab", h.BookCab)
		bookings.GET("/my-trips", h.MyTrips)
		bookings.POST("/:category/:reference/cancel", h.Cancel)
		bookings.POST("/:category/:reference/payment", h.SetPayment)
	}
}

func (h *Handler) BookFlight(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
		return
	}

	b, err := h.service.BookFlight(c.Request.Context(), userID, req)
	if err != nil {
		h.writeBookingError(c, err, "Flight not found")
		return
	}

	response.JSON(c, http.StatusCreated, BookingResponse{
		Message: "Flight booking created successfully",
		Booking: b,
	})
}

func (h *Handler) BookHotel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
		return
	}

	b, err := h.service.BookHotel(c.Request.Context(), userID, req)
	if err != nil {
		h.writeBookingError(c, err, "Hotel not found")
		return
	}

	response.JSON(c, http.StatusCreated, BookingResponse{
		Message: "Hotel booking created successfully",
		Booking: b,
	})
}

func (h *Handler) BookCab(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookCabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
		return
	}

	b, err := h.service.BookCab(c.Request.Context(), userID, req)
	if err != nil {
		h.writeBookingError(c, err, "Booking not found")
		return
	}

	response.JSON(c, http.StatusCreated, BookingResponse{
		Message: "Cab booking created successfully",
		Booking: b,
	})
}

func (h *Handler) MyTrips(c *gin.Context) {
	userID := c.GetInt64("user_id")

	trips, err := h.service.MyTrips(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	response.JSON(c, http.StatusOK, trips)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	category := domain.BookingCategory(c.Param("category"))
	ref := c.Param("reference")

	b, err := h.service.Cancel(c.Request.Context(), userID, category, ref)
	if err != nil {
		h.writeBookingError(c, err, "Booking not found")
		return
	}

	response.JSON(c, http.StatusOK, BookingResponse{
		Message: "Booking cancelled",
		Booking: b,
	})
}

func (h *Handler) SetPayment(c *gin.Context) {
	userID := c.GetInt64("user_id")
	category := domain.BookingCategory(c.Param("category"))
	ref := c.Param("reference")

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Payment status must be completed or failed")
		return
	}

	b, err := h.service.SetPayment(c.Request.Context(), userID, category, ref, domain.PaymentStatus(req.Status))
	if err != nil {
		h.writeBookingError(c, err, "Booking not found")
		return
	}

	response.JSON(c, http.StatusOK, BookingResponse{
		Message: "Payment status updated",
		Booking: b,
	})
}

func (h *Handler) writeBookingError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "Booking belongs to another user")
	case errors.Is(err, ErrSeatsUnavailable):
		response.Error(c, http.StatusConflict, "Not enough seats available")
	case errors.Is(err, ErrRoomsUnavailable):
		response.Error(c, http.StatusConflict, "Not enough rooms available")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "Invalid status transition")
	default:
		response.Error(c, http.StatusInternalServerError, "Booking failed")
	}
}
