package search

import (
	"errors"
	"net/http"
	"strconv"

	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	flights := api.Group("/flights")
	{
		flights.GET("/search", h.SearchFlights)
		flights.GET("/:id", h.GetFlight)
	}
	hotels := api.Group("/hotels")
	{
		hotels.GET("/search", h.SearchHotels)
		hotels.GET("/:id", h.GetHotel)
	}
}

func (h *Handler) SearchFlights(c *gin.Context) {
	var q FlightSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	flights, err := h.service.SearchFlights(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "From, to, and departure date are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Flight search failed")
		return
	}

	response.JSON(c, http.StatusOK, flights)
}

func (h *Handler) GetFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	flight, err := h.service.GetFlight(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Flight not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch flight details")
		return
	}

	response.JSON(c, http.StatusOK, flight)
}

func (h *Handler) SearchHotels(c *gin.Context) {
	var q HotelSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	hotels, err := h.service.SearchHotels(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "City, check-in, and check-out dates are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Hotel search failed")
		return
	}

	response.JSON(c, http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid hotel id")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch hotel details")
		return
	}

	response.JSON(c, http.StatusOK, hotel)
}
