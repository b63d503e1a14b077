package catalog

import (
	"errors"
	"net/http"

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
	api.GET("/airlines", h.Airlines)
	api.GET("/airports", h.Airports)
	api.GET("/buses/search", h.SearchBuses)
	api.GET("/trains/search", h.SearchTrains)
	api.GET("/packages", h.Packages)
}

func (h *Handler) Airlines(c *gin.Context) {
	airlines, err := h.service.Airlines(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch airlines")
		return
	}
	response.JSON(c, http.StatusOK, airlines)
}

func (h *Handler) Airports(c *gin.Context) {
	airports, err := h.service.Airports(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch airports")
		return
	}
	response.JSON(c, http.StatusOK, airports)
}

func (h *Handler) SearchBuses(c *gin.Context) {
	routes, err := h.service.SearchBuses(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "From and to cities are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Bus search failed")
		return
	}
	response.JSON(c, http.StatusOK, routes)
}

func (h *Handler) SearchTrains(c *gin.Context) {
	routes, err := h.service.SearchTrains(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "From and to stations are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Train search failed")
		return
	}
	response.JSON(c, http.StatusOK, routes)
}

func (h *Handler) Packages(c *gin.Context) {
	packages, err := h.service.Packages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch holiday packages")
		return
	}
	response.JSON(c, http.StatusOK, packages)
}
