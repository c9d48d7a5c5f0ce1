package api

import (
	"net/http"

	reqdto "iwparking/internal/handler/dto/request"
	resdto "iwparking/internal/handler/dto/response"
	"iwparking/internal/handler/middleware"
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleCommands commands.VehicleCommands
	vehicleQueries  queries.VehicleQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleCommands: vehicleCommands,
		vehicleQueries:  vehicleQueries,
	}
}

// @Summary Register vehicle
// @Description Add a vehicle to the current user's garage
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternal(c)
		return
	}

	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.vehicleCommands.Register(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary List vehicles
// @Description List the current user's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) GetUserVehicles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternal(c)
		return
	}

	views, err := h.vehicleQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]*resdto.VehicleResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromVehicleView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Make vehicle primary
// @Description Mark a vehicle as the user's primary one
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/primary [post]
func (h *VehicleHandler) MakePrimary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternal(c)
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	if err := h.vehicleCommands.MakePrimary(c.Request.Context(), vehicleID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove vehicle
// @Description Remove a vehicle from the user's garage
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) RemoveVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternal(c)
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	if err := h.vehicleCommands.Remove(c.Request.Context(), vehicleID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
