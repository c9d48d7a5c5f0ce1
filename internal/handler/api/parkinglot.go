package api

import (
	"net/http"

	reqdto "iwparking/internal/handler/dto/request"
	resdto "iwparking/internal/handler/dto/response"
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParkingLotHandler struct {
	parkingLotCommands commands.ParkingLotCommands
	parkingLotQueries  queries.ParkingLotQueries
}

func NewParkingLotHandler(parkingLotCommands commands.ParkingLotCommands, parkingLotQueries queries.ParkingLotQueries) *ParkingLotHandler {
	return &ParkingLotHandler{
		parkingLotCommands: parkingLotCommands,
		parkingLotQueries:  parkingLotQueries,
	}
}

// @Summary List parking lots
// @Description List parking lots open for reservations
// @Tags parking-lots
// @Produce json
// @Success 200 {array} resdto.ParkingLotResponse
// @Router /lots [get]
func (h *ParkingLotHandler) ListParkingLots(c *gin.Context) {
	views, err := h.parkingLotQueries.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]*resdto.ParkingLotResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromParkingLotView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get parking lot
// @Description Get parking lot by ID
// @Tags parking-lots
// @Produce json
// @Param id path string true "Parking lot ID"
// @Success 200 {object} resdto.ParkingLotResponse
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *ParkingLotHandler) GetParkingLot(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid parking lot ID format",
		})
		return
	}

	view, err := h.parkingLotQueries.GetByID(c.Request.Context(), lotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromParkingLotView(view))
}

// @Summary Create parking lot
// @Description Create a parking lot (admin only)
// @Tags parking-lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertParkingLotRequest true "Parking lot"
// @Success 201 {object} resdto.ParkingLotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} map[string]string
// @Router /lots [post]
func (h *ParkingLotHandler) CreateParkingLot(c *gin.Context) {
	var req reqdto.UpsertParkingLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.parkingLotCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromParkingLotView(view))
}

// @Summary Update parking lot
// @Description Update a parking lot (admin only)
// @Tags parking-lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Param request body reqdto.UpsertParkingLotRequest true "Parking lot"
// @Success 200 {object} resdto.ParkingLotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [put]
func (h *ParkingLotHandler) UpdateParkingLot(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid parking lot ID format",
		})
		return
	}

	var req reqdto.UpsertParkingLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.parkingLotCommands.Update(c.Request.Context(), lotID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromParkingLotView(view))
}

// @Summary Deactivate parking lot
// @Description Take a parking lot off the reservation surface (admin only)
// @Tags parking-lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parking lot ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/deactivate [post]
func (h *ParkingLotHandler) DeactivateParkingLot(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid parking lot ID format",
		})
		return
	}

	if err := h.parkingLotCommands.Deactivate(c.Request.Context(), lotID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
