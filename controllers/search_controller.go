package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/dto"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type SearchController struct {
	Search *services.SearchService
}

func NewSearchController(svc *services.SearchService) *SearchController {
	return &SearchController{Search: svc}
}

// SearchRooms godoc
// @Summary Search available rooms by criteria
// @Tags search
// @Accept json
// @Produce json
// @Param body body dto.RoomSearchRequest true "search filter"
// @Success 200 {object} map[string]interface{}
// @Router /api/search/rooms [post]
func (ctrl *SearchController) SearchRooms(c *gin.Context) {
	var filter dto.RoomSearchRequest
	if err := c.ShouldBindJSON(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search filter: "+err.Error())
		return
	}
	rooms, err := ctrl.Search.SearchRooms(c.Request.Context(), filter)
	if err != nil {
		respondAppError(c, err, "room search failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// HotelChains godoc
// @Summary Hotel chains for the search form's selector
// @Tags search
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/search/hotel-chains [get]
func (ctrl *SearchController) HotelChains(c *gin.Context) {
	chains, err := ctrl.Search.HotelChains(c.Request.Context())
	if err != nil {
		respondAppError(c, err, "could not load hotel chains")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, chains)
}

// BookRoom godoc
// @Summary Book a room found through search
// @Tags search
// @Accept json
// @Produce json
// @Param body body dto.BookRoomRequest true "booking request"
// @Success 201 {object} map[string]interface{}
// @Router /api/search/book [post]
func (ctrl *SearchController) BookRoom(c *gin.Context) {
	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}
	booking, err := ctrl.Search.BookRoom(c.Request.Context(), req)
	if err != nil {
		respondAppError(c, err, "could not create booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}
