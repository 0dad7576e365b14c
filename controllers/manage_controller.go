package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/dto"
	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// ManageController exposes the generic entity-management flow over
// HTTP: one parameterized surface for all six record kinds.
type ManageController struct {
	Registry *services.RegistryService
}

func NewManageController(svc *services.RegistryService) *ManageController {
	return &ManageController{Registry: svc}
}

func (ctrl *ManageController) kindParam(c *gin.Context) (models.Kind, bool) {
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return kind, true
}

// ListEntities godoc
// @Summary List records of one entity kind, sorted by key field
// @Tags manage
// @Produce json
// @Param kind path string true "entity kind" Enums(hotels, rooms, customers, employees, bookings, rentings)
// @Success 200 {object} map[string]interface{}
// @Router /api/manage/{kind} [get]
func (ctrl *ManageController) ListEntities(c *gin.Context) {
	kind, ok := ctrl.kindParam(c)
	if !ok {
		return
	}
	// Backend failures degrade to an empty list by contract.
	records := ctrl.Registry.List(c.Request.Context(), kind)
	utils.JSONSuccess(c, http.StatusOK, records)
}

// CreateEntity godoc
// @Summary Create a record from raw form fields
// @Tags manage
// @Accept json
// @Produce json
// @Param kind path string true "entity kind"
// @Param body body dto.CreateRequest true "create form values"
// @Success 201 {object} map[string]interface{}
// @Router /api/manage/{kind} [post]
func (ctrl *ManageController) CreateEntity(c *gin.Context) {
	kind, ok := ctrl.kindParam(c)
	if !ok {
		return
	}
	var req dto.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid create payload: "+err.Error())
		return
	}
	if err := ctrl.Registry.Create(c.Request.Context(), kind, req.Fields); err != nil {
		respondAppError(c, err, "could not create record")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ctrl.Registry.Records())
}

// UpdateEntity godoc
// @Summary Re-submit the editable subset of one record
// @Tags manage
// @Accept json
// @Produce json
// @Param kind path string true "entity kind"
// @Param body body dto.UpdateRequest true "key and editable fields"
// @Success 200 {object} map[string]interface{}
// @Router /api/manage/{kind} [put]
func (ctrl *ManageController) UpdateEntity(c *gin.Context) {
	kind, ok := ctrl.kindParam(c)
	if !ok {
		return
	}
	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid update payload: "+err.Error())
		return
	}
	if err := ctrl.Registry.Update(c.Request.Context(), kind, req.Key, req.Fields); err != nil {
		respondAppError(c, err, "could not update record")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Registry.Records())
}

// DeleteEntity godoc
// @Summary Delete one record; requires confirm=true
// @Tags manage
// @Produce json
// @Param kind path string true "entity kind"
// @Param id query string true "record key"
// @Param hoteladdress query string false "second room key part"
// @Param confirm query bool true "confirmation flag"
// @Success 200 {object} map[string]interface{}
// @Router /api/manage/{kind} [delete]
func (ctrl *ManageController) DeleteEntity(c *gin.Context) {
	kind, ok := ctrl.kindParam(c)
	if !ok {
		return
	}
	key := models.Key{
		ID:           c.Query("id"),
		HotelAddress: c.Query("hoteladdress"),
	}
	confirmed := c.Query("confirm") == "true"

	performed, err := ctrl.Registry.Delete(c.Request.Context(), kind, key, confirmed)
	if err != nil {
		respondAppError(c, err, "could not delete record")
		return
	}
	if !performed {
		utils.JSONSuccessNote(c, http.StatusOK, "delete skipped: incomplete room key")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Registry.Records())
}
