package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
	"hotel-admin/utils"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Stats: svc}
}

// Overview godoc
// @Summary Available rooms per area and hotel room capacity
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/stats/overview [get]
func (ctrl *StatsController) Overview(c *gin.Context) {
	overview, err := ctrl.Stats.Overview(c.Request.Context())
	if err != nil {
		respondAppError(c, err, "could not load statistics")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, overview)
}
