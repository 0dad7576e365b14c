package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin/dto"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// EmployeeController is the staff portal: active bookings and rentings
// side by side, and the booking→renting conversion.
type EmployeeController struct {
	Conversion *services.ConversionService
}

func NewEmployeeController(svc *services.ConversionService) *EmployeeController {
	return &EmployeeController{Conversion: svc}
}

// Portal godoc
// @Summary Bookings and rentings, loaded together
// @Tags employee
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/employee/portal [get]
func (ctrl *EmployeeController) Portal(c *gin.Context) {
	if err := ctrl.Conversion.Refresh(c.Request.Context()); err != nil {
		respondAppError(c, err, "could not load bookings and rentings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings": ctrl.Conversion.Bookings(),
		"rentings": ctrl.Conversion.Rentings(),
	})
}

// ConvertBooking godoc
// @Summary Convert a booking to a renting with payment capture
// @Tags employee
// @Accept json
// @Produce json
// @Param id path int true "booking id"
// @Param body body dto.ConvertRequest true "card number, 16 digits"
// @Success 200 {object} map[string]interface{}
// @Router /api/employee/bookings/{id}/convert [post]
func (ctrl *EmployeeController) ConvertBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "booking id must be a positive integer")
		return
	}
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid conversion payload: "+err.Error())
		return
	}

	renting, err := ctrl.Conversion.ConvertBooking(c.Request.Context(), bookingID, req.CardNumber)
	if err != nil {
		respondAppError(c, err, "could not convert booking to renting")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, renting)
}
