package controllers

import (
	"github.com/gin-gonic/gin"

	"ohrid/internal/services"
	"ohrid/pkg/utils"
)

type TimeSlotController struct {
	timeSlotService services.TimeSlotServiceInterface
}

func NewTimeSlotController(timeSlotService services.TimeSlotServiceInterface) *TimeSlotController {
	return &TimeSlotController{
		timeSlotService: timeSlotService,
	}
}

func (t *TimeSlotController) ListSlots(c *gin.Context) {
	slots, err := t.timeSlotService.Slots(c.Query("timeOfDay"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, slots, "Time slots fetched successfully")
}
