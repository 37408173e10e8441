package services

import (
	"fmt"

	"ohrid/internal/models/response_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

type TimeSlotServiceInterface interface {
	Slots(timeOfDay string) (response_models.TimeSlotsResponse, error)
}

type TimeSlotService struct{}

func NewTimeSlotService() TimeSlotServiceInterface {
	return &TimeSlotService{}
}

func (t *TimeSlotService) Slots(timeOfDay string) (response_models.TimeSlotsResponse, error) {
	sel, ok := planner.ParseTimeOfDay(timeOfDay)
	if !ok {
		return response_models.TimeSlotsResponse{}, fmt.Errorf("%w: timeOfDay %q", utils.ErrInvalidRequest, timeOfDay)
	}
	return response_models.TimeSlotsResponse{TimeOfDay: string(sel), Slots: planner.TimeSlots(sel)}, nil
}
