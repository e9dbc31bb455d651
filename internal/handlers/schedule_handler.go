package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/dto"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/salon-queue/internal/usecase/schedule"
)

type ScheduleHandler struct {
	availability *ucSchedule.GetAvailability
}

func NewScheduleHandler(availability *ucSchedule.GetAvailability) *ScheduleHandler {
	return &ScheduleHandler{availability: availability}
}

func (h *ScheduleHandler) Availability(c *gin.Context) {
	barberID, ok := pathID(c, "barberId")
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, c.Param("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.AvailabilityDTO{AvailableSlots: slots})
}
