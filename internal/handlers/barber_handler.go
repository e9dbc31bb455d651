package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/httpresp"
	"github.com/BruksfildServices01/salon-queue/internal/middleware"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	ucBarber "github.com/BruksfildServices01/salon-queue/internal/usecase/barber"
)

type BarberHandler struct {
	create *ucBarber.CreateBarber
	list   *ucBarber.ListBarbers
	delete *ucBarber.DeleteBarber
}

func NewBarberHandler(
	create *ucBarber.CreateBarber,
	list *ucBarber.ListBarbers,
	del *ucBarber.DeleteBarber,
) *BarberHandler {
	return &BarberHandler{create: create, list: list, delete: del}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name          string               `json:"name"`
	Experience    int                  `json:"experience"`
	WorkingHours  *models.WorkingHours `json:"workingHours"`
	AvailableDays []string             `json:"availableDays"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBarber.CreateBarberInput{
		Name:          req.Name,
		Experience:    req.Experience,
		WorkingHours:  req.WorkingHours,
		AvailableDays: req.AvailableDays,
		ActorID:       actorID(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if barbers == nil {
		barbers = []models.Barber{}
	}
	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, actorID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, id, "Barber deleted successfully")
}

func actorID(c *gin.Context) *uint {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil
	}
	return &id.UserID
}
