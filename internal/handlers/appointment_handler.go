package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/dto"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-queue/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	cancel     *ucAppointment.CancelAppointment
	complete   *ucAppointment.CompleteAppointment
	reschedule *ucAppointment.RescheduleAppointment
	delete     *ucAppointment.DeleteAppointment
	get        *ucAppointment.GetAppointment
	listByDate *ucAppointment.ListAppointmentsByDate
	remind     *ucAppointment.SendReminders
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	del *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	remind *ucAppointment.SendReminders,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		cancel:     cancel,
		complete:   complete,
		reschedule: reschedule,
		delete:     del,
		get:        get,
		listByDate: listByDate,
		remind:     remind,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	AppointmentTime string `json:"appointmentTime"`
	BarberID        uint   `json:"barberId"`
	Service         string `json:"service"`
}

type RescheduleAppointmentRequest struct {
	NewAppointmentTime string `json:"newAppointmentTime"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		AppointmentTime: req.AppointmentTime,
		BarberID:        req.BarberID,
		Service:         req.Service,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.AppointmentCreatedDTO{
		ID:              ap.ID,
		AppointmentTime: ap.AppointmentTime,
		Position:        ap.Position,
		Message:         "Appointment booked successfully",
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, ap.ID, "Appointment canceled successfully")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, ap.ID, "Appointment marked as completed")
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, req.NewAppointmentTime)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.AppointmentRescheduledDTO{
		ID:              ap.ID,
		AppointmentTime: ap.AppointmentTime,
		Position:        ap.Position,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, id, "Appointment deleted successfully")
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ListByDate answers 404 for a day without appointments.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")

	apps, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if len(apps) == 0 {
		httperr.NotFound(c, "no_appointments", "No appointments found for this date.")
		return
	}

	httpresp.OK(c, apps)
}

func (h *AppointmentHandler) SendReminders(c *gin.Context) {
	date := c.Param("date")

	n, err := h.remind.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.RemindersDTO{Date: date, Queued: n})
}
