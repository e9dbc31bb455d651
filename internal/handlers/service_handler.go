package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	"github.com/BruksfildServices01/salon-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/httpresp"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

// ServiceHandler manages the salon's service menu.
type ServiceHandler struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewServiceHandler(repo catalog.Repository, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	DurationMin int     `json:"durationMin"`
	Price       float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s := &models.Service{
		Name:        req.Name,
		Type:        req.Type,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}
	if s.DurationMin == 0 {
		s.DurationMin = 30
	}
	if err := catalog.Validate(s); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	s, err := h.repo.Get(ctx, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := catalog.Apply(s, catalog.Patch{
		Name:        req.Name,
		Type:        req.Type,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.Update(ctx, s); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	httpresp.Message(c, id, "Service deleted successfully")
}
