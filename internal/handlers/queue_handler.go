package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/dto"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/httpresp"
	ucQueue "github.com/BruksfildServices01/salon-queue/internal/usecase/queue"
)

type QueueHandler struct {
	join     *ucQueue.JoinQueue
	list     *ucQueue.ListQueue
	position *ucQueue.GetPosition
	cancel   *ucQueue.CancelEntry
	complete *ucQueue.CompleteEntry
	remove   *ucQueue.RemoveEntry
}

func NewQueueHandler(
	join *ucQueue.JoinQueue,
	list *ucQueue.ListQueue,
	position *ucQueue.GetPosition,
	cancel *ucQueue.CancelEntry,
	complete *ucQueue.CompleteEntry,
	remove *ucQueue.RemoveEntry,
) *QueueHandler {
	return &QueueHandler{
		join:     join,
		list:     list,
		position: position,
		cancel:   cancel,
		complete: complete,
		remove:   remove,
	}
}

type JoinQueueRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (h *QueueHandler) Join(c *gin.Context) {
	var req JoinQueueRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.join.Execute(c.Request.Context(), ucQueue.JoinQueueInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.QueuePositionDTO{ID: e.ID, Position: e.Position})
}

func (h *QueueHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, entries)
}

func (h *QueueHandler) Search(c *gin.Context) {
	id, ok := pathID(c, "queueid")
	if !ok {
		return
	}

	e, err := h.position.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.QueuePositionDTO{ID: e.ID, Position: e.Position})
}

func (h *QueueHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, id, "Queue entry canceled")
}

func (h *QueueHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.complete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, id, "Queue entry completed")
}

func (h *QueueHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, id, "Queue entry removed")
}
