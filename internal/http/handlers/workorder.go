package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/teampulse-backend/internal/http/response"
	"github.com/yungbote/teampulse-backend/internal/services"
)

type WorkOrderHandler struct {
	service services.WorkOrderService
}

func NewWorkOrderHandler(service services.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

// GET /api/work-orders/status
func (wh *WorkOrderHandler) GetStatus(c *gin.Context) {
	counts, err := wh.service.GetStatusCounts(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "work_order_status_failed", err)
		return
	}
	response.RespondOK(c, counts)
}
