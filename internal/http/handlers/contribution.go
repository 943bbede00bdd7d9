package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	redisclient "github.com/yungbote/teampulse-backend/internal/clients/redis"
	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/http/response"
	"github.com/yungbote/teampulse-backend/internal/platform/apierr"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
	"github.com/yungbote/teampulse-backend/internal/services"
)

type ContributionHandler struct {
	log     *logger.Logger
	service services.ContributionService
	cache   redisclient.MetricsCache // nil when REDIS_ADDR is unset
}

func NewContributionHandler(log *logger.Logger, service services.ContributionService, cache redisclient.MetricsCache) *ContributionHandler {
	return &ContributionHandler{
		log:     log.With("handler", "ContributionHandler"),
		service: service,
		cache:   cache,
	}
}

// POST /api/contributions
// body: { "team_name": "...", "category": "...", "value": 42 }
func (ch *ContributionHandler) Create(c *gin.Context) {
	var req struct {
		TeamName string `json:"team_name" binding:"required"`
		Category string `json:"category" binding:"required"`
		Value    *int   `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	created, err := ch.service.Save(c.Request.Context(), &domain.Contribution{
		TeamName: req.TeamName,
		Category: req.Category,
		Value:    *req.Value,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "create_contribution_failed", err)
		return
	}

	if ch.cache != nil {
		ch.cache.Invalidate(c.Request.Context())
	}
	c.JSON(http.StatusCreated, gin.H{"contribution": created})
}

// GET /api/contributions
func (ch *ContributionHandler) List(c *gin.Context) {
	contributions, err := ch.service.FindAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_contributions_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contributions": contributions})
}

// GET /api/contributions/:id
func (ch *ContributionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_contribution_id", err)
		return
	}
	contribution, err := ch.service.FindByID(c.Request.Context(), id)
	if err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) {
			response.RespondError(c, ae.Status, ae.Code, ae)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "get_contribution_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contribution": contribution})
}

// GET /api/metrics/max
func (ch *ContributionHandler) MaxPerCategory(c *gin.Context) {
	ch.metric(c, "max", func(handling services.NullHandling) (any, error) {
		return ch.service.GetMaxContributionPerCategoryWithMode(c.Request.Context(), handling)
	})
}

// GET /api/metrics/average
func (ch *ContributionHandler) AveragePerCategory(c *gin.Context) {
	ch.metric(c, "average", func(handling services.NullHandling) (any, error) {
		return ch.service.GetAverageContributionPerCategoryWithMode(c.Request.Context(), handling)
	})
}

// GET /api/metrics/total
func (ch *ContributionHandler) TotalPerCategory(c *gin.Context) {
	ch.metric(c, "total", func(handling services.NullHandling) (any, error) {
		return ch.service.GetTotalContributionPerCategoryWithMode(c.Request.Context(), handling)
	})
}

// GET /api/metrics/count
func (ch *ContributionHandler) CountPerCategory(c *gin.Context) {
	ch.metric(c, "count", func(handling services.NullHandling) (any, error) {
		return ch.service.GetCountPerCategoryWithMode(c.Request.Context(), handling)
	})
}

// metric is the shared path for the four aggregate endpoints. The
// ?nulls=skip|strict query param selects the null-handling mode (default
// skip). Only default-mode responses are cached so strict-mode validation
// always runs against live rows.
func (ch *ContributionHandler) metric(c *gin.Context, kind string, compute func(services.NullHandling) (any, error)) {
	handling := services.ParseNullHandling(c.Query("nulls"))

	useCache := ch.cache != nil && handling == services.SkipNulls
	if useCache {
		if payload, ok := ch.cache.Get(c.Request.Context(), kind); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	result, err := compute(handling)
	if err != nil {
		var invalidRow *services.InvalidRowError
		if errors.As(err, &invalidRow) {
			response.RespondError(c, http.StatusUnprocessableEntity, "invalid_repository_row", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "metric_failed", err)
		return
	}

	payload := gin.H{
		"metric": kind,
		"nulls":  handling.String(),
		"result": result,
	}
	if useCache {
		if body, err := json.Marshal(payload); err == nil {
			ch.cache.Set(c.Request.Context(), kind, body)
		}
	}
	response.RespondOK(c, payload)
}
