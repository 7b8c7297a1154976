package handlers

import (
	"net/http"
	"time"

	"workplanner/internal/metrics"
	"workplanner/pkg/handlers/apidto"
	"workplanner/pkg/planentry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanEntryHandler struct {
	repo   planentry.PlanEntriesRepo
	logger *zap.SugaredLogger
}

func NewPlanEntryHandler(logger *zap.SugaredLogger, repo planentry.PlanEntriesRepo) *PlanEntryHandler {
	return &PlanEntryHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *PlanEntryHandler) Create(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	var req apidto.PlanEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindErr(c, h.logger, err)
		return
	}

	start := time.Now()
	created, err := h.repo.Create(teamID, userID, apidto.ToPlanEntry(req))
	metrics.ObserveOp("plan_entry_create", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error creating plan entry", err)
		return
	}

	c.JSON(http.StatusCreated, apidto.FromPlanEntry(created))
}

func (h *PlanEntryHandler) List(c *gin.Context) {
	entries, err := h.repo.List()
	if err != nil {
		writeRepoErr(c, h.logger, "error listing plan entries", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromPlanEntries(entries))
}

func (h *PlanEntryHandler) Get(c *gin.Context) {
	planEntryID, ok := pathID(c, h.logger, "planEntryId")
	if !ok {
		return
	}

	entry, err := h.repo.GetByID(planEntryID)
	if err != nil {
		writeRepoErr(c, h.logger, "error getting plan entry", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromPlanEntry(entry))
}

func (h *PlanEntryHandler) ListByTeamAndUser(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	entries, err := h.repo.ListByTeamAndUser(teamID, userID)
	if err != nil {
		writeRepoErr(c, h.logger, "error listing plan entries", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromPlanEntries(entries))
}

func (h *PlanEntryHandler) Delete(c *gin.Context) {
	planEntryID, ok := pathID(c, h.logger, "planEntryId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.repo.Delete(planEntryID)
	metrics.ObserveOp("plan_entry_delete", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error deleting plan entry", err)
		return
	}

	c.Status(http.StatusNoContent)
}
