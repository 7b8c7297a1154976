package handlers

import (
	"net/http"
	"time"

	"workplanner/internal/metrics"
	"workplanner/pkg/handlers/apidto"
	"workplanner/pkg/team"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TeamHandler struct {
	repo   team.TeamsRepo
	logger *zap.SugaredLogger
}

func NewTeamHandler(logger *zap.SugaredLogger, repo team.TeamsRepo) *TeamHandler {
	return &TeamHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req apidto.Team
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindErr(c, h.logger, err)
		return
	}

	start := time.Now()
	created, err := h.repo.Create(apidto.ToTeam(req))
	metrics.ObserveOp("team_create", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error creating team", err)
		return
	}

	c.JSON(http.StatusCreated, apidto.FromTeam(created))
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.repo.List()
	if err != nil {
		writeRepoErr(c, h.logger, "error listing teams", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromTeams(teams))
}

func (h *TeamHandler) Get(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	t, err := h.repo.GetByID(teamID)
	if err != nil {
		writeRepoErr(c, h.logger, "error getting team", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromTeam(t))
}

func (h *TeamHandler) Delete(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.repo.Delete(teamID)
	metrics.ObserveOp("team_delete", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error deleting team", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) SetLeader(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	start := time.Now()
	t, err := h.repo.SetLeader(teamID, userID)
	metrics.ObserveOp("team_set_leader", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error setting team leader", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromTeam(t))
}

func (h *TeamHandler) ResetLeader(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.repo.ResetLeader(teamID)
	metrics.ObserveOp("team_reset_leader", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error resetting team leader", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) AddMembers(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	var userIDs []uint
	if err := c.ShouldBindJSON(&userIDs); err != nil {
		writeBindErr(c, h.logger, err)
		return
	}

	start := time.Now()
	members, err := h.repo.AddMembers(teamID, userIDs)
	metrics.ObserveOp("team_add_members", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error adding team members", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromUsers(members))
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	members, err := h.repo.ListMembers(teamID)
	if err != nil {
		writeRepoErr(c, h.logger, "error listing team members", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromUsers(members))
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.repo.RemoveMember(teamID, userID)
	metrics.ObserveOp("team_remove_member", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error removing team member", err)
		return
	}

	c.Status(http.StatusNoContent)
}
