package handlers

import (
	"net/http"
	"time"

	"workplanner/internal/handlers/apierr"
	"workplanner/internal/metrics"
	"workplanner/pkg/handlers/apidto"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo user.UsersRepo
	teamRepo team.TeamsRepo
	logger   *zap.SugaredLogger
}

func NewUserHandler(logger *zap.SugaredLogger, userRepo user.UsersRepo, teamRepo team.TeamsRepo) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req apidto.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindErr(c, h.logger, err)
		return
	}

	start := time.Now()
	u := apidto.ToUser(req)
	if err := u.SetPassword(req.Password); err != nil {
		h.logger.Errorw("error hashing password", "username", req.Username, "error", err)
		apierr.WriteApiErrJSON(c, http.StatusInternalServerError, apierr.InternalServerError)
		return
	}

	created, err := h.userRepo.Create(u)
	metrics.ObserveOp("user_create", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error creating user", err)
		return
	}

	metrics.AddUsers(1)
	c.JSON(http.StatusCreated, apidto.FromUser(created))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userRepo.List()
	if err != nil {
		writeRepoErr(c, h.logger, "error listing users", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromUsers(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		writeRepoErr(c, h.logger, "error getting user", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromUser(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.userRepo.Delete(userID)
	metrics.ObserveOp("user_delete", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error deleting user", err)
		return
	}

	metrics.AddUsers(-1)
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListTeams(c *gin.Context) {
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}

	teams, err := h.teamRepo.ListByUser(userID)
	if err != nil {
		writeRepoErr(c, h.logger, "error listing user teams", err)
		return
	}

	c.JSON(http.StatusOK, apidto.FromTeams(teams))
}

func (h *UserHandler) JoinTeam(c *gin.Context) {
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	start := time.Now()
	_, err := h.teamRepo.AddMembers(teamID, []uint{userID})
	metrics.ObserveOp("team_add_members", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error adding user to team", err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *UserHandler) LeaveTeam(c *gin.Context) {
	userID, ok := pathID(c, h.logger, "userId")
	if !ok {
		return
	}
	teamID, ok := pathID(c, h.logger, "teamId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.teamRepo.RemoveMember(teamID, userID)
	metrics.ObserveOp("team_remove_member", start, err)
	if err != nil {
		writeRepoErr(c, h.logger, "error removing user from team", err)
		return
	}

	c.Status(http.StatusNoContent)
}
