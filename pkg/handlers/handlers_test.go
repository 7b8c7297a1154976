package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workplanner/internal/handlers/apierr"
	"workplanner/pkg/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRepos struct {
	users   *usersRepoMock
	teams   *teamsRepoMock
	entries *planEntriesRepoMock
}

func newTestRouter() (*gin.Engine, *testRepos) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()

	repos := &testRepos{
		users:   &usersRepoMock{},
		teams:   &teamsRepoMock{},
		entries: &planEntriesRepoMock{},
	}

	userHandler := handlers.NewUserHandler(logger, repos.users, repos.teams)
	teamHandler := handlers.NewTeamHandler(logger, repos.teams)
	planEntryHandler := handlers.NewPlanEntryHandler(logger, repos.entries)

	r := gin.New()
	r.POST("/users", userHandler.Register)
	r.GET("/users", userHandler.List)
	r.GET("/users/:userId", userHandler.Get)
	r.DELETE("/users/:userId", userHandler.Delete)
	r.GET("/users/:userId/teams", userHandler.ListTeams)
	r.PUT("/users/:userId/teams/:teamId", userHandler.JoinTeam)
	r.DELETE("/users/:userId/teams/:teamId", userHandler.LeaveTeam)

	r.GET("/teams", teamHandler.List)
	r.POST("/teams", teamHandler.Create)
	r.GET("/teams/:teamId", teamHandler.Get)
	r.DELETE("/teams/:teamId", teamHandler.Delete)
	r.PUT("/teams/:teamId/team-leader/:userId", teamHandler.SetLeader)
	r.DELETE("/teams/:teamId/team-leader", teamHandler.ResetLeader)
	r.GET("/teams/:teamId/users", teamHandler.ListMembers)
	r.PUT("/teams/:teamId/users", teamHandler.AddMembers)
	r.DELETE("/teams/:teamId/users/:userId", teamHandler.RemoveMember)

	r.GET("/plan-entries", planEntryHandler.List)
	r.GET("/plan-entries/:planEntryId", planEntryHandler.Get)
	r.DELETE("/plan-entries/:planEntryId", planEntryHandler.Delete)
	r.POST("/plan-entries/teams/:teamId/users/:userId", planEntryHandler.Create)
	r.GET("/plan-entries/teams/:teamId/users/:userId", planEntryHandler.ListByTeamAndUser)

	return r, repos
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()

	var resp apierr.ErrResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}
