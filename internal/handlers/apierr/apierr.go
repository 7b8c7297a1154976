package apierr

import (
	"errors"
	"net/http"

	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ErrResponse struct {
	Error APIError `json:"error"`
}

// Map держит коды и тексты ответов отдельно от текстов ошибок репозиториев,
// чтобы переименование sentinel-ошибки не меняло контракт API
func Map(err error) (int, APIError, bool) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, UserNotFound, true
	case errors.Is(err, team.ErrTeamNotFound):
		return http.StatusNotFound, TeamNotFound, true
	case errors.Is(err, planentry.ErrPlanEntryNotFound):
		return http.StatusNotFound, PlanEntryNotFound, true
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, NotFound, true

	case errors.Is(err, user.ErrUsernameTaken):
		return http.StatusConflict, UsernameTaken, true
	case errors.Is(err, team.ErrTeamNameTaken):
		return http.StatusConflict, TeamNameTaken, true

	case errors.Is(err, planentry.ErrInvalidTimeRange):
		return http.StatusBadRequest, Validation([]string{InvalidTimeRangeMessage}), true
	case errors.Is(err, planentry.ErrInvalidColor):
		return http.StatusBadRequest, Validation([]string{InvalidColorMessage}), true

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, InvalidCredentials, true
	default:
		// неизвестные ошибки хэндлер логирует сам и отвечает 500
		return http.StatusInternalServerError, InternalServerError, false
	}
}

func Handle(c *gin.Context, err error) bool {
	if status, apiErr, ok := Map(err); ok {
		WriteApiErrJSON(c, status, apiErr)
		return true
	}

	return false
}

func WriteApiErrJSON(c *gin.Context, status int, apiErr APIError) {
	c.JSON(status, ErrResponse{
		Error: apiErr,
	})
}

func AbortWithApiErr(c *gin.Context, status int, apiErr APIError) {
	c.AbortWithStatusJSON(status, ErrResponse{
		Error: apiErr,
	})
}

func Validation(details []string) APIError {
	v := ValidationFailed
	v.Details = details
	return v
}
