package handlers

import (
	"net/http"
	"strconv"

	"workplanner/internal/handlers/apierr"
	"workplanner/pkg/handlers/apidto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func pathID(c *gin.Context, logger *zap.SugaredLogger, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apierr.WriteApiErrJSON(c, http.StatusBadRequest, apierr.BadRequest)
		logger.Warnw("invalid path id", "param", name, "value", raw)
		return 0, false
	}

	return uint(id), true
}

func writeBindErr(c *gin.Context, logger *zap.SugaredLogger, err error) {
	logger.Warnw("error parsing request", "error", err)

	if details := apidto.ValidationMessages(err); len(details) > 0 {
		apierr.WriteApiErrJSON(c, http.StatusBadRequest, apierr.Validation(details))
		return
	}

	apierr.WriteApiErrJSON(c, http.StatusBadRequest, apierr.BadRequest)
}

// writeRepoErr: ожидаемые ошибки уходят в warn и маппятся, остальное error + 500
func writeRepoErr(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	if apierr.Handle(c, err) {
		logger.Warnw(msg, "error", err)
		return
	}

	logger.Errorw(msg, "error", err)
	apierr.WriteApiErrJSON(c, http.StatusInternalServerError, apierr.InternalServerError)
}
