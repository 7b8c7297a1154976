package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute - запросы мимо роутов пишутся одной серией, сырой путь раздул бы кардинальность
const unmatchedRoute = "unmatched"

func GinMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	if strings.HasPrefix(route, "/debug/pprof") {
		return
	}

	method := c.Request.Method
	requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
	requestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
