package initializers

import (
	"net/http"
	"strings"
	"time"

	"workplanner/internal/handlers/mdlwr"
	"workplanner/pkg/handlers"
	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Repos struct {
	Users       user.UsersRepo
	Teams       team.TeamsRepo
	PlanEntries planentry.PlanEntriesRepo
}

func NewRouter(cfg *Config, zapLogger *zap.Logger, repos Repos, keys *mdlwr.KeyPair) (*gin.Engine, error) {
	logger := zapLogger.Sugar()

	authMw, err := mdlwr.GetAuthMiddleware(logger, repos.Users, mdlwr.AuthConfig{
		Issuer:  cfg.JWTIssuer,
		Timeout: cfg.JWTTTL,
		Keys:    keys,
	})
	if err != nil {
		return nil, err
	}

	userHandler := handlers.NewUserHandler(logger, repos.Users, repos.Teams)
	teamHandler := handlers.NewTeamHandler(logger, repos.Teams)
	planEntryHandler := handlers.NewPlanEntryHandler(logger, repos.PlanEntries)

	router := gin.New()
	initMetricsMdlwr(router)

	router.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Skipper: func(c *gin.Context) bool {
			return c.Request.URL.Path == "/health" && c.Request.Method == http.MethodGet
		},
	}))

	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/authenticate", authMw.LoginHandler)

	authorized := router.Group("", authMw.MiddlewareFunc())
	adminOnly := mdlwr.RequireScope(user.RoleAdmin)

	initUserRoutes(router, authorized, adminOnly, userHandler)
	initTeamRoutes(authorized, adminOnly, teamHandler)
	initPlanEntryRoutes(authorized, planEntryHandler)
	initpprof(cfg, router)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}

	// cors.New паникует на пустом списке
	config.AllowOrigins = make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			config.AllowOrigins = append(config.AllowOrigins, o)
		}
	}
	if len(config.AllowOrigins) == 0 {
		config.AllowOrigins = []string{"http://localhost:3000"}
	}

	return config
}
