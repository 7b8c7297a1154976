package initializers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"workplanner/internal/metrics"
	"workplanner/internal/migrations"
	"workplanner/pkg/handlers"
	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func startLogger(cfg *Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		log.Fatalf("Error initializing zap logger: %v", err)
	}

	return zapLogger
}

func startPostgres(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PgDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error initializing postgres: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting postgres pool: %v", err)
	}

	sqlDB.SetMaxOpenConns(cfg.PgMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.PgMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.PgConnMaxLifetime)

	return db
}

// migrateSchema - локально хватает AutoMigrate, в остальных окружениях только версионные миграции goose
func migrateSchema(ctx context.Context, cfg *Config, logger *zap.SugaredLogger, db *gorm.DB) {
	if cfg.Environment == envLocal {
		gormAutoMigrate(db)
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting postgres pool: %v", err)
	}

	if err := migrations.Up(ctx, logger, sqlDB); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
}

func gormAutoMigrate(db *gorm.DB) {
	if err := db.SetupJoinTable(&team.Team{}, "Members", &team.Membership{}); err != nil {
		log.Fatalf("SetupJoinTable failed: %v", err)
	}

	if errAuto := db.AutoMigrate(
		&user.User{},
		&team.Team{},
		&team.Membership{},
		&planentry.PlanEntry{},
	); errAuto != nil {
		log.Fatalf("AutoMigrate failed: %v", errAuto)
	}
}

// ensureAdmin создает администратора из ADMIN_USERNAME/ADMIN_PASSWORD, если его еще нет
func ensureAdmin(cfg *Config, logger *zap.SugaredLogger, users user.UsersRepo) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.GetByUsername(cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	admin := &user.User{
		Username:  cfg.AdminUsername,
		FirstName: "Admin",
		LastName:  "Admin",
		Role:      user.RoleAdmin,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}

	if _, err := users.Create(admin); err != nil {
		// другой инстанс успел создать его раньше
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	metrics.AddUsers(1)
	logger.Infow("admin account created", "username", cfg.AdminUsername)
	return nil
}

// seedUsersGauge берет число пользователей из базы, дальше гейдж двигают Register/Delete и ensureAdmin
func seedUsersGauge(logger *zap.SugaredLogger, users user.UsersRepo) error {
	n, err := users.Count()
	if err != nil {
		return err
	}

	metrics.SetUsers(n)
	logger.Infow("users gauge seeded", "users", n)
	return nil
}

func initUserRoutes(public *gin.Engine, authorized *gin.RouterGroup, adminOnly gin.HandlerFunc, userHandler *handlers.UserHandler) {
	public.POST("/users", userHandler.Register)

	usersGroup := authorized.Group("/users")
	usersGroup.GET("", userHandler.List)
	usersGroup.GET("/:userId", userHandler.Get)
	usersGroup.DELETE("/:userId", adminOnly, userHandler.Delete)
	usersGroup.GET("/:userId/teams", userHandler.ListTeams)
	usersGroup.PUT("/:userId/teams/:teamId", userHandler.JoinTeam)
	usersGroup.DELETE("/:userId/teams/:teamId", userHandler.LeaveTeam)
}

func initTeamRoutes(authorized *gin.RouterGroup, adminOnly gin.HandlerFunc, teamHandler *handlers.TeamHandler) {
	teamsGroup := authorized.Group("/teams")
	teamsGroup.GET("", teamHandler.List)
	teamsGroup.GET("/:teamId", teamHandler.Get)
	teamsGroup.POST("", adminOnly, teamHandler.Create)
	teamsGroup.DELETE("/:teamId", adminOnly, teamHandler.Delete)

	teamsGroup.PUT("/:teamId/team-leader/:userId", adminOnly, teamHandler.SetLeader)
	teamsGroup.DELETE("/:teamId/team-leader", adminOnly, teamHandler.ResetLeader)

	teamsGroup.GET("/:teamId/users", teamHandler.ListMembers)
	teamsGroup.PUT("/:teamId/users", teamHandler.AddMembers)
	teamsGroup.DELETE("/:teamId/users/:userId", teamHandler.RemoveMember)
}

func initPlanEntryRoutes(authorized *gin.RouterGroup, planEntryHandler *handlers.PlanEntryHandler) {
	entriesGroup := authorized.Group("/plan-entries")
	entriesGroup.GET("", planEntryHandler.List)
	entriesGroup.GET("/:planEntryId", planEntryHandler.Get)
	entriesGroup.DELETE("/:planEntryId", planEntryHandler.Delete)

	entriesGroup.POST("/teams/:teamId/users/:userId", planEntryHandler.Create)
	entriesGroup.GET("/teams/:teamId/users/:userId", planEntryHandler.ListByTeamAndUser)
}

func initMetricsMdlwr(router *gin.Engine) {
	router.Use(metrics.GinMiddleware)
}

func initMetricsServer(cfg *Config) *http.Server {
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", metrics.Handler())

	return &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func initpprof(cfg *Config, router *gin.Engine) {
	if !cfg.PprofEnabled {
		return
	}

	pprof.Register(router)
}
