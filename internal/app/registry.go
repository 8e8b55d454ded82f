package app

import (
	"net/http"
	"os"

	"go-orgadmin/internal/auth"
	"go-orgadmin/internal/department"
	"go-orgadmin/internal/employee"
	"go-orgadmin/internal/item"
	"go-orgadmin/internal/messaging/kafka"
	"go-orgadmin/internal/private"
	"go-orgadmin/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	itemRepo := item.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	userService := user.NewService(gormDB, userRepo, logger)
	authService := auth.NewService(userRepo, logger)
	departmentService := department.NewService(gormDB, departmentRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, logger)
	itemService := item.NewService(gormDB, itemRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, userService, logger)
	userHandler := user.NewHandler(userService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	itemHandler := item.NewHandler(itemService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authService, logger)
		user.RegisterRoutes(api, userHandler, authService, logger)
		department.RegisterRoutes(api, departmentHandler, authService, logger)
		employee.RegisterRoutes(api, employeeHandler, authService, logger)
		item.RegisterRoutes(api, itemHandler, authService, logger)

		api.GET("/utils/health-check/", func(c *gin.Context) {
			c.JSON(http.StatusOK, true)
		})

		if os.Getenv("ENVIRONMENT") == "local" {
			privateHandler := private.NewHandler(userService, logger)
			private.RegisterRoutes(api, privateHandler)
		}
	}

	return nil
}
