package app

import (
	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	"github.com/RndsK/BMA/internal/employee"
	"github.com/RndsK/BMA/internal/holiday"
	"github.com/RndsK/BMA/internal/joinrequest"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/rbac"
	"github.com/RndsK/BMA/internal/request"
	"github.com/RndsK/BMA/internal/shared/blob"
	"github.com/RndsK/BMA/internal/shared/counter"
	"github.com/RndsK/BMA/internal/signoff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	uploader blob.Uploader,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	approvalRepo := approval.NewRepository(gormDB)
	signoffRepo := signoff.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	joinRequestRepo := joinrequest.NewRepository(gormDB, approvalRepo, outboxRepo)
	requestRepo := request.NewRepository(gormDB, approvalRepo, signoffRepo, outboxRepo)
	holidayRepo := holiday.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(companyRepo)
	if err != nil {
		return err
	}

	// --- Services ---
	tracker := signoff.NewTracker(employeeRepo)
	bankClient := holiday.NewBankHolidayClient(nil, rdb)
	companyService := company.NewService(companyRepo)
	joinRequestService := joinrequest.NewService(joinRequestRepo, companyRepo)
	requestService := request.NewService(requestRepo, companyRepo, counterRepo, tracker, uploader)
	approvalService := approval.NewService(approvalRepo, companyRepo)
	holidayService := holiday.NewService(holidayRepo, joinRequestRepo, companyRepo, bankClient)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	joinRequestHandler := joinrequest.NewHandler(joinRequestService)
	requestHandler := request.NewHandler(requestService)
	approvalHandler := approval.NewHandler(approvalService)
	holidayHandler := holiday.NewHandler(holidayService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, rbacService)
		joinrequest.RegisterRoutes(api, joinRequestHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService)
		approval.RegisterRoutes(api, approvalHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
	}

	return nil
}
