package app

import (
	"context"
	"os"
	"time"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	"github.com/RndsK/BMA/internal/employee"
	"github.com/RndsK/BMA/internal/joinrequest"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/request"
	"github.com/RndsK/BMA/internal/shared/blob"
	"github.com/RndsK/BMA/internal/shared/connection"
	"github.com/RndsK/BMA/internal/shared/counter"
	"github.com/RndsK/BMA/internal/signoff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema and wires
// every module onto the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	uploader, err := buildUploader()
	if err != nil {
		return err
	}

	return registerModules(router, gormDB, redisClient, uploader)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&company.Company{},
		&company.RoleInCompany{},
		&joinrequest.JoinRequest{},
		&request.Request{},
		&approval.Approval{},
		&signoff.SignOffParticipant{},
		&counter.CompanyCounter{},
		&kafka.OutboxEventRow{},
	)
}

func buildUploader() (blob.Uploader, error) {
	uploader, err := blob.NewMinioUploader(blob.MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := uploader.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	zap.L().Info("blob storage ready", zap.String("bucket", os.Getenv("MINIO_BUCKET")))
	return uploader, nil
}
