package service

import (
	"github.com/bobkin2-dev/projectbeheer/internal/config"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services bundles all business logic.
type Services struct {
	Auth     *AuthService
	Project  *ProjectService
	Order    *OrderService
	Kanban   *KanbanService
	Library  *LibraryService
	Import   *ImportService
	Template *TemplateService
	Hours    *HoursService
	Supplier *SupplierService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, mc *minio.Client, cfg *config.Config, logger *zap.Logger) *Services {
	library := NewLibraryService(repos.Library, rdb, logger)
	return &Services{
		Auth:     NewAuthService(repos.Employee, cfg.JWT),
		Project:  NewProjectService(repos.Project, repos.Order),
		Order:    NewOrderService(repos.Order, repos.Project, repos.Library, repos.Template),
		Kanban:   NewKanbanService(repos.Order, repos.Project),
		Library:  library,
		Import:   NewImportService(repos.Library, library, mc, cfg.MinIO.Bucket, logger),
		Template: NewTemplateService(repos.Template, repos.Library),
		Hours:    NewHoursService(repos.Hours, repos.Employee, repos.Order),
		Supplier: NewSupplierService(repos.Supplier),
	}
}
