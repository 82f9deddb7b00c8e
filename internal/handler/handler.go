package handler

import "github.com/bobkin2-dev/projectbeheer/internal/service"

// Handlers bundles all HTTP handlers.
type Handlers struct {
	Auth     *AuthHandler
	Project  *ProjectHandler
	Order    *OrderHandler
	Kanban   *KanbanHandler
	Library  *LibraryHandler
	Template *TemplateHandler
	Hours    *HoursHandler
	Supplier *SupplierHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Project:  NewProjectHandler(services.Project),
		Order:    NewOrderHandler(services.Order),
		Kanban:   NewKanbanHandler(services.Kanban, services.Order),
		Library:  NewLibraryHandler(services.Library, services.Import),
		Template: NewTemplateHandler(services.Template),
		Hours:    NewHoursHandler(services.Hours),
		Supplier: NewSupplierHandler(services.Supplier),
	}
}
