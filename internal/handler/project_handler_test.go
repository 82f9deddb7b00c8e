package handler

import (
	"net/http"
	"testing"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/bobkin2-dev/projectbeheer/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupProjectTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	projectSvc := service.NewProjectService(repos.Project, repos.Order)
	orderSvc := service.NewOrderService(repos.Order, repos.Project, repos.Library, repos.Template)
	handler := NewProjectHandler(projectSvc)
	orderHandler := NewOrderHandler(orderSvc)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/projecten", handler.List)
	api.POST("/projecten", handler.Create)
	api.GET("/projecten/:id", handler.Get)
	api.PUT("/projecten/:id", handler.Update)
	api.DELETE("/projecten/:id", handler.Delete)
	api.GET("/projecten/:id/totaal", handler.Total)
	api.GET("/projecten/:id/orders", orderHandler.ListByProject)
	api.POST("/orders", orderHandler.Create)
	api.POST("/orders/:id/items", orderHandler.AddItem)

	return db, router
}

func TestProjectCRUD(t *testing.T) {
	db, router := setupProjectTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/projecten",
		map[string]interface{}{
			"project_nummer": "2024-301",
			"naam":           "Appartement Haven",
			"klant":          "Familie Peters",
			"kleur":          "#16a34a",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	id := resp["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "GET", "/api/v1/projecten/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on get, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "PUT", "/api/v1/projecten/"+id,
		map[string]interface{}{
			"project_nummer": "2024-301",
			"naam":           "Appartement Haven fase 2",
			"klant":          "Familie Peters",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", w.Code, w.Body.String())
	}
	var stored entity.Project
	db.First(&stored, "id = ?", id)
	if stored.Naam != "Appartement Haven fase 2" {
		t.Errorf("naam = %q after update", stored.Naam)
	}

	w = testutil.DoRequest(router, "DELETE", "/api/v1/projecten/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d: %s", w.Code, w.Body.String())
	}
	w = testutil.DoRequest(router, "GET", "/api/v1/projecten/"+id, nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestProjectSearch(t *testing.T) {
	db, router := setupProjectTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedProject(t, db, "2024-302", "Keuken Verhoeven")
	testutil.SeedProject(t, db, "2024-303", "Kantoor Dijkstra")

	w := testutil.DoRequest(router, "GET", "/api/v1/projecten?search=keuken", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	projects := resp["data"].([]interface{})
	if len(projects) != 1 {
		t.Fatalf("search returned %d projects, want 1", len(projects))
	}
	if projects[0].(map[string]interface{})["naam"] != "Keuken Verhoeven" {
		t.Errorf("unexpected search result: %v", projects[0])
	}
}

func TestProjectTotalSumsOrders(t *testing.T) {
	db, router := setupProjectTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-304", "Loods Westland")
	item := testutil.SeedLibraryItem(t, db, "Werkbank", entity.CategorieMateriaal, 100)

	for _, naam := range []string{"Order A", "Order B"} {
		w := testutil.DoRequest(router, "POST", "/api/v1/orders",
			map[string]interface{}{"project_id": project.ID, "naam": naam}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 creating order, got %d: %s", w.Code, w.Body.String())
		}
		resp := testutil.ParseResponse(w)
		orderID := resp["data"].(map[string]interface{})["id"].(string)
		testutil.DoRequest(router, "POST", "/api/v1/orders/"+orderID+"/items",
			map[string]interface{}{"bibliotheek_id": item.ID, "aantal": 2}, token)
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/projecten/"+project.ID+"/totaal", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["totaal"].(float64) != 400 {
		t.Errorf("totaal = %v, want 400", data["totaal"])
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	db, router := setupProjectTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-305", "Showroom Zuidas")
	order := testutil.SeedOrder(t, db, project.ID, "Vitrine", entity.StatusGeteld)
	item := testutil.SeedLibraryItem(t, db, "Glasplaat", entity.CategorieMateriaal, 45)
	testutil.DoRequest(router, "POST", "/api/v1/orders/"+order.ID+"/items",
		map[string]interface{}{"bibliotheek_id": item.ID, "aantal": 1}, token)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/projecten/"+project.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var orderCount, itemCount int64
	db.Model(&entity.Order{}).Where("project_id = ?", project.ID).Count(&orderCount)
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if orderCount != 0 || itemCount != 0 {
		t.Errorf("cascade left %d orders and %d items behind", orderCount, itemCount)
	}

	// the library item itself must survive
	var libCount int64
	db.Model(&entity.LibraryItem{}).Count(&libCount)
	if libCount != 1 {
		t.Errorf("library has %d items after project delete, want 1", libCount)
	}
}

func TestProjectRequiresAuth(t *testing.T) {
	_, router := setupProjectTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/projecten", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}
