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

func setupHoursTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	hoursSvc := service.NewHoursService(repos.Hours, repos.Employee, repos.Order)
	handler := NewHoursHandler(hoursSvc)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/uren", handler.List)
	api.POST("/uren", handler.Register)
	api.DELETE("/uren/:id", handler.Delete)
	api.GET("/orders/:id/uren", handler.OrderSummary)
	api.GET("/projecten/:id/uren", handler.ProjectSummary)
	api.GET("/medewerkers", handler.ListEmployees)
	api.POST("/medewerkers", handler.CreateEmployee)
	api.PUT("/medewerkers/:id/actief", handler.ToggleEmployee)

	return db, router
}

func TestRegisterHoursFillsProject(t *testing.T) {
	db, router := setupHoursTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-401", "Atelier Oost")
	order := testutil.SeedOrder(t, db, project.ID, "Werkbladen", entity.StatusInProductie)
	employee := testutil.SeedEmployee(t, db, "Jan de Boer", true)

	w := testutil.DoRequest(router, "POST", "/api/v1/uren",
		map[string]interface{}{
			"medewerker_id": employee.ID,
			"order_id":      order.ID,
			"datum":         "2024-06-03",
			"type_werk":     "monteren",
			"uren":          6.5,
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var entry entity.HourEntry
	db.First(&entry, "order_id = ?", order.ID)
	if entry.ProjectID != project.ID {
		t.Errorf("project_id = %q, want derived from order", entry.ProjectID)
	}
	if entry.Uren != 6.5 {
		t.Errorf("uren = %v, want 6.5", entry.Uren)
	}
}

func TestRegisterHoursInactiveEmployee(t *testing.T) {
	db, router := setupHoursTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-402", "Atelier West")
	order := testutil.SeedOrder(t, db, project.ID, "Deuren", entity.StatusInProductie)
	employee := testutil.SeedEmployee(t, db, "Piet Visser", false)

	w := testutil.DoRequest(router, "POST", "/api/v1/uren",
		map[string]interface{}{
			"medewerker_id": employee.ID,
			"order_id":      order.ID,
			"uren":          4,
		}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterHoursUnknownTypeWerk(t *testing.T) {
	db, router := setupHoursTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-403", "Atelier Noord")
	order := testutil.SeedOrder(t, db, project.ID, "Trap", entity.StatusInProductie)
	employee := testutil.SeedEmployee(t, db, "Kees Bakker", true)

	w := testutil.DoRequest(router, "POST", "/api/v1/uren",
		map[string]interface{}{
			"medewerker_id": employee.ID,
			"order_id":      order.ID,
			"type_werk":     "vergaderen",
			"uren":          1,
		}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderHoursSummary(t *testing.T) {
	db, router := setupHoursTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-404", "Atelier Zuid")
	order := testutil.SeedOrder(t, db, project.ID, "Kasten", entity.StatusInProductie)
	db.Model(order).Update("begrote_uren", 24)
	employee := testutil.SeedEmployee(t, db, "Henk Mulder", true)

	for _, uren := range []float64{8, 5.5} {
		w := testutil.DoRequest(router, "POST", "/api/v1/uren",
			map[string]interface{}{
				"medewerker_id": employee.ID,
				"order_id":      order.ID,
				"uren":          uren,
			}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 registering hours, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/orders/"+order.ID+"/uren", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["begrote_uren"].(float64) != 24 {
		t.Errorf("begrote_uren = %v, want 24", data["begrote_uren"])
	}
	if data["geregistreerd"].(float64) != 13.5 {
		t.Errorf("geregistreerd = %v, want 13.5", data["geregistreerd"])
	}
}

func TestToggleEmployee(t *testing.T) {
	db, router := setupHoursTest(t)
	token := testutil.DefaultTestToken()

	employee := testutil.SeedEmployee(t, db, "Ans Vos", true)

	w := testutil.DoRequest(router, "PUT", "/api/v1/medewerkers/"+employee.ID+"/actief", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var stored entity.Employee
	db.First(&stored, "id = ?", employee.ID)
	if stored.Actief {
		t.Error("employee still active after toggle")
	}

	// active-only listing hides the toggled employee
	w = testutil.DoRequest(router, "GET", "/api/v1/medewerkers?actief=true", nil, token)
	resp := testutil.ParseResponse(w)
	if employees := resp["data"].([]interface{}); len(employees) != 0 {
		t.Errorf("active listing has %d employees, want 0", len(employees))
	}
}
