package handler

import (
	"net/http"
	"testing"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/bobkin2-dev/projectbeheer/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	orderSvc := service.NewOrderService(repos.Order, repos.Project, repos.Library, repos.Template)
	kanbanSvc := service.NewKanbanService(repos.Order, repos.Project)
	handler := NewOrderHandler(orderSvc)
	kanban := NewKanbanHandler(kanbanSvc, orderSvc)

	api := testutil.AuthGroup(router, "/api/v1")
	api.POST("/orders", handler.Create)
	api.GET("/orders/:id", handler.Get)
	api.PUT("/orders/:id", handler.Update)
	api.PUT("/orders/:id/status", handler.ChangeStatus)
	api.GET("/orders/:id/totalen", handler.Totals)
	api.POST("/orders/:id/items", handler.AddItem)
	api.POST("/orders/:id/sjabloon", handler.ApplyTemplate)
	api.GET("/kanban", kanban.Board)
	api.PUT("/kanban/orders/:id/kolom", kanban.Drop)
	api.POST("/kanban/bulk-vlag", kanban.BulkFlag)

	return db, router
}

func TestOrderStatusGuardRejectsProduction(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-101", "Keuken Vermeer")
	order := testutil.SeedOrder(t, db, project.ID, "Onderkasten", entity.StatusGoedgekeurd)

	// drawing approved but material not in yet
	db.Model(order).Updates(map[string]interface{}{
		"tekening_klaar":       true,
		"tekening_goedgekeurd": true,
		"materiaal_besteld":    true,
	})

	w := testutil.DoRequest(router, "PUT", "/api/v1/orders/"+order.ID+"/status",
		map[string]interface{}{"status": entity.StatusInProductie}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// stored status must be untouched
	var stored entity.Order
	db.First(&stored, "id = ?", order.ID)
	if stored.Status != entity.StatusGoedgekeurd {
		t.Errorf("status changed to %q after rejected transition", stored.Status)
	}
}

func TestOrderStatusGuardAllowsProduction(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-102", "Badkamer De Wit")
	order := testutil.SeedOrder(t, db, project.ID, "Wastafelmeubel", entity.StatusGoedgekeurd)
	db.Model(order).Updates(map[string]interface{}{
		"tekening_klaar":       true,
		"tekening_goedgekeurd": true,
		"materiaal_besteld":    true,
		"materiaal_binnen":     true,
	})

	w := testutil.DoRequest(router, "PUT", "/api/v1/orders/"+order.ID+"/status",
		map[string]interface{}{"status": entity.StatusInProductie}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored entity.Order
	db.First(&stored, "id = ?", order.ID)
	if stored.Status != entity.StatusInProductie {
		t.Errorf("status = %q, want %q", stored.Status, entity.StatusInProductie)
	}
}

func TestOrderFlagPreconditions(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-103", "Kantoor Boon")
	order := testutil.SeedOrder(t, db, project.ID, "Bureaus", entity.StatusGoedgekeurd)

	// approving a drawing that is not finished yet must fail
	w := testutil.DoRequest(router, "PUT", "/api/v1/orders/"+order.ID,
		map[string]interface{}{"tekening_goedgekeurd": true}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// in order: klaar first, then goedgekeurd
	w = testutil.DoRequest(router, "PUT", "/api/v1/orders/"+order.ID,
		map[string]interface{}{"tekening_klaar": true, "tekening_goedgekeurd": true}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestKanbanDropGuard(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-104", "Winkel Smit")
	order := testutil.SeedOrder(t, db, project.ID, "Toonbank", entity.StatusGoedgekeurd)

	// dropping on the production column without the flags is refused
	w := testutil.DoRequest(router, "PUT", "/api/v1/kanban/orders/"+order.ID+"/kolom",
		map[string]interface{}{"kolom": entity.KolomProductie}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// dropping on the completed column is always allowed
	w = testutil.DoRequest(router, "PUT", "/api/v1/kanban/orders/"+order.ID+"/kolom",
		map[string]interface{}{"kolom": entity.KolomAfgerond}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var stored entity.Order
	db.First(&stored, "id = ?", order.ID)
	if stored.Status != entity.StatusOpgeleverd {
		t.Errorf("status = %q, want %q", stored.Status, entity.StatusOpgeleverd)
	}
}

func TestBulkFlagSetsPrerequisite(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-105", "School Noord")
	first := testutil.SeedOrder(t, db, project.ID, "Lokaal 1", entity.StatusGoedgekeurd)
	second := testutil.SeedOrder(t, db, project.ID, "Lokaal 2", entity.StatusGoedgekeurd)

	w := testutil.DoRequest(router, "POST", "/api/v1/kanban/bulk-vlag",
		map[string]interface{}{
			"order_ids": []string{first.ID, second.ID},
			"veld":      "materiaal_binnen",
			"waarde":    true,
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	for _, id := range []string{first.ID, second.ID} {
		var stored entity.Order
		db.First(&stored, "id = ?", id)
		if !stored.MateriaalBinnen || !stored.MateriaalBesteld {
			t.Errorf("order %s: binnen=%v besteld=%v, want both true", id, stored.MateriaalBinnen, stored.MateriaalBesteld)
		}
	}
}

func TestApplyTemplateMergesQuantities(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-106", "Restaurant Zuid")
	order := testutil.SeedOrder(t, db, project.ID, "Bar", entity.StatusGeteld)
	itemA := testutil.SeedLibraryItem(t, db, "Plaat eiken 18mm", entity.CategorieMateriaal, 85)
	itemB := testutil.SeedLibraryItem(t, db, "Blum scharnier", entity.CategorieMateriaal, 6.5)

	template := &entity.Template{
		ID:   uuid.New().String(),
		Naam: "Barkast basis",
		Items: []entity.TemplateItem{
			{ID: uuid.New().String(), BibliotheekID: itemA.ID, Aantal: 1},
			{ID: uuid.New().String(), BibliotheekID: itemB.ID, Aantal: 2},
		},
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("Failed to seed template: %v", err)
	}

	// the order already has 3 of item A on it
	w := testutil.DoRequest(router, "POST", "/api/v1/orders/"+order.ID+"/items",
		map[string]interface{}{"bibliotheek_id": itemA.ID, "aantal": 3}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 adding item, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "POST", "/api/v1/orders/"+order.ID+"/sjabloon",
		map[string]interface{}{"sjabloon_id": template.ID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 applying template, got %d: %s", w.Code, w.Body.String())
	}

	var items []entity.OrderItem
	db.Where("order_id = ?", order.ID).Order("naam").Find(&items)
	if len(items) != 2 {
		t.Fatalf("got %d order lines, want 2", len(items))
	}
	byName := map[string]entity.OrderItem{}
	for _, item := range items {
		byName[item.Naam] = item
	}
	if got := byName["Plaat eiken 18mm"].Aantal; got != 4 {
		t.Errorf("merged quantity = %v, want 4 (3 existing + 1 from template)", got)
	}
	if got := byName["Blum scharnier"].Aantal; got != 2 {
		t.Errorf("new line quantity = %v, want 2", got)
	}
}

func TestOrderTotalsEndpoint(t *testing.T) {
	db, router := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "2024-107", "Woning Oost")
	order := testutil.SeedOrder(t, db, project.ID, "Kastenwand", entity.StatusGeteld)
	item := testutil.SeedLibraryItem(t, db, "Ladegeleider", entity.CategorieMateriaal, 10)

	testutil.DoRequest(router, "POST", "/api/v1/orders/"+order.ID+"/items",
		map[string]interface{}{"bibliotheek_id": item.ID, "aantal": 2}, token)
	testutil.DoRequest(router, "PUT", "/api/v1/orders/"+order.ID,
		map[string]interface{}{"offerte_korting": 10, "offerte_korting_type": "procent"}, token)

	w := testutil.DoRequest(router, "GET", "/api/v1/orders/"+order.ID+"/totalen", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["subtotaal"].(float64) != 20 {
		t.Errorf("subtotaal = %v, want 20", data["subtotaal"])
	}
	if data["korting_bedrag"].(float64) != 2 {
		t.Errorf("korting_bedrag = %v, want 2", data["korting_bedrag"])
	}
	if data["totaal"].(float64) != 18 {
		t.Errorf("totaal = %v, want 18", data["totaal"])
	}
}
