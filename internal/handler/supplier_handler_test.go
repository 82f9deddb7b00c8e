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

func setupSupplierTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	supplierSvc := service.NewSupplierService(repos.Supplier)
	handler := NewSupplierHandler(supplierSvc)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/leveranciers", handler.List)
	api.POST("/leveranciers", handler.Create)
	api.DELETE("/leveranciers/:id", handler.Delete)

	return db, router
}

func TestSupplierCreateIsIdempotent(t *testing.T) {
	db, router := setupSupplierTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/leveranciers",
		map[string]interface{}{"naam": "Houthandel Vermeer"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	first := testutil.ParseResponse(w)
	firstID := first["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "POST", "/api/v1/leveranciers",
		map[string]interface{}{"naam": "Houthandel Vermeer"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on repeat, got %d: %s", w.Code, w.Body.String())
	}
	second := testutil.ParseResponse(w)
	secondID := second["data"].(map[string]interface{})["id"].(string)

	if firstID != secondID {
		t.Errorf("Repeat create returned id %q, want existing %q", secondID, firstID)
	}

	var count int64
	db.Model(&entity.Supplier{}).Count(&count)
	if count != 1 {
		t.Errorf("Supplier count = %d, want 1", count)
	}
}

func TestSupplierCreateTrimsName(t *testing.T) {
	db, router := setupSupplierTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/leveranciers",
		map[string]interface{}{"naam": "  Beslag & Co  "}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var supplier entity.Supplier
	if err := db.First(&supplier).Error; err != nil {
		t.Fatalf("Failed to load supplier: %v", err)
	}
	if supplier.Naam != "Beslag & Co" {
		t.Errorf("Naam = %q, want trimmed", supplier.Naam)
	}
}

func TestSupplierListSortedByName(t *testing.T) {
	db, router := setupSupplierTest(t)
	token := testutil.DefaultTestToken()

	for _, naam := range []string{"Zagerij Noord", "Alku Plaatmateriaal", "Meubelbeslag BV"} {
		w := testutil.DoRequest(router, "POST", "/api/v1/leveranciers",
			map[string]interface{}{"naam": naam}, token)
		if w.Code != http.StatusOK {
			t.Fatalf("Failed to create %q: %d", naam, w.Code)
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/leveranciers", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("Expected 3 suppliers, got %d", len(data))
	}
	want := []string{"Alku Plaatmateriaal", "Meubelbeslag BV", "Zagerij Noord"}
	for i, raw := range data {
		naam := raw.(map[string]interface{})["naam"].(string)
		if naam != want[i] {
			t.Errorf("Position %d = %q, want %q", i, naam, want[i])
		}
	}

	var count int64
	db.Model(&entity.Supplier{}).Count(&count)
	if count != 3 {
		t.Errorf("Supplier count = %d, want 3", count)
	}
}

func TestSupplierDelete(t *testing.T) {
	db, router := setupSupplierTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/leveranciers",
		map[string]interface{}{"naam": "Lakspuiterij Zuid"}, token)
	resp := testutil.ParseResponse(w)
	id := resp["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "DELETE", "/api/v1/leveranciers/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var count int64
	db.Model(&entity.Supplier{}).Count(&count)
	if count != 0 {
		t.Errorf("Supplier count = %d, want 0", count)
	}
}
