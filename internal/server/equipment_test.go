package server_test

import (
	"net/http"
	"testing"

	"prodcrew/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentCRUD(t *testing.T) {
	app := newTestApp(t)
	app.createUser("boss", "", "adminpass", true)
	cookies := app.login("boss", "adminpass")

	w := app.doJSON(http.MethodPost, "/equipment/add", gin.H{
		"barcode":  "XLR-001",
		"name":     "XLR Cable 10m",
		"category": "cables",
		"location": "Case A",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
	decode(t, w, &created)
	require.True(t, created.Success)
	require.NotZero(t, created.ID)

	// Barcode is globally unique.
	w = app.doJSON(http.MethodPost, "/equipment/add", gin.H{"barcode": "XLR-001", "name": "Another"}, cookies)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(http.MethodGet, "/equipment/barcode/XLR-001", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var item models.Equipment
	decode(t, w, &item)
	assert.Equal(t, "XLR Cable 10m", item.Name)

	w = app.do(http.MethodGet, "/equipment/barcode/NOPE", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Partial update: untouched fields keep their values.
	w = app.doJSON(http.MethodPut, "/equipment/update/"+itoa(created.ID), gin.H{"location": "Truck 2"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(http.MethodGet, "/equipment/barcode/XLR-001", cookies)
	decode(t, w, &item)
	assert.Equal(t, "Truck 2", item.Location)
	assert.Equal(t, "XLR Cable 10m", item.Name)
	assert.Equal(t, "cables", item.Category)

	w = app.do(http.MethodDelete, "/equipment/delete/"+itoa(created.ID), cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(http.MethodDelete, "/equipment/delete/"+itoa(created.ID), cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipmentValidation(t *testing.T) {
	app := newTestApp(t)
	app.createUser("boss", "", "adminpass", true)
	cookies := app.login("boss", "adminpass")

	w := app.doJSON(http.MethodPost, "/equipment/add", gin.H{"name": "No Barcode"}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "barcode")

	w = app.doJSON(http.MethodPost, "/equipment/add", gin.H{"barcode": "B-1"}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")

	w = app.doJSON(http.MethodPut, "/equipment/update/999", gin.H{"name": "x"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipmentSearch(t *testing.T) {
	app := newTestApp(t)
	app.createUser("boss", "", "adminpass", true)
	cookies := app.login("boss", "adminpass")

	seed := []gin.H{
		{"barcode": "MIC-001", "name": "Shure SM58", "location": "Case A"},
		{"barcode": "LIGHT-9", "name": "LED Par", "location": "Warehouse"},
		{"barcode": "DI-4", "name": "DI Box", "location": "Case A"},
	}
	for _, item := range seed {
		w := app.doJSON(http.MethodPost, "/equipment/add", item, cookies)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var results []models.Equipment

	// Case-insensitive against name.
	w := app.do(http.MethodGet, "/equipment/search?q=shure", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "MIC-001", results[0].Barcode)

	// Against barcode.
	w = app.do(http.MethodGet, "/equipment/search?q=light", cookies)
	decode(t, w, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "LED Par", results[0].Name)

	// Against location, multiple hits.
	w = app.do(http.MethodGet, "/equipment/search?q=case+a", cookies)
	decode(t, w, &results)
	assert.Len(t, results, 2)

	w = app.do(http.MethodGet, "/equipment/search?q=zzz", cookies)
	decode(t, w, &results)
	assert.Empty(t, results)
}

func TestEquipmentWritesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	app.createUser("crew", "", "crewpass", false)
	cookies := app.login("crew", "crewpass")

	w := app.doJSON(http.MethodPost, "/equipment/add", gin.H{"barcode": "B-1", "name": "x"}, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = app.doJSON(http.MethodPut, "/equipment/update/1", gin.H{"name": "x"}, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = app.do(http.MethodDelete, "/equipment/delete/1", cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to any authenticated user.
	w = app.do(http.MethodGet, "/equipment", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}
