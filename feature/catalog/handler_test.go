package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-reconciler/core/match"
	"catalog-reconciler/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	handler := NewHandler(newTestService(t, nil, nil))
	handler.RegisterRoutes(app)
	return app
}

func TestHandleReconcile(t *testing.T) {
	app := setupTestApp(t)

	body := `{
	  "primary": [
	    {"description": "COLÔNIA DESODORANTE AVON 300 KM/H MAX TURBO", "price": 250},
	    {"description": "AVON LUCK FOR HIM DEO PARFUM", "price": "50"}
	  ],
	  "secondary": [
	    {"description": "cOlONiIâ DEZODORRANTE AVÃO 300 KM/H MAX TURBO", "price": 100},
	    {"description": "AVÃO luck for him deo parfum", "price": 124.90}
	  ]
	}`
	req := httptest.NewRequest("POST", "/catalog/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result models.ReconcileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "AVON LUCK FOR HIM DEO PARFUM", result.Rows[1].Description)
	assert.True(t, decimal.RequireFromString("124.9").Equal(result.Rows[1].Price))
	require.NotNil(t, result.Summary)
	assert.Equal(t, 2, result.Summary.Matched)
}

func TestHandleReconcile_MissingPrice(t *testing.T) {
	app := setupTestApp(t)

	body := `{"primary": [{"description": "TURBO"}], "secondary": []}`
	req := httptest.NewRequest("POST", "/catalog/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcile_InvalidBody(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/catalog/reconcile", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Contains(t, body["error"], "invalid request body")
}

func TestHandleReconcile_EmptyCatalogs(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/catalog/reconcile", strings.NewReader(`{"primary": [], "secondary": []}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result models.ReconcileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
}

func TestHandleScore(t *testing.T) {
	app := setupTestApp(t)

	body := `{"a": "COLÔNIA DESODORANTE AVON 015 LONDON", "b": "cOlONiIâ DEZODORRANTE AVÃO 015 LONDON"}`
	req := httptest.NewRequest("POST", "/catalog/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var exp match.Explanation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&exp))
	assert.Equal(t, 92, exp.Score)
	assert.Equal(t, 90, exp.Threshold)
	assert.True(t, exp.Equivalent)
}
