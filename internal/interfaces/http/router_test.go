package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
	"github.com/tu-usuario/controle-estoque-front/internal/infrastructure/stockapi"
	apphttp "github.com/tu-usuario/controle-estoque-front/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: un backend httptest con datos fijos y la app Fiber
// completa cableada contra él a través del cliente real.
// ──────────────────────────────────────────────────────────────────────────────

const backendProducts = `[
	{"id":1,"name":"Água","unitPrice":"2.5","unit":"UN","quantityInStock":10,"minQuantity":5,"maxQuantity":50,"categoryId":1},
	{"id":2,"name":"Atum","unitPrice":"8.90","unit":"UN","quantityInStock":3,"minQuantity":5,"maxQuantity":20,"categoryId":2}
]`

const backendCategories = `[
	{"id":1,"name":"Bebidas","size":"pequeno","packaging":"plastico"},
	{"id":2,"name":"Conservas","size":"medio","packaging":"lata"}
]`

const backendMovements = `[
	{"id":1,"productId":1,"movementType":"ENTRY","quantityMoved":5,"movementDate":"2026-08-01T10:00:00Z"},
	{"id":2,"productId":2,"movementType":"EXIT","quantityMoved":2,"movementDate":"2026-08-02T10:00:00Z"}
]`

// fakeBackend registra las mutaciones recibidas para que los tests puedan
// verificar el pass-through.
type fakeBackend struct {
	deletes []string
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/products":
			_, _ = io.WriteString(w, backendProducts)
		case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
			_, _ = io.WriteString(w, backendCategories)
		case r.Method == http.MethodGet && r.URL.Path == "/api/movements":
			_, _ = io.WriteString(w, backendMovements)
		case r.Method == http.MethodPost && r.URL.Path == "/api/movements":
			raw, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(strings.Replace(string(raw), "{", `{"id":50,"movementDate":"2026-08-03T10:00:00Z",`, 1)))
		case r.Method == http.MethodDelete:
			b.deletes = append(b.deletes, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"ruta desconocida"}`)
		}
	})
}

// buildTestApp levanta el backend falso y devuelve la app Fiber completa
// (cliente real + snapshot ya cargado + todas las rutas).
func buildTestApp(t *testing.T) (*fiber.App, *fakeBackend) {
	t.Helper()

	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	api := stockapi.New(srv.URL+"/api", 5*time.Second)
	store := usecase.NewSnapshotStore(api)
	require.NoError(t, store.Refresh(context.Background()))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:      store,
		ProductUC:  usecase.NewProductUseCase(store, api),
		CategoryUC: usecase.NewCategoryUseCase(store, api),
		MovementUC: usecase.NewMovementUseCase(store, api),
		ReportUC:   usecase.NewReportUseCase(store, nil),
	})
	return app, backend
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProducts_DevuelveVistaDerivada(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.ProductListDTO](t, resp)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Bebidas (pequeno)", out.Items[0].CategoryName)
	assert.Equal(t, "normal", out.Items[0].StockStatus)
	assert.Equal(t, "baixo", out.Items[1].StockStatus)
	assert.Equal(t, 2, out.TotalCount)
}

func TestGetProducts_FiltroYSelectorPorQuery(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products?search=agua&categoryId=1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.ProductListDTO](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Água", out.Items[0].Name)
	assert.Equal(t, 1, out.ShowingCount)
	assert.Equal(t, 2, out.TotalCount)
}

func TestGetProducts_CategoryIdMalformado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products?categoryId=bebidas", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestGetCategories_IncluyeBadgeDeProductos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CategoryListDTO](t, resp)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 1, out.Items[0].ProductCount)
}

func TestGetCategoryImpact_Inexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/categories/99/impact", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMovements_NombreResuelto(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/movements", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.MovementListDTO](t, resp)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Atum", out.Items[0].ProductName, "recientes primero")
	assert.Equal(t, "-2", out.Items[0].SignedDisplay)
}

func TestPostMovement_TipoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/movements",
		strings.NewReader(`{"productId":1,"movementType":"AJUSTE","quantityMoved":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostMovement_Crea(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/movements",
		strings.NewReader(`{"productId":1,"movementType":"ENTRY","quantityMoved":7}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.MovementRowDTO](t, resp)
	assert.Equal(t, int64(50), out.ID)
	assert.Equal(t, "+7", out.SignedDisplay)
	assert.Equal(t, "Água", out.ProductName)
}

func TestDeleteProduct_PassThroughAlBackend(t *testing.T) {
	app, backend := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/products/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, backend.deletes, "/api/products/1")
}

func TestPostRefresh(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestGetReportsBalance(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/balance", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.BalanceDTO](t, resp)
	assert.Equal(t, int64(13), out.TotalItems)
	assert.Equal(t, "51.7", out.TotalValue.String())
	assert.Equal(t, 2, out.ProductCount)
}

func TestGetReportsRankings_SoloEntradas(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/rankings?type=ENTRY", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"exits":null`, "la partición no pedida viaja como null")

	var out dto.RankingsDTO
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "Água", out.Entries[0].ProductName)
	assert.Equal(t, int64(5), out.Entries[0].Total)
}
