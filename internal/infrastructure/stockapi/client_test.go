package stockapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/domain"
	"github.com/tu-usuario/controle-estoque-front/internal/infrastructure/stockapi"
)

func TestFetchProducts_DecodificaColeccion(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Água","unitPrice":"2.5","unit":"UN","quantityInStock":10,"minQuantity":5,"maxQuantity":50,"categoryId":1},
			{"id":2,"name":"Atum","unitPrice":8.90,"unit":"UN","quantityInStock":3,"minQuantity":5,"maxQuantity":20,"categoryId":2}
		]`))
	}))
	defer srv.Close()

	c := stockapi.New(srv.URL+"/api/", 5*time.Second) // barra final se normaliza
	products, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Água", products[0].Name)
	// unitPrice llega como string o como número JSON; decimal acepta ambos
	assert.True(t, products[0].UnitPrice.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, products[1].UnitPrice.Equal(decimal.RequireFromString("8.9")))
	assert.NotEmpty(t, gotRequestID, "cada petición lleva X-Request-ID para correlación")
}

func TestCreateMovement_EnviaCuerpoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/movements", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in dto.CreateMovementRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(4), in.ProductID)
		assert.Equal(t, "ENTRY", in.MovementType)
		assert.Equal(t, int64(9), in.QuantityMoved)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10,"productId":4,"movementType":"ENTRY","quantityMoved":9,"movementDate":"2026-08-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := stockapi.New(srv.URL+"/api", 5*time.Second)
	created, err := c.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 4, MovementType: "ENTRY", QuantityMoved: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.True(t, created.IsEntry())
}

func TestDeleteProduct_SinCuerpoDeRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := stockapi.New(srv.URL+"/api", 5*time.Second)
	assert.NoError(t, c.DeleteProduct(context.Background(), 7))
}

func TestClient_MapeoDeErrores(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"404 es ErrNotFound", http.StatusNotFound, `{"error":"no existe"}`, domain.ErrNotFound},
		{"500 es ErrBackend", http.StatusInternalServerError, "boom", domain.ErrBackend},
		{"422 es ErrBackend", http.StatusUnprocessableEntity, `{"error":"nombre corto"}`, domain.ErrBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := stockapi.New(srv.URL+"/api", 5*time.Second)
			err := c.DeleteCategory(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_BackendCaidoEsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // puerto cerrado: error de transporte, no de protocolo

	c := stockapi.New(srv.URL+"/api", time.Second)
	_, err := c.FetchCategories(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_ContextoCanceladoNoEsErrUnavailable(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() { close(block); srv.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := stockapi.New(srv.URL+"/api", 5*time.Second)
	_, err := c.FetchMovements(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrUnavailable)
}
