// Package stockapi implementa el puerto StockAPI contra el backend HTTP de
// estoque (GET/POST/PUT/DELETE sobre /api/products, /api/categories y
// /api/movements). Usa net/http de la librería estándar; no requiere SDK.
package stockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ ports.StockAPI = (*Client)(nil)

// maxBodySize techo de lectura de respuestas del backend (4 MiB cubre de
// sobra las tres colecciones de un inventario razonable).
const maxBodySize = 4 << 20

// Client cliente JSON del backend de estoque.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL sin barra final, ej.
// "http://localhost:8080/api"; timeout razonable: 10 s.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ── Lecturas (las tres colecciones crudas) ────────────────────────────────────

// FetchProducts lee GET /products.
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCategories lee GET /categories.
func (c *Client) FetchCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchMovements lee GET /movements.
func (c *Client) FetchMovements(ctx context.Context) ([]entity.Movement, error) {
	var out []entity.Movement
	if err := c.do(ctx, http.MethodGet, "/movements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Mutaciones (pass-through; el backend valida el fondo) ─────────────────────

// CreateProduct envía POST /products.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct envía PUT /products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct envía DELETE /products/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/products/"+formatID(id), nil, nil)
}

// CreateCategory envía POST /categories.
func (c *Client) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	var out entity.Category
	if err := c.do(ctx, http.MethodPost, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory envía PUT /categories/{id}.
func (c *Client) UpdateCategory(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	var out entity.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory envía DELETE /categories/{id}; el backend ejecuta la
// cascada sobre productos y movimientos.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+formatID(id), nil, nil)
}

// CreateMovement envía POST /movements.
func (c *Client) CreateMovement(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error) {
	var out entity.Movement
	if err := c.do(ctx, http.MethodPost, "/movements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Plomería HTTP ─────────────────────────────────────────────────────────────

// do arma la petición, adjunta un X-Request-ID para correlación en los logs
// del backend y decodifica la respuesta en out (nil si no hay cuerpo útil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("stockapi: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("stockapi: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("stockapi: %s %s: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("stockapi: %s %s: %w: %v", method, path, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("stockapi: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("stockapi: %s %s: %w", method, path, domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("stockapi: %s %s: %w: HTTP %d: %s",
			method, path, domain.ErrBackend, resp.StatusCode, truncate(raw, 256))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("stockapi: deserializar respuesta de %s: %w", path, err)
	}
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
