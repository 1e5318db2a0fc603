package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/application/dto"
	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/memory"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/joyeria-api/internal/interfaces/http"
)

// newAPI arma la API completa sobre el almacén en memoria con un admin, dos distribuidores
// y un producto de 1000 BRL.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	hash, err := auth.HashPassword("s3creta")
	require.NoError(t, err)
	for _, u := range []*entity.User{
		{ID: "adm", Email: "adm@joyas.com", PasswordHash: hash, Name: "Admin", Role: entity.RoleAdmin, Status: entity.UserStatusActive},
		{ID: "d1", Email: "ana@joyas.com", PasswordHash: hash, Name: "Ana", Role: entity.RoleDistributor, Status: entity.UserStatusActive},
		{ID: "d2", Email: "bea@joyas.com", PasswordHash: hash, Name: "Bea", Role: entity.RoleDistributor, Status: entity.UserStatusActive},
	} {
		require.NoError(t, store.Users().Create(ctx, u))
	}
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		ID: "A", Code: "AN-01", Name: "Anillo", SellingPrice: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}))

	log := zerolog.Nop()
	ledger := appinventory.NewRegisterMovementUseCase(store.TxRunner(), store.Movements(), store.Products(), store.Showcases(), appinventory.LedgerOptions{}, log)
	history := showcase.NewHistoryUseCase(store.Showcases(), store.Movements(), store.Products(), log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		ProductUC:        usecase.NewProductUseCase(store.Products(), store.Categories()),
		CategoryUC:       usecase.NewCategoryUseCase(store.Categories()),
		UserUC:           usecase.NewUserUseCase(store.Users()),
		RegisterMovement: ledger,
		Stock:            appinventory.NewStockUseCase(store.Movements(), store.Products()),
		Dispatch:         showcase.NewDispatchUseCase(store.TxRunner(), ledger, store.Products(), store.Users(), log),
		History:          history,
		Statement:        showcase.NewStatementUseCase(history, store.Users(), pdf.NewMarotoStatementGenerator("Joyería Test")),
		JWTSecret:        testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func dispatch(t *testing.T, app *fiber.App, distributorID string, qty int) dto.ShowcaseSummaryResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/showcases", bearer(t, "adm", entity.RoleAdmin), dto.DispatchShowcaseRequest{
		DistributorID: distributorID,
		Items:         []dto.DispatchShowcaseItem{{ProductID: "A", Quantity: qty}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ShowcaseSummaryResponse
	decode(t, resp, &out)
	return out
}

func TestHealth(t *testing.T) {
	resp := call(t, newAPI(t), http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_CredencialesInvalidasNoRevelanElEmail(t *testing.T) {
	app := newAPI(t)

	ok := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@joyas.com", Password: "s3creta"})
	var out dto.LoginResponse
	decode(t, ok, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleDistributor, out.User.Role)

	for _, in := range []dto.LoginRequest{
		{Email: "ana@joyas.com", Password: "mala"},
		{Email: "nadie@joyas.com", Password: "s3creta"},
	} {
		resp := call(t, app, http.MethodPost, "/api/auth/login", "", in)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, in.Email)
		resp.Body.Close()
	}
}

func TestDespachoEHistorialDelDistribuidor(t *testing.T) {
	app := newAPI(t)
	sc := dispatch(t, app, "d1", 3)
	assert.Equal(t, 3, sc.TotalPieces)
	assert.True(t, decimal.NewFromInt(3000).Equal(sc.TotalValue))
	assert.Equal(t, int64(3_600_000), sc.TotalValuePYG)

	resp := call(t, app, http.MethodGet, "/api/distributors/d1/showcases", bearer(t, "d1", entity.RoleDistributor), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist dto.ShowcaseHistoryResponse
	decode(t, resp, &hist)
	require.Equal(t, 1, hist.Total)
	assert.Equal(t, sc.ID, hist.Showcases[0].ID)

	resp = call(t, app, http.MethodGet, "/api/inventory/balances/A", bearer(t, "adm", entity.RoleAdmin), nil)
	var bal dto.BalanceResponse
	decode(t, resp, &bal)
	assert.Equal(t, -3, bal.Quantity)
}

func TestVitrinas_AccesoDeOtroDistribuidor(t *testing.T) {
	app := newAPI(t)
	sc := dispatch(t, app, "d1", 1)
	other := bearer(t, "d2", entity.RoleDistributor)

	for _, path := range []string{
		"/api/distributors/d1/showcases",
		"/api/showcases/" + sc.ID,
		"/api/showcases/" + sc.ID + "/pdf",
	} {
		resp := call(t, app, http.MethodGet, path, other, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		resp.Body.Close()
	}

	resp := call(t, app, http.MethodGet, "/api/showcases/"+sc.ID+"/pdf", bearer(t, "d1", entity.RoleDistributor), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), sc.Code)
}

func TestMovimientos_SoloAdmin(t *testing.T) {
	app := newAPI(t)
	body := dto.RegisterMovementRequest{ProductID: "A", Quantity: 10, Reason: entity.ReasonRestock}

	resp := call(t, app, http.MethodPost, "/api/inventory/movements", bearer(t, "d1", entity.RoleDistributor), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/inventory/movements", bearer(t, "adm", entity.RoleAdmin), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var mov dto.MovementResponse
	decode(t, resp, &mov)
	assert.Equal(t, "entrada", mov.Type)
	assert.Equal(t, "adm", mov.CreatedBy)
}

func TestErrores_SeTraducenARespuestas(t *testing.T) {
	app := newAPI(t)
	admin := bearer(t, "adm", entity.RoleAdmin)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"producto inexistente", http.MethodGet, "/api/products/nope", nil, http.StatusNotFound, "NOT_FOUND"},
		{"fecha inválida", http.MethodGet, "/api/distributors/d1/showcases?start=ayer", nil, http.StatusBadRequest, "VALIDATION"},
		{"rango invertido", http.MethodGet, "/api/distributors/d1/showcases?start=2026-02-01&end=2026-01-01", nil, http.StatusBadRequest, "VALIDATION"},
		{"despacho sin piezas", http.MethodPost, "/api/showcases", dto.DispatchShowcaseRequest{DistributorID: "d1"}, http.StatusBadRequest, "VALIDATION"},
		{"código duplicado", http.MethodPost, "/api/products", dto.CreateProductRequest{Code: "AN-01", Name: "Otro"}, http.StatusConflict, "DUPLICATE"},
		{"vitrina inexistente", http.MethodGet, "/api/showcases/nope", nil, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, app, tc.method, tc.path, admin, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			var e dto.ErrorResponse
			decode(t, resp, &e)
			assert.Equal(t, tc.code, e.Code)
		})
	}
}

func TestHistorial_FueraDeRangoDevuelveListaVacia(t *testing.T) {
	app := newAPI(t)
	dispatch(t, app, "d1", 1)

	resp := call(t, app, http.MethodGet, "/api/distributors/d1/showcases?start=2000-01-01&end=2000-01-02", bearer(t, "adm", entity.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist dto.ShowcaseHistoryResponse
	decode(t, resp, &hist)
	assert.Equal(t, 0, hist.Total)
	assert.NotNil(t, hist.Showcases)
}
