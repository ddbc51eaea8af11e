package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"addressbook/config"
	"addressbook/internal/delivery/api/response"
	"addressbook/internal/delivery/api/router"
	"addressbook/internal/delivery/api/router/handler"
	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	"addressbook/internal/infra/geo"
	"addressbook/internal/infra/metrics"
	"addressbook/internal/infra/persistence/rdb"
	"addressbook/internal/infra/pubsub"
	"addressbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// beyondInt64ID is MaxInt64+1, a valid uint64 that no stored row can carry.
const beyondInt64ID = "9223372036854775808"

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = ":memory:"
	cfg.Address = &config.AddressConfig{DefaultListLimit: 10}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := rdb.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, rdb.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m := metrics.NewWithNamespace("addressbook")

	addressUC := impl.NewAddressService(impl.AddressServiceParams{
		AddressRepo:    rdb.NewAddressRepository(db),
		TxManager:      rdb.NewTransactionManager(db),
		Distance:       geo.NewGeodesicCalculator(),
		Publisher:      pubsub.NewNoopPublisher(logger),
		SearchRecorder: metrics.NewSearchRecorder(m),
		Logger:         logger,
	})

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{
				AddressUC: addressUC,
				Config:    cfg,
			}),
			HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{DB: db, Logger: logger}),
			Metrics:       m,
		},
	})

	return &testServer{t: t, echo: e}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeAddress(t *testing.T, rec *httptest.ResponseRecorder) entity.Address {
	t.Helper()

	var address entity.Address
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &address))

	return address
}

func decodeAddresses(t *testing.T, rec *httptest.ResponseRecorder) []entity.Address {
	t.Helper()

	var addresses []entity.Address
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &addresses))

	return addresses
}

func (s *testServer) create(name string, lat, lng float64) entity.Address {
	s.t.Helper()

	body, err := json.Marshal(map[string]any{
		"name":      name,
		"street":    name + " street",
		"city":      "Springfield",
		"state":     "IL",
		"country":   "US",
		"latitude":  lat,
		"longitude": lng,
	})
	require.NoError(s.t, err)

	rec := s.do(http.MethodPost, "/addresses", string(body))
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeAddress(s.t, rec)
}

func ids(addresses []entity.Address) []uint64 {
	out := make([]uint64, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, a.ID)
	}

	return out
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)
}

func TestAddressAPI_CreateAndGet(t *testing.T) {
	s := newTestServer(t)

	created := s.create("Home", 12.345678, -98.765432)
	assert.NotZero(t, created.ID)

	rec := s.do(http.MethodGet, "/addresses/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeAddress(t, rec))
	assert.NotEmpty(t, decode(t, rec).Meta.RequestID)
}

func TestAddressAPI_CreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "latitude out of range",
			body:   `{"name":"A","street":"","city":"","state":"","country":"","latitude":91,"longitude":0}`,
			status: http.StatusBadRequest, code: "INVALID_COORDINATE",
		},
		{
			name:   "longitude out of range",
			body:   `{"name":"A","street":"","city":"","state":"","country":"","latitude":0,"longitude":-180.01}`,
			status: http.StatusBadRequest, code: "INVALID_COORDINATE",
		},
		{
			name:   "blank name",
			body:   `{"name":" ","street":"","city":"","state":"","country":"","latitude":0,"longitude":0}`,
			status: http.StatusBadRequest, code: "INVALID_NAME",
		},
		{
			name:   "missing latitude",
			body:   `{"name":"A","street":"","city":"","state":"","country":"","longitude":0}`,
			status: http.StatusBadRequest, code: "VALIDATION_ERROR",
		},
		{
			name:   "malformed json",
			body:   `{"name":`,
			status: http.StatusBadRequest, code: "INVALID_INPUT",
		},
		{
			name:   "latitude is a string",
			body:   `{"name":"A","street":"","city":"","state":"","country":"","latitude":"north","longitude":0}`,
			status: http.StatusBadRequest, code: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(http.MethodPost, "/addresses", tt.body)
			assertErrorCode(t, rec, tt.status, tt.code)

			list := s.do(http.MethodGet, "/addresses", "")
			require.Equal(t, http.StatusOK, list.Code)
			assert.Empty(t, decodeAddresses(t, list))
		})
	}
}

func TestAddressAPI_GetErrors(t *testing.T) {
	s := newTestServer(t)

	assertErrorCode(t, s.do(http.MethodGet, "/addresses/999", ""), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodGet, "/addresses/abc", ""), http.StatusBadRequest, "INVALID_ID")
	assertErrorCode(t, s.do(http.MethodGet, "/addresses/-1", ""), http.StatusBadRequest, "INVALID_ID")
	assertErrorCode(t, s.do(http.MethodGet, "/addresses/"+beyondInt64ID, ""), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodGet, "/addresses/18446744073709551616", ""), http.StatusBadRequest, "INVALID_ID")
}

func TestAddressAPI_List(t *testing.T) {
	s := newTestServer(t)

	a := s.create("A", 0, 0)
	b := s.create("B", 0, 1)
	c := s.create("C", 10, 10)

	rec := s.do(http.MethodGet, "/addresses/?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{b.ID}, ids(decodeAddresses(t, rec)))
	assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))

	rec = s.do(http.MethodGet, "/addresses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{a.ID, b.ID, c.ID}, ids(decodeAddresses(t, rec)))

	rec = s.do(http.MethodGet, "/addresses?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeAddresses(t, rec))

	assertErrorCode(t, s.do(http.MethodGet, "/addresses?limit=-1", ""), http.StatusBadRequest, "INVALID_PAGINATION")
	assertErrorCode(t, s.do(http.MethodGet, "/addresses?skip=x", ""), http.StatusBadRequest, "INVALID_INPUT")
}

func TestAddressAPI_ListDefaultLimit(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 12; i++ {
		s.create("A", 0, 0)
	}

	rec := s.do(http.MethodGet, "/addresses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeAddresses(t, rec), 10)
}

func TestAddressAPI_ListLimitFromConfig(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Address.DefaultListLimit = 3
	})

	for i := 0; i < 5; i++ {
		s.create("A", 0, 0)
	}

	rec := s.do(http.MethodGet, "/addresses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeAddresses(t, rec), 3)
	assert.Equal(t, "5", rec.Header().Get("X-Total-Count"))
}

func TestAddressAPI_UpdateOnlyName(t *testing.T) {
	s := newTestServer(t)
	created := s.create("Old", 45.5, -122.6)

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		rec := s.do(method, "/addresses/"+itoa(created.ID), `{"name":"New via `+method+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		updated := decodeAddress(t, rec)
		want := created
		want.Name = "New via " + method
		assert.Equal(t, want, updated)
	}
}

func TestAddressAPI_UpdateRejectsInvalidCoordinate(t *testing.T) {
	s := newTestServer(t)
	created := s.create("A", 1, 1)

	rec := s.do(http.MethodPut, "/addresses/"+itoa(created.ID), `{"latitude":100}`)
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_COORDINATE")

	rec = s.do(http.MethodGet, "/addresses/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeAddress(t, rec))
}

func TestAddressAPI_UpdateMissing(t *testing.T) {
	s := newTestServer(t)

	assertErrorCode(t, s.do(http.MethodPut, "/addresses/5", `{"name":"x"}`), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodPut, "/addresses/"+beyondInt64ID, `{"name":"x"}`), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodPatch, "/addresses/"+beyondInt64ID, `{"name":"x"}`), http.StatusNotFound, "ADDRESS_NOT_FOUND")
}

func TestAddressAPI_Delete(t *testing.T) {
	s := newTestServer(t)
	keep := s.create("Keep", 0, 0)
	gone := s.create("Gone", 1, 1)

	rec := s.do(http.MethodDelete, "/addresses/"+itoa(gone.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gone, decodeAddress(t, rec))

	assertErrorCode(t, s.do(http.MethodGet, "/addresses/"+itoa(gone.ID), ""), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodDelete, "/addresses/"+itoa(gone.ID), ""), http.StatusNotFound, "ADDRESS_NOT_FOUND")
	assertErrorCode(t, s.do(http.MethodDelete, "/addresses/"+beyondInt64ID, ""), http.StatusNotFound, "ADDRESS_NOT_FOUND")

	rec = s.do(http.MethodGet, "/addresses", "")
	assert.Equal(t, []uint64{keep.ID}, ids(decodeAddresses(t, rec)))
}

func TestAddressAPI_Search(t *testing.T) {
	s := newTestServer(t)
	origin := s.create("origin", 0, 0)
	east := s.create("east", 0, 1)
	s.create("far", 10, 10)

	rec := s.do(http.MethodGet, "/addresses/search?latitude=0&longitude=0&distance=150", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []uint64{origin.ID, east.ID}, ids(decodeAddresses(t, rec)))

	rec = s.do(http.MethodGet, "/addresses/search/?latitude=0&longitude=0&distance=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint64{origin.ID}, ids(decodeAddresses(t, rec)))

	rec = s.do(http.MethodGet, "/addresses/search?latitude=-45&longitude=100&distance=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(decode(t, rec).Data))
}

func TestAddressAPI_SearchErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query  string
		status int
		code   string
	}{
		{query: "latitude=0&longitude=0", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{query: "latitude=0&longitude=east&distance=1", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{query: "latitude=0&longitude=0&distance=-1", status: http.StatusBadRequest, code: "INVALID_RADIUS"},
		{query: "latitude=0&longitude=0&distance=NaN", status: http.StatusBadRequest, code: "INVALID_RADIUS"},
		{query: "latitude=95&longitude=0&distance=1", status: http.StatusBadRequest, code: "INVALID_COORDINATE"},
		{query: "latitude=0&longitude=181&distance=1", status: http.StatusBadRequest, code: "INVALID_COORDINATE"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assertErrorCode(t, s.do(http.MethodGet, "/addresses/search?"+tt.query, ""), tt.status, tt.code)
		})
	}
}

func TestAddressAPI_SearchGeoJSON(t *testing.T) {
	s := newTestServer(t)
	s.create("origin", 0, 0)
	s.create("east", 0, 1)
	s.create("far", 10, 10)

	rec := s.do(http.MethodGet, "/addresses/search/geojson?latitude=0&longitude=0&distance=150", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Point", fc.Features[1].Geometry.Type)
	assert.Equal(t, []float64{1, 0}, fc.Features[1].Geometry.Coordinates)
	assert.Equal(t, "east", fc.Features[1].Properties["name"])
}

func TestAddressAPI_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, string(decode(t, rec).Data))

	s.do(http.MethodGet, "/addresses/search?latitude=0&longitude=0&distance=1", "")

	rec = s.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `addressbook_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, body, "addressbook_search_candidates_count 1")
}

func TestAddressAPI_RequestIDRoundTrip(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/addresses/1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-me")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "trace-me", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "trace-me", decode(t, rec).Meta.RequestID)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
