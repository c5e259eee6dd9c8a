// README: HTTP-level quote tests; full router with stubbed verifier and stores.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httptransport "dispatch/internal/http"
	"dispatch/internal/infra"
	"dispatch/internal/modules/catalog"
	"dispatch/internal/modules/promo"
	"dispatch/internal/modules/quote"
	"dispatch/internal/modules/zone"
	"dispatch/internal/types"
)

type stubVerifier struct {
	token *infra.FirebaseToken
	err   error
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return s.token, s.err
}

type stubZones struct {
	zone *zone.Zone
}

func (s *stubZones) Resolve(_ context.Context, _ types.Point) (*zone.Zone, bool, error) {
	if s.zone == nil {
		return nil, false, nil
	}
	return s.zone, true, nil
}

type stubCatalog struct {
	packages []catalog.PackageType
	prices   []catalog.TypePrice
}

func (s *stubCatalog) ListPackages(_ context.Context) ([]catalog.PackageType, error) {
	return s.packages, nil
}

func (s *stubCatalog) GetPackage(_ context.Context, id types.ID) (*catalog.PackageType, error) {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return &s.packages[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalog) PriceRange(_ context.Context, _, _ types.ID) (catalog.PriceRange, bool, error) {
	if len(s.prices) == 0 {
		return catalog.PriceRange{}, false, nil
	}
	return catalog.PriceRange{
		Min: s.prices[0].Price.BasePrice,
		Max: s.prices[len(s.prices)-1].Price.BasePrice,
	}, true, nil
}

func (s *stubCatalog) PricesForPackage(_ context.Context, _, _ types.ID) ([]catalog.TypePrice, error) {
	return s.prices, nil
}

type stubPromos struct {
	err error
}

func (s *stubPromos) Validate(_ context.Context, code string, _ types.ID, _ promo.TransportType, _ types.ID) (*promo.Promo, error) {
	if code == "" {
		return nil, nil
	}
	return nil, s.err
}

type stubWallets struct{}

func (stubWallets) BalanceFor(_ context.Context, _ types.ID, _ types.Role) (float64, error) {
	return 100, nil
}

func testServer(t *testing.T, zones *stubZones, promoErr error) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := &stubCatalog{
		packages: []catalog.PackageType{{ID: "pkg1", Name: "Standard"}},
		prices: []catalog.TypePrice{{
			Type:  catalog.ZoneType{ID: "zt1", ZoneID: "z1", TypeID: "vt-sedan", Name: "Sedan", Capacity: 4},
			Price: catalog.PackagePrice{BasePrice: 10, DistancePricePerKm: 2},
		}},
	}
	svc := quote.NewService(zones, cat, &stubPromos{err: promoErr}, stubWallets{}, nil)
	verifier := &stubVerifier{token: &infra.FirebaseToken{
		UID:    "u1",
		Claims: map[string]interface{}{"role": "passenger"},
	}}
	return httptransport.NewRouter(verifier, svc)
}

func postQuote(t *testing.T, server http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer testtoken")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func activeZone() *zone.Zone {
	return &zone.Zone{
		ID:                 "z1",
		ServiceLocationID:  "loc1",
		DefaultVehicleType: "vt-sedan",
		Unit:               1,
		CurrencySymbol:     "$",
		CurrencyCode:       "USD",
	}
}

func TestQuoteEndpoint_Success(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	w := postQuote(t, server, `{"package_type_id":"pkg1","pick_lat":25.03,"pick_lng":121.56}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		ID             string `json:"id"`
		PackageName    string `json:"package_name"`
		TypesWithPrice []struct {
			TypeID     string  `json:"type_id"`
			FareAmount float64 `json:"fare_amount"`
			IsDefault  bool    `json:"is_default"`
		} `json:"types_with_price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.PackageName != "Standard" || len(res.TypesWithPrice) != 1 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if q := res.TypesWithPrice[0]; q.TypeID != "vt-sedan" || q.FareAmount != 10 || !q.IsDefault {
		t.Errorf("unexpected type record: %+v", q)
	}
}

func TestQuoteEndpoint_InvalidPromoIs400(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, promo.ErrInvalid)

	w := postQuote(t, server, `{"package_type_id":"pkg1","pick_lat":25.03,"pick_lng":121.56,"promo_code":"BOGUS"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "provided promo code expired or invalid") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteEndpoint_OutsideZoneIs422(t *testing.T) {
	server := testServer(t, &stubZones{}, nil)

	w := postQuote(t, server, `{"package_type_id":"pkg1","pick_lat":0,"pick_lng":0}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Service not available at this location") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteEndpoint_UnknownPackageIs404(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	w := postQuote(t, server, `{"package_type_id":"nope","pick_lat":25.03,"pick_lng":121.56}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestQuoteEndpoint_MissingPackageID(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	w := postQuote(t, server, `{"pick_lat":25.03,"pick_lng":121.56}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestQuoteEndpoint_HalfCoordinatePair(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	w := postQuote(t, server, `{"package_type_id":"pkg1","pick_lat":25.03}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for lat without lng, got %d", w.Code)
	}
}

func TestQuoteEndpoint_Unauthenticated(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes",
		strings.NewReader(`{"package_type_id":"pkg1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPackagesEndpoint_List(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/packages?pick_lat=25.03&pick_lng=121.56", nil)
	req.Header.Set("Authorization", "Bearer testtoken")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		Packages []struct {
			PackageName string   `json:"package_name"`
			MinPrice    *float64 `json:"min_price"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Packages) != 1 || res.Packages[0].PackageName != "Standard" {
		t.Fatalf("unexpected packages: %s", w.Body.String())
	}
	if res.Packages[0].MinPrice == nil || *res.Packages[0].MinPrice != 10 {
		t.Errorf("expected min_price 10, got %v", res.Packages[0].MinPrice)
	}
}

func TestPackagesEndpoint_BadQueryCoordinates(t *testing.T) {
	server := testServer(t, &stubZones{zone: activeZone()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/packages?pick_lat=abc&pick_lng=121.56", nil)
	req.Header.Set("Authorization", "Bearer testtoken")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := testServer(t, &stubZones{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
