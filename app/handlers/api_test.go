package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/jainam01/four-kids-updated-sub000/app/db/seeders"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/jainam01/four-kids-updated-sub000/app/routes"
	"github.com/jainam01/four-kids-updated-sub000/app/utils/sessions"
	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	if err := seeders.SeedCatalog(context.Background(), categoryRepo, productRepo); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	sessionStore := sessions.NewCookieSessionStore(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
	)

	return routes.NewRouter(routes.RouterConfig{
		SessionStore:  sessionStore,
		CategoryRepo:  categoryRepo,
		ProductRepo:   productRepo,
		CartRepo:      repositories.NewCartRepository(),
		CartItemRepo:  repositories.NewCartItemRepository(),
		WatchlistRepo: repositories.NewWatchlistRepository(),
		InquiryRepo:   repositories.NewInquiryRepository(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, session string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if session != "" {
		req.Header.Set("Authorization", session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type cartLineResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Items        []cartLineResponse `json:"items"`
	Total        string             `json:"total"`
	DisplayTotal string             `json:"displayTotal"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var cart cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decoding cart response %s: %v", rec.Body.String(), err)
	}
	return cart
}

func TestAddDenimJacketThenGetCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 2, "size": "M", "color": "Blue",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "GET", "/api/cart", "shopper-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	cart := decodeCart(t, rec)
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.Total != "69.98" {
		t.Fatalf("expected total 69.98, got %s", cart.Total)
	}
	if cart.DisplayTotal != "$69.98" {
		t.Fatalf("expected display total $69.98, got %s", cart.DisplayTotal)
	}
}

func TestAddSaleDressUsesSalePrice(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 2, "quantity": 1, "size": "3T", "color": "Pink",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cart := decodeCart(t, rec)
	if cart.Total != "24.99" {
		t.Fatalf("expected sale-price total 24.99, got %s", cart.Total)
	}
}

func TestCartAddValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 0, "size": "", "color": "Blue",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if _, ok := resp.Fields["quantity"]; !ok {
		t.Fatalf("expected quantity field error, got %v", resp.Fields)
	}
	if _, ok := resp.Fields["size"]; !ok {
		t.Fatalf("expected size field error, got %v", resp.Fields)
	}
}

func TestCartAddUnknownProductIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 9999, "quantity": 1, "size": "M", "color": "Blue",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartRemoveUnknownIDLeavesCartIntact(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 2, "size": "M", "color": "Blue",
	})

	rec := doJSON(t, router, "DELETE", "/api/cart/remove/4242", "shopper-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	cart := decodeCart(t, doJSON(t, router, "GET", "/api/cart", "shopper-1", nil))
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatal("failed remove mutated the cart")
	}
}

func TestCartUpdateAndRemoveFlow(t *testing.T) {
	router := newTestRouter(t)

	cart := decodeCart(t, doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 2, "size": "M", "color": "Blue",
	}))
	itemID := cart.Items[0].ID

	rec := doJSON(t, router, "PUT", "/api/cart/update/"+strconv.Itoa(itemID), "shopper-1", map[string]interface{}{
		"quantity": 5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart = decodeCart(t, rec)
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}

	rec = doJSON(t, router, "DELETE", "/api/cart/remove/"+strconv.Itoa(itemID), "shopper-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}
	cart = decodeCart(t, rec)
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestCartClearEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 2, "size": "M", "color": "Blue",
	})

	rec := doJSON(t, router, "POST", "/api/cart/clear", "shopper-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cart := decodeCart(t, rec)
	if len(cart.Items) != 0 || cart.Total != "0" {
		t.Fatalf("expected empty cart with zero total, got %+v", cart)
	}
}

func TestCartsAreIsolatedBySessionHeader(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/cart/add", "shopper-1", map[string]interface{}{
		"productId": 1, "quantity": 1, "size": "M", "color": "Blue",
	})

	cart := decodeCart(t, doJSON(t, router, "GET", "/api/cart", "shopper-2", nil))
	if len(cart.Items) != 0 {
		t.Fatal("shopper-2 sees shopper-1's cart")
	}
}

func TestAnonymousSessionPersistsViaCookie(t *testing.T) {
	router := newTestRouter(t)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(map[string]interface{}{
		"productId": 1, "quantity": 1, "size": "M", "color": "Blue",
	})
	addReq := httptest.NewRequest("POST", "/api/cart/add", &body)
	addRec := httptest.NewRecorder()
	router.ServeHTTP(addRec, addReq)
	if addRec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", addRec.Code)
	}

	cookies := addRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("anonymous request should receive a session cookie")
	}

	getReq := httptest.NewRequest("GET", "/api/cart", nil)
	for _, c := range cookies {
		getReq.AddCookie(c)
	}
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	var cart cartResponse
	if err := json.Unmarshal(getRec.Body.Bytes(), &cart); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 {
		t.Fatal("anonymous cart did not survive across requests with the cookie replayed")
	}
}

func TestCategoriesEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/categories", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var categories []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatal(err)
	}
	if len(categories) != 6 {
		t.Fatalf("expected 6 seed categories, got %d", len(categories))
	}

	rec = doJSON(t, router, "GET", "/api/categories/dresses", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/categories/no-such", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", rec.Code)
	}
}

func TestProductEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/products/denim-jacket", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var product map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatal(err)
	}
	if product["name"] != "Denim Jacket" {
		t.Fatalf("expected Denim Jacket, got %v", product["name"])
	}

	rec = doJSON(t, router, "GET", "/api/products/no-such", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}
}

func TestProductsPriceRangeQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/products?minPrice=25&maxPrice=30", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []struct {
		Name      string  `json:"name"`
		Price     string  `json:"price"`
		SalePrice *string `json:"salePrice"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) == 0 {
		t.Fatal("expected products in the 25-30 range")
	}

	min := decimal.RequireFromString("25")
	max := decimal.RequireFromString("30")
	for _, p := range products {
		raw := p.Price
		if p.SalePrice != nil {
			raw = *p.SalePrice
		}
		price := decimal.RequireFromString(raw)
		if price.Cmp(min) < 0 || price.Cmp(max) > 0 {
			t.Errorf("product %q effective price %s outside [25,30]", p.Name, price)
		}
	}
}

func TestProductsBadQueryParamIs400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/products?minPrice=cheap", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductsPaginationQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/products?page=1&limit=6", "", nil)
	var page []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if len(page) != 6 {
		t.Fatalf("expected a full first page of 6, got %d", len(page))
	}

	rec = doJSON(t, router, "GET", "/api/products?page=99", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("out-of-range page must not error, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d", len(page))
	}
}

func TestWatchlistRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/watchlist/add", "shopper-1", map[string]interface{}{"productId": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var entry struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, router, "GET", "/api/watchlist/check/1", "shopper-1", nil)
	var check map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &check); err != nil {
		t.Fatal(err)
	}
	if !check["isInWatchlist"] {
		t.Fatal("expected membership after add")
	}

	// Duplicate add keeps a single entry.
	doJSON(t, router, "POST", "/api/watchlist/add", "shopper-1", map[string]interface{}{"productId": 1})
	rec = doJSON(t, router, "GET", "/api/watchlist", "shopper-1", nil)
	var entries []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry after duplicate add, got %d", len(entries))
	}

	rec = doJSON(t, router, "DELETE", "/api/watchlist/remove/"+strconv.Itoa(entry.ID), "shopper-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/watchlist/check/1", "shopper-1", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &check); err != nil {
		t.Fatal(err)
	}
	if check["isInWatchlist"] {
		t.Fatal("expected membership gone after remove")
	}
}

func TestWatchlistRemoveUnknownIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "DELETE", "/api/watchlist/remove/4242", "shopper-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWatchlistClearEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, "POST", "/api/watchlist/add", "shopper-1", map[string]interface{}{"productId": 1})
	doJSON(t, router, "POST", "/api/watchlist/add", "shopper-1", map[string]interface{}{"productId": 2})

	rec := doJSON(t, router, "POST", "/api/watchlist/clear", "shopper-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/watchlist", "shopper-1", nil)
	var entries []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty watchlist, got %d entries", len(entries))
	}
}

func TestWholesaleInquiry(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/wholesale", "", map[string]interface{}{
		"businessName": "Tiny Threads Boutique",
		"contactName":  "Jordan Li",
		"email":        "jordan@tinythreads.example",
		"phone":        "+1 555 010 2030",
		"message":      "Interested in a wholesale order of the denim jacket line for our fall season.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "POST", "/api/wholesale", "", map[string]interface{}{
		"businessName": "X",
		"contactName":  "",
		"email":        "not-an-email",
		"message":      "short",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if _, ok := resp.Fields["email"]; !ok {
		t.Fatalf("expected email field error, got %v", resp.Fields)
	}

	rec = doJSON(t, router, "GET", "/api/wholesale", "", nil)
	var inquiries []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &inquiries); err != nil {
		t.Fatal(err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected one stored inquiry, got %d", len(inquiries))
	}
}

