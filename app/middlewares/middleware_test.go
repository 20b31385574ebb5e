package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/jainam01/four-kids-updated-sub000/app/middlewares"
	"github.com/jainam01/four-kids-updated-sub000/app/utils/sessions"
)

func resolverHarness(t *testing.T) (http.Handler, *string) {
	t.Helper()

	store := sessions.NewCookieSessionStore(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
	)

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(helpers.ContextKeySessionID).(string)
	})
	return middlewares.SessionResolverMiddleware(store)(inner), &seen
}

func TestAuthorizationHeaderIsUsedVerbatim(t *testing.T) {
	handler, seen := resolverHarness(t)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "shopper-abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if *seen != "shopper-abc" {
		t.Fatalf("expected shopper-abc, got %q", *seen)
	}
}

func TestAnonymousShopperIDIsMintedOnceAndReplayed(t *testing.T) {
	handler, seen := resolverHarness(t)

	first := httptest.NewRequest("GET", "/api/cart", nil)
	firstRec := httptest.NewRecorder()
	handler.ServeHTTP(firstRec, first)

	minted := *seen
	if minted == "" {
		t.Fatal("expected a minted shopper id for an anonymous request")
	}
	cookies := firstRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected the minted id to be saved in a cookie")
	}

	second := httptest.NewRequest("GET", "/api/cart", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), second)

	if *seen != minted {
		t.Fatalf("expected replayed id %q, got %q", minted, *seen)
	}
}

func TestAnonymousRequestsWithoutCookieGetDistinctIDs(t *testing.T) {
	handler, seen := resolverHarness(t)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/cart", nil))
	first := *seen
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/cart", nil))

	if first == *seen {
		t.Fatal("two cookie-less shoppers must not share an id")
	}
}
