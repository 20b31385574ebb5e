package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/jainam01/four-kids-updated-sub000/app/utils/sessions"
)

// SessionResolverMiddleware derives the shopper id that scopes cart and
// watchlist state. An Authorization header value is used verbatim as the
// id; otherwise a uuid is minted once, stored in the signed session
// cookie, and replayed on later requests so anonymous state survives
// between calls.
func SessionResolverMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shopperID := r.Header.Get("Authorization")

			if shopperID == "" {
				shopperID = sessionStore.GetShopperID(r)
				if shopperID == "" {
					shopperID = uuid.New().String()
					if err := sessionStore.SetShopperID(w, r, shopperID); err != nil {
						log.Printf("SessionResolverMiddleware: error saving shopper id on %s: %v", r.URL.Path, err)
					}
				}
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeySessionID, shopperID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
