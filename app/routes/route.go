package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jainam01/four-kids-updated-sub000/app/handlers"
	"github.com/jainam01/four-kids-updated-sub000/app/middlewares"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/jainam01/four-kids-updated-sub000/app/services"
	"github.com/jainam01/four-kids-updated-sub000/app/utils/sessions"
	"github.com/unrolled/render"
)

// RouterConfig carries the injected store instances so tests can build a
// router over an isolated store.
type RouterConfig struct {
	SessionStore  sessions.SessionStore
	CategoryRepo  repositories.CategoryRepositoryImpl
	ProductRepo   repositories.ProductRepositoryImpl
	CartRepo      repositories.CartRepositoryImpl
	CartItemRepo  repositories.CartItemRepositoryImpl
	WatchlistRepo repositories.WatchlistRepositoryImpl
	InquiryRepo   repositories.InquiryRepositoryImpl
}

func NewRouter(cfg RouterConfig) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	catalogSvc := services.NewCatalogService(cfg.ProductRepo, cfg.CategoryRepo)
	cartSvc := services.NewCartService(cfg.CartRepo, cfg.CartItemRepo, cfg.ProductRepo)
	watchlistSvc := services.NewWatchlistService(cfg.WatchlistRepo, cfg.ProductRepo)

	productHandler := handlers.NewProductHandler(catalogSvc, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistSvc, rnd)
	wholesaleHandler := handlers.NewWholesaleHandler(cfg.InquiryRepo, rnd, validate)

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.SessionResolverMiddleware(cfg.SessionStore))

	api.HandleFunc("/categories", productHandler.Categories).Methods("GET")
	api.HandleFunc("/categories/{slug}", productHandler.CategoryBySlug).Methods("GET")
	api.HandleFunc("/products", productHandler.Products).Methods("GET")
	api.HandleFunc("/products/{slug}", productHandler.ProductBySlug).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/add", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/update/{id}", cartHandler.UpdateItem).Methods("PUT")
	api.HandleFunc("/cart/remove/{id}", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart/clear", cartHandler.ClearCart).Methods("POST")

	api.HandleFunc("/watchlist", watchlistHandler.List).Methods("GET")
	api.HandleFunc("/watchlist/add", watchlistHandler.Add).Methods("POST")
	api.HandleFunc("/watchlist/remove/{id}", watchlistHandler.Remove).Methods("DELETE")
	api.HandleFunc("/watchlist/check/{productId}", watchlistHandler.Check).Methods("GET")
	api.HandleFunc("/watchlist/clear", watchlistHandler.Clear).Methods("POST")

	api.HandleFunc("/wholesale", wholesaleHandler.Create).Methods("POST")
	api.HandleFunc("/wholesale", wholesaleHandler.List).Methods("GET")

	return router
}
