package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/jainam01/four-kids-updated-sub000/app/cmd"
	"github.com/jainam01/four-kids-updated-sub000/app/configs"
	"github.com/jainam01/four-kids-updated-sub000/app/db/seeders"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/jainam01/four-kids-updated-sub000/app/routes"
	"github.com/jainam01/four-kids-updated-sub000/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatal("Session key setup failed:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	cartRepo := repositories.NewCartRepository()
	cartItemRepo := repositories.NewCartItemRepository()
	watchlistRepo := repositories.NewWatchlistRepository()
	inquiryRepo := repositories.NewInquiryRepository()

	if err := seeders.SeedCatalog(context.Background(), categoryRepo, productRepo); err != nil {
		log.Fatal("Catalog seeding failed:", err)
	}
	log.Println("✅ Catalog seeded.")

	router := routes.NewRouter(routes.RouterConfig{
		SessionStore:  sessionStore,
		CategoryRepo:  categoryRepo,
		ProductRepo:   productRepo,
		CartRepo:      cartRepo,
		CartItemRepo:  cartItemRepo,
		WatchlistRepo: watchlistRepo,
		InquiryRepo:   inquiryRepo,
	})

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
