// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/config"
	httptransport "dispatch/internal/http"
	"dispatch/internal/infra"
	"dispatch/internal/maps"
	"dispatch/internal/modules/catalog"
	"dispatch/internal/modules/promo"
	"dispatch/internal/modules/quote"
	"dispatch/internal/modules/wallet"
	"dispatch/internal/modules/zone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("DISPATCH_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	zoneStore := zone.NewStore(dbPool, redisClient)
	zoneSvc := zone.NewService(zoneStore)

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore)

	promoStore := promo.NewStore(dbPool)
	promoSvc := promo.NewService(promoStore, cfg.App.Mode)

	walletStore := wallet.NewStore(dbPool)
	walletSvc := wallet.NewService(walletStore)

	var routes quote.RouteEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routes = routeSvc
	} else {
		log.Println("DISPATCH_MAPS_API_KEY not set; quotes omit upfront totals")
	}

	quoteSvc := quote.NewService(zoneSvc, catalogSvc, promoSvc, walletSvc, routes)

	handler := httptransport.NewRouter(verifier, quoteSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("dispatch-api listening on %s (mode=%s)", cfg.HTTP.Addr, cfg.App.Mode)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
