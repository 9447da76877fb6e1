package main

import (
	"context"
	"log"
	"time"

	"github.com/onlinemarket/shop/internal/config"
	"github.com/onlinemarket/shop/internal/db"
	"github.com/onlinemarket/shop/internal/es"
	"github.com/onlinemarket/shop/internal/repo"
	"github.com/onlinemarket/shop/internal/service/search"
)

// reindex loads every product from the database into the search index.
// Run it after catalog-administration tooling changes the products
// table; the service itself never writes the index.
func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmpty(cfg.ESURL, "ES_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch error: %v", err)
	}

	catalog := repo.NewCatalogRepo(gdb, nil)
	products, err := catalog.ListProducts(ctx)
	if err != nil {
		log.Fatalf("list products error: %v", err)
	}

	if err := search.IndexAll(ctx, esClient, "products", products); err != nil {
		log.Fatalf("reindex error: %v", err)
	}

	log.Printf("indexed %d products", len(products))
}
