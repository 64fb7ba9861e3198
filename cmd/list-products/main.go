package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/service"
)

// Operator tool: dumps the catalog (collections and products) to stdout.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	sf := service.NewStorefront(cfg.Shopify, logger)

	var (
		products    []domain.Product
		collections []domain.Collection
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		products, err = sf.GetProducts(ctx, "", "", false)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = sf.GetCollections(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Collections (%d):\n", len(collections))
	for _, c := range collections {
		fmt.Printf("  %-30s %s\n", c.Handle, c.Title)
	}

	fmt.Printf("\nProducts (%d):\n", len(products))
	for _, p := range products {
		price := p.PriceRange.MinVariantPrice
		fmt.Printf("  %-30s %-40s %s (%d variants)\n", p.Handle, p.Title, price.Format(), len(p.Variants))
	}
}
