package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cartstore"
)

// Operator tool: drives the cart routes of a running storefront server.
//
//	cart -server http://localhost:8080 show
//	cart -server http://localhost:8080 add <merchandise-id> [quantity]
//	cart -server http://localhost:8080 remove <line-id>
func main() {
	_ = godotenv.Load(".env")

	server := flag.String("server", "http://localhost:8080", "storefront server base URL")
	idFile := flag.String("id-file", defaultIDFile(), "file holding the persisted cart id")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cart [-server URL] show | add <merchandise-id> [qty] | remove <line-id>")
		os.Exit(2)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store := cartstore.New(*server, cartstore.NewFileIDStore(*idFile), cartstore.NewBus(), logger)
	ctx := context.Background()

	switch flag.Arg(0) {
	case "show":
	case "add":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "add requires a merchandise id")
			os.Exit(2)
		}
		qty := 1
		if flag.NArg() > 2 {
			fmt.Sscanf(flag.Arg(2), "%d", &qty)
		}
		if err := store.AddToCart(ctx, flag.Arg(1), qty); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add to cart: %v\n", err)
			os.Exit(1)
		}
	case "remove":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "remove requires a line id")
			os.Exit(2)
		}
		store.Load(ctx)
		if err := store.RemoveLine(ctx, flag.Arg(1)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove line: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}

	store.Load(ctx)
	cart := store.Cart()
	if cart == nil {
		fmt.Println("Cart is empty")
		return
	}

	fmt.Printf("Cart %s (%d items)\n", cart.ID, cart.TotalQuantity)
	for _, line := range cart.Lines {
		fmt.Printf("  %-40s x%-3d %s  [%s]\n",
			line.Merchandise.Product.Title, line.Quantity, line.Cost.TotalAmount.Format(), line.ID)
	}
	fmt.Printf("Subtotal: %s\n", cart.Cost.SubtotalAmount.Format())
	fmt.Printf("Total:    %s\n", cart.Cost.TotalAmount.Format())
	fmt.Printf("Checkout: %s\n", cart.CheckoutURL)
}

func defaultIDFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront_cart_id"
	}
	return filepath.Join(home, ".storefront_cart_id")
}
