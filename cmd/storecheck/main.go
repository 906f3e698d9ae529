// Command storecheck probes the upstream store API from the command line:
// it prints the health report and the current service catalog with the same
// price formatting the storefront uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"chirostore/internal/ui"
	"chirostore/pkg/virtusim"
)

func main() {
	baseURL := flag.String("url", "https://minatoz997-chirostore.hf.space", "store API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	client := virtusim.New(*baseURL, *timeout)
	ctx := context.Background()

	health, err := client.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("status: %s (api key configured: %v)\n", health.Status, health.APIKeyConfigured)

	services, err := client.ListServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list services: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d services:\n", len(services))
	for _, svc := range services {
		price := svc.Price
		if svc.Pricing != nil {
			price = ui.FormatCurrency(svc.Pricing.SellingPrice)
		} else if svc.DisplayPrice > 0 {
			price = ui.FormatCurrency(svc.DisplayPrice)
		}
		fmt.Printf("  %-6s %-24s %s\n", svc.ID, svc.Name, price)
	}
}
