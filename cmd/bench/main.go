// README: Load driver for the quote endpoint; prints throughput and latency.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Config struct {
	BaseURL       string
	Token         string
	PackageTypeID string
	PickLat       float64
	PickLng       float64
	PromoCode     string
	Concurrency   int
	Duration      time.Duration
}

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"package_type_id": cfg.PackageTypeID,
		"pick_lat":        cfg.PickLat,
		"pick_lng":        cfg.PickLng,
		"promo_code":      cfg.PromoCode,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var mu sync.Mutex
	var latencies []time.Duration
	var errCount int

	client := &http.Client{Timeout: 10 * time.Second}
	var wg sync.WaitGroup
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				start := time.Now()
				ok := fire(ctx, client, cfg, body)
				elapsed := time.Since(start)
				mu.Lock()
				if ok {
					latencies = append(latencies, elapsed)
				} else {
					errCount++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(latencies) == 0 {
		fmt.Println("no successful requests")
		os.Exit(1)
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	total := len(latencies)
	fmt.Printf("requests=%d errors=%d rps=%.1f\n", total, errCount, float64(total)/cfg.Duration.Seconds())
	fmt.Printf("p50=%v p95=%v p99=%v max=%v\n",
		latencies[total/2], latencies[total*95/100], latencies[total*99/100], latencies[total-1])
}

func fire(ctx context.Context, client *http.Client, cfg Config, body []byte) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/api/quotes", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("DISPATCH_BENCH_BASE_URL", "http://localhost:8080"), "API base URL")
	flag.StringVar(&cfg.Token, "token", os.Getenv("DISPATCH_BENCH_TOKEN"), "Bearer token for the quote endpoint")
	flag.StringVar(&cfg.PackageTypeID, "package", envOrDefault("DISPATCH_BENCH_PACKAGE", "1"), "Package type id to quote")
	flag.Float64Var(&cfg.PickLat, "pick-lat", 25.0330, "Pickup latitude")
	flag.Float64Var(&cfg.PickLng, "pick-lng", 121.5654, "Pickup longitude")
	flag.StringVar(&cfg.PromoCode, "promo", "", "Optional promo code")
	flag.IntVar(&cfg.Concurrency, "concurrency", 20, "Concurrent workers")
	flag.DurationVar(&cfg.Duration, "duration", 10*time.Second, "Run duration")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
