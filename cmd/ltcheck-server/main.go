// Command ltcheck-server provides an HTTP REST API for grammar checking.
//
// Usage:
//
//	ltcheck-server -p 8080
//	ltcheck-server -p 8080 -c ltcheck.toml
//	LTCHECK_BASE_URL=http://localhost:8081/v2 ltcheck-server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Alfex4936/ltcheck/internal/config"
	"github.com/Alfex4936/ltcheck/ltcheck"
)

func main() {
	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	cfgPath := flag.String("c", envOr("LTCHECK_CONFIG", "ltcheck.toml"), "configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, err := ltcheck.New(cfg.Options())
	if err != nil {
		log.Fatalf("client init failed: %v", err)
	}

	wl, err := ltcheck.LoadWhitelist(cfg.Paths.Whitelist)
	if err != nil {
		log.Fatalf("whitelist: %v", err)
	}

	log.Printf("   service  : %s (default language %s)\n", cfg.Service.BaseURL, cfg.Language.Default)
	log.Printf("   whitelist: %s (%d words)\n", cfg.Paths.Whitelist, wl.Len())

	srv := ltcheck.NewServer(client, wl)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("ltcheck server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/check\n", *port)
	log.Printf("   GET  http://localhost:%s/v1/languages\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, srv.Handler()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
