//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:embed index.html
var indexHTML []byte

const bundleRef = `src="stellar.js"`

// stampBundle tags the bundle reference with buildID so browsers refetch it
// after every server restart.
func stampBundle(page []byte, buildID string) []byte {
	return []byte(strings.Replace(string(page), bundleRef, `src="stellar.js?v=`+buildID+`"`, 1))
}

// newRouter serves the embedded page, a health check, and everything else
// (the compiled bundle) from staticDir.
func newRouter(staticDir, buildID string) http.Handler {
	index := stampBundle(indexHTML, buildID)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	page := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(index)
	}
	r.Get("/", page)
	r.Get("/index.html", page)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	return r
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	buildID := uuid.New().String()
	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(*staticDir, buildID),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Stellar Navigator server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Build ID: %s", buildID)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}
