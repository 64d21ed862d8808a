package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langportal/backend/internal/config"
	"github.com/langportal/backend/internal/database"
	"github.com/langportal/backend/internal/database/admin"
	"github.com/langportal/backend/internal/database/dashboard"
	"github.com/langportal/backend/internal/database/groups"
	"github.com/langportal/backend/internal/database/study"
	"github.com/langportal/backend/internal/database/words"
	http_controllers "github.com/langportal/backend/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM with a bounded timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting lang portal backend v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	studyRepo := study.NewRepository(db.DB)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		WordStore:      words.NewRepository(db.DB),
		GroupStore:     groups.NewRepository(db.DB),
		SessionStore:   studyRepo,
		ActivityStore:  studyRepo,
		ReviewStore:    studyRepo,
		DashboardStore: dashboard.NewRepository(db.DB),
		AdminStore:     admin.NewRepository(db.DB),
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
