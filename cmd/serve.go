package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/castpage/catalog-api/api"
	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/database"
	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/internal/services/episodes"
	"github.com/castpage/catalog-api/internal/services/session"
	"github.com/castpage/catalog-api/internal/services/storage"
	"github.com/castpage/catalog-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the catalog API server with the configured settings.

The server exposes the public episode catalog under /api/v1/episodes
and the session-protected admin panel under /api/v1/admin.

Example:
  catalog-api serve
  catalog-api serve --port 9090
  catalog-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	deps, db, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDatabase(db)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	// Serve locally stored cover images when the local backend is in use
	if local, ok := deps.ObjectStore.(*storage.LocalStore); ok {
		server.Engine().Static(cfg.Storage.LocalBaseURL, local.Dir())
	}

	log.Printf("[DEBUG] Starting catalog API server on %s:%d", serverHost, serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Printf("[DEBUG] Shutting down server")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Printf("[DEBUG] Server stopped")
	return nil
}

// buildDependencies wires the configured store, session, and storage
// backends into the handler dependency container. The returned DB is
// nil when the in-memory backend is selected.
func buildDependencies(cfg *config.Config) (*types.Dependencies, *database.DB, error) {
	deps := &types.Dependencies{
		MaxImageWidth: cfg.Storage.MaxImageWidth,
		SecureCookies: config.IsProduction(),
	}

	var db *database.DB
	var store episodes.EpisodeStore

	switch cfg.Database.Backend {
	case "memory":
		store = episodes.NewMemoryStore()
	default:
		initialized, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing database: %w", err)
		}
		if err := initialized.AutoMigrate(&models.Episode{}, &models.FeaturedEpisode{}); err != nil {
			initialized.Close()
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}
		db = initialized
		store = episodes.NewRepository(db.DB)
	}

	deps.DB = db
	deps.EpisodeService = episodes.NewService(store, episodes.WithSnapshotCache(episodes.NewSnapshotCache()))

	codec := session.NewCodec(cfg.Auth.SessionSecret)
	deps.SessionService = session.NewService(codec, cfg.Auth.AdminPassword)

	switch cfg.Storage.Backend {
	case "supabase":
		deps.ObjectStore = storage.NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket)
	default:
		deps.ObjectStore = storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.LocalBaseURL)
	}

	return deps, db, nil
}
