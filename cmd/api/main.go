package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/imagiro/imagiro-backend/internal/modules/cart"
	"github.com/imagiro/imagiro-backend/internal/modules/catalog"
	"github.com/imagiro/imagiro-backend/internal/modules/contact"
	"github.com/imagiro/imagiro-backend/internal/notify"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(catalog.SeedProducts(), catalog.GenericMaterials())
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	snapshots, closeDB, err := newSnapshotStore(logger)
	if err != nil {
		logger.Fatal("snapshot store init failed", zap.Error(err))
	}
	defer closeDB()

	notifier := notify.NewLogNotifier(logger)
	sessions := cart.NewSessions(snapshots, notifier, logger)
	cartService := cart.NewService(catalogService, sessions)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Contact & Newsletter ────────────────────────────────
	contactService := contact.NewService(contact.NewMemoryRepository(), logger)
	contact.NewHandler(contactService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("imagiro API server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newSnapshotStore picks Postgres when DATABASE_URL is set and a local
// JSON directory otherwise.
func newSnapshotStore(logger *zap.Logger) (cart.SnapshotStore, func(), error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("cart snapshots stored in postgres")
		return cart.NewPostgresSnapshotStore(db), func() { db.Close() }, nil
	}

	dir := os.Getenv("CART_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	store, err := cart.NewFileSnapshotStore(dir)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("cart snapshots stored on disk", zap.String("dir", dir))
	return store, func() {}, nil
}
