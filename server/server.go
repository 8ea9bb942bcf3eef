package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"harmonic/config"
	"harmonic/core/catalog"
	"harmonic/core/favorites"
	"harmonic/core/identity"
	"harmonic/core/seed"
	"harmonic/core/session"
	"harmonic/db"
	"harmonic/logger"
	"harmonic/model"
	"harmonic/repository"
	"harmonic/storage"

	"github.com/gorilla/mux"
)

// Start initializes the stores and runs the HTTP server until interrupted.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	if err := db.InitDB(); err != nil {
		logger.Fatal("failed to initialize database schema", logger.ErrorField(err))
	}

	if err := db.ConnectGormDB(cfg); err != nil {
		logger.Fatal("failed to connect gorm", logger.ErrorField(err))
	}
	defer db.CloseGormDB()

	if err := db.MigrateFavorites(); err != nil {
		logger.Fatal("failed to migrate favorites table", logger.ErrorField(err))
	}

	if err := db.ConnectRedis(cfg); err != nil {
		logger.Fatal("failed to connect to redis", logger.ErrorField(err))
	}
	defer db.CloseRedis()

	// Object storage is optional; without it cover uploads fall back to URLs.
	if err := storage.InitMinio(cfg); err != nil {
		logger.Warn("object storage unavailable, cover upload disabled", logger.ErrorField(err))
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	musicRepo := repository.NewMySQLMusicRepository(db.DB)
	favoriteRepo := repository.NewGormFavoriteRepository(db.GormDB)

	if err := seed.Run(userRepo, musicRepo); err != nil {
		logger.Fatal("failed to seed catalog", logger.ErrorField(err))
	}

	identitySvc := identity.NewService(userRepo, musicRepo)
	catalogSvc := catalog.NewService(musicRepo, userRepo)
	favoritesSvc := favorites.NewService(favoriteRepo, musicRepo)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionLifetime)

	h := NewHandler(identitySvc, catalogSvc, favoritesSvc, sessions, cfg)
	server.Handler = newRouter(h)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", logger.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("server stopped")
}

// newRouter wires the route table onto a fresh mux router.
func newRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(h.SessionMiddleware)

	router.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)
	router.HandleFunc("/home", h.HomeHandler).Methods(http.MethodGet)

	router.HandleFunc("/login", h.LoginPageHandler).Methods(http.MethodGet)
	router.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/logout", h.LogoutHandler).Methods(http.MethodGet)
	router.HandleFunc("/register", h.RegisterPageHandler).Methods(http.MethodGet)
	router.HandleFunc("/register", h.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/recover", h.RecoverPageHandler).Methods(http.MethodGet)
	router.HandleFunc("/recover", h.RecoverHandler).Methods(http.MethodPost)

	router.HandleFunc("/profile", h.RequireUser(h.ProfilePageHandler)).Methods(http.MethodGet)
	router.HandleFunc("/profile", h.RequireUser(h.ProfileUpdateHandler)).Methods(http.MethodPost)

	router.HandleFunc("/crud_msc", h.RequireRole(h.TrackFormHandler, model.RoleArtist, model.RoleAdmin)).Methods(http.MethodGet)
	router.HandleFunc("/crud_msc", h.RequireRole(h.TrackCreateHandler, model.RoleArtist, model.RoleAdmin)).Methods(http.MethodPost)

	router.HandleFunc("/favorite/{music_id}", h.RequireUser(h.FavoriteToggleHandler)).Methods(http.MethodPost)

	router.HandleFunc("/admin/update_user", h.RequireRole(h.AdminUpdateUserHandler, model.RoleAdmin)).Methods(http.MethodPost)
	router.HandleFunc("/admin/delete_user", h.RequireRole(h.AdminDeleteUserHandler, model.RoleAdmin)).Methods(http.MethodPost)

	return router
}
