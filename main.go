package main

import (
	auth "Tendon/internal/auth"
	batch "Tendon/internal/calc/batch"
	importer "Tendon/internal/calc/importer"
	loads "Tendon/internal/calc/loads"
	optimize "Tendon/internal/calc/optimize"
	report "Tendon/internal/calc/report"
	profile "Tendon/internal/profile"
	repo "Tendon/internal/repo"
	"context"
	"database/sql"

	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB, logger *zap.Logger) {
	store := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logger.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store, Log: logger}
	profileH := &profile.ProfileHandler{Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	optH := &optimize.Handler{Service: &optimize.Service{Repo: store, Log: logger}}
	reportH := &report.Handler{Repo: store}
	loadsH := &loads.Handler{}
	importH := &importer.Handler{}
	batchH := &batch.Handler{}

	secureApi.HandleFunc("/projects", optH.CreateProject).Methods("POST")
	secureApi.HandleFunc("/projects", optH.ListProjects).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", optH.GetProject).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}/optimize", optH.Run).Methods("POST")
	secureApi.HandleFunc("/projects/{id:[0-9]+}/report", reportH.Generate).Methods("GET")

	secureApi.HandleFunc("/tools/optimize/calc", optH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/optimize/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/costtable/import", importH.CostTable).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db := auth.InitDB(logger)
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("Starting server", zap.String("addr", addr))
	HandleList(mux, db, logger)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")

	wg.Wait()
}
