package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/hamedazad/synurix/internal/auth"
	"github.com/hamedazad/synurix/internal/database"
)

// MyServer contain port which server are running on, the database instance and
// the configured administrator credentials
type MyServer struct {
	Port  int
	DB    *database.DBinstanceStruct
	Creds auth.AdminCredentials
}

// NewServer construct new Server instance. The database is migrated on
// construction and the admin credentials are read from the environment, so a
// misconfigured deployment fails here instead of on the first request.
func NewServer() (*http.Server, *database.DBinstanceStruct, error) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("database not configured: %w", err)
	}
	db, err := database.NewDBInstance(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("database failed to initialize: %w", err)
	}

	creds, err := auth.LoadCredentialsFromEnv()
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	s := &MyServer{Port: port, DB: db, Creds: creds}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, db, nil
}
