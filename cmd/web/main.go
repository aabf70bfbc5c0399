package main

import (
	"context"
	"errors"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"citydirectory/internal/models"
	"citydirectory/internal/repository"

	"github.com/alexedwards/scs/mongodbstore"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	production     bool
	allowedOrigins []string
	session        *scs.SessionManager
	templateCache  map[string]*template.Template
	DB             *models.MongoDB
	users          *repository.UserRepository
	limiter        *clientLimiter
}

func main() {
	addr := flag.String("addr", "", "HTTP network address (overrides PORT)")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	production := os.Getenv("APP_ENV") == "production"
	if !production {
		if err := godotenv.Load(); err != nil {
			infoLog.Println("No .env file found, using process environment")
		}
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		if production {
			errorLog.Fatal("MONGODB_URI must be set in production")
		}
		uri = "mongodb://127.0.0.1:27017"
		infoLog.Printf("MONGODB_URI not set, falling back to %s", uri)
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "citydirectory"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := models.OpenMongoDB(ctx, uri, dbName)
	if err != nil {
		cancel()
		errorLog.Fatal(err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		errorLog.Fatal(err)
	}
	cancel()
	infoLog.Println("Connected to MongoDB")

	session := scs.New()
	session.Store = mongodbstore.New(db.Client.Database(dbName))
	session.Lifetime = 24 * time.Hour
	session.Cookie.HttpOnly = true
	session.Cookie.SameSite = http.SameSiteStrictMode
	session.Cookie.Secure = production

	templateCache, err := newTemplateCache()
	if err != nil {
		errorLog.Fatal(err)
	}

	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	app := &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		production:     production,
		allowedOrigins: origins,
		session:        session,
		templateCache:  templateCache,
		DB:             db,
		users:          &repository.UserRepository{Collection: db.Users},
		limiter:        newClientLimiter(rateLimitWindow(), rateLimitMax()),
	}

	if *addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		*addr = ":" + port
	}

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-shutdown
		infoLog.Println("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			errorLog.Println(err)
		}
		if err := db.Close(ctx); err != nil {
			errorLog.Println(err)
		}
	}()

	infoLog.Printf("Starting city directory on %s", *addr)
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		errorLog.Fatal(err)
	}
	<-done
}

func rateLimitWindow() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_WINDOW_MS")); err == nil && v > 0 {
		return time.Duration(v) * time.Millisecond
	}
	return 15 * time.Minute
}

func rateLimitMax() int {
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX_REQUESTS")); err == nil && v > 0 {
		return v
	}
	return 100
}
