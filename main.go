package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "booklibrary-backend/docs"
	"booklibrary-backend/internal/library/authors"
	"booklibrary-backend/internal/library/books"
	"booklibrary-backend/internal/library/members"
	"booklibrary-backend/internal/library/ratings"
	"booklibrary-backend/internal/library/reservations"
	"booklibrary-backend/internal/library/reviews"
	"booklibrary-backend/internal/platform/auth"
	"booklibrary-backend/internal/platform/db"
)

// @title Book Library API
// @version 1.0
// @description 蔵書・会員・予約・レビュー管理API
// @BasePath /api/v1
func main() {
	// 設定読み込み
	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if mode != "dev" && mode != "release" {
		log.Println("Usage: go run main.go [dev|release]")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// /api/v1
	api := r.Group("/api/v1")

	secret := []byte(cfg.Auth.JWTSecret)
	auth.RegisterRoutes(api.Group("/auth"), auth.NewService(conn, secret), secret)

	// 蔵書系ルート。司書トークン必須（devで鍵未設定なら素通し）
	lib := api.Group("")
	if len(secret) > 0 {
		lib.Use(auth.RequireAuth(secret))
	} else if mode == "release" {
		log.Fatal("jwt_secret is required in release mode")
	} else {
		log.Println("[WARN] jwt_secret is empty, API routes are unauthenticated")
	}

	authors.RegisterRoutes(lib, authors.NewService(conn))
	books.RegisterRoutes(lib, books.NewService(conn))
	members.RegisterRoutes(lib, members.NewService(conn))
	reviews.RegisterRoutes(lib, reviews.NewService(conn))
	reservations.RegisterRoutes(lib, reservations.NewService(conn))
	ratings.RegisterRoutes(lib, ratings.NewService(conn))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
