package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/example/wishwall/internal/broadcast"
	"github.com/example/wishwall/internal/config"
	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/handlers"
	"github.com/example/wishwall/internal/repository"
	"github.com/example/wishwall/internal/services"
	"github.com/example/wishwall/pkg/logger"
	"github.com/example/wishwall/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Open the JSON document store
	store := database.NewStore(cfg.DBPath)

	// Realtime broadcast hub
	hub := broadcast.NewHub()

	// --- Repositories ---
	wishRepo := repository.NewWishRepository(store)
	likeRepo := repository.NewLikeRepository(store)
	commentRepo := repository.NewCommentRepository(store)

	// --- Services ---
	wishService := services.NewWishService(wishRepo, hub)
	likeService := services.NewLikeService(likeRepo)
	commentService := services.NewCommentService(commentRepo, hub)
	paymentService := services.NewPaymentService(cfg)

	// --- Handlers ---
	wishHandler := handlers.NewWishHandler(wishService)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentHandler := handlers.NewCommentHandler(commentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Wish routes
	api.HandleFunc("/wishes", wishHandler.GetWishesHandler).Methods("GET")
	api.HandleFunc("/wishes", wishHandler.CreateWishHandler).Methods("POST")
	api.HandleFunc("/wishes/{id}", wishHandler.GetWishByIDHandler).Methods("GET")
	api.HandleFunc("/wishes/{id}/fulfill", wishHandler.FulfillWishHandler).Methods("POST")

	// Like routes
	api.HandleFunc("/wishes/{id}/like", likeHandler.ToggleLikeHandler).Methods("POST")
	api.HandleFunc("/wishes/{id}/likes", likeHandler.GetLikesHandler).Methods("GET")

	// Comment routes
	api.HandleFunc("/wishes/{id}/comments", commentHandler.GetCommentsHandler).Methods("GET")
	api.HandleFunc("/wishes/{id}/comments", commentHandler.AddCommentHandler).Methods("POST")

	// Payment routes
	api.HandleFunc("/payments/create-order", paymentHandler.CreateOrderHandler).Methods("POST")

	// Uploads
	api.HandleFunc("/uploads", uploadHandler.UploadFileHandler).Methods("POST")
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Realtime channel
	router.HandleFunc("/ws", hub.ServeWS)

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
