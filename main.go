package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"espora/database"
	"espora/handlers"
	"espora/logger"
	"espora/push"
	"espora/routes"
	"espora/storage"
	"espora/store"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	logger.Init()

	if os.Getenv("JWT_SECRET") == "" {
		logger.Log.Fatal("JWT_SECRET must be set")
	}

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(); err != nil {
			dbErr = err
			logger.Log.WithError(err).Warnf("MongoDB connection attempt %d failed", i)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		logger.Log.WithError(dbErr).Fatal("failed to connect to MongoDB")
	}
	defer database.DisconnectMongo()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	docs := store.NewMongo()

	var uploads storage.Uploader
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		cld, err := storage.NewCloudinary(url)
		if err != nil {
			logger.Log.WithError(err).Fatal("cloudinary configuration error")
		}
		uploads = cld
	} else {
		logger.Log.Warn("CLOUDINARY_URL not set, image uploads disabled")
	}

	ensureVAPIDKeys()
	pusher := push.NewSender(
		docs,
		os.Getenv("VAPID_SUBSCRIBER"),
		os.Getenv("VAPID_PUBLIC_KEY"),
		os.Getenv("VAPID_PRIVATE_KEY"),
	)

	handlers.Init(docs, uploads, pusher)
	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Infof("server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("forced shutdown")
	}

	logger.Log.Info("server stopped")
}

// ensureVAPIDKeys generates a keypair for local runs when none is
// configured. Production sets the keys as environment variables so
// subscriptions stay valid across restarts.
func ensureVAPIDKeys() {
	if os.Getenv("VAPID_PUBLIC_KEY") != "" && os.Getenv("VAPID_PRIVATE_KEY") != "" {
		return
	}
	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		logger.Log.WithError(err).Warn("failed to generate VAPID keys, push disabled")
		return
	}
	os.Setenv("VAPID_PUBLIC_KEY", publicKey)
	os.Setenv("VAPID_PRIVATE_KEY", privateKey)
	logger.Log.Warn("generated ephemeral VAPID keys; set VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY for production")
}
