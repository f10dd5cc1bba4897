package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/pradiptarana/checkout-api/internal/config"
	"github.com/pradiptarana/checkout-api/internal/handlers"
	"github.com/pradiptarana/checkout-api/internal/metrics"
	"github.com/pradiptarana/checkout-api/internal/notifications"
	"github.com/pradiptarana/checkout-api/internal/payments"
)

func setupRouter(appCfg *config.Config, cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{appCfg.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterTransactionRoutes(r, cfg)
	handlers.RegisterNotifyRoutes(r, cfg)

	return r
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	snapClient := payments.NewSnapClient(appCfg.MidtransServerKey, appCfg.MidtransClientKey)

	messagingClient, err := notifications.NewMessagingClient(context.Background(), notifications.Credentials{
		ProjectID:   appCfg.FirebaseProjectID,
		ClientEmail: appCfg.FirebaseClientEmail,
		PrivateKey:  appCfg.FirebasePrivateKey,
	})
	if err != nil {
		log.Fatalf("failed to init messaging client: %v", err)
	}

	cfg := handlers.HandlerConfig{
		Snap:      snapClient,
		Messaging: messagingClient,
	}

	r := setupRouter(appCfg, cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + appCfg.Port
		log.Infof("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
