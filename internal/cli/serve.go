package cli

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/color-analyzer/internal/auth"
	"github.com/example/color-analyzer/internal/handlers"
	"github.com/example/color-analyzer/internal/logging"
	"github.com/example/color-analyzer/internal/server"
	"github.com/example/color-analyzer/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to $ADDR or :8080)")
}

func runServe(addr string) error {
	logger, err := logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if addr == "" {
		addr = getEnv("ADDR", ":8080")
	}

	uc := usecase.NewAnalysisUseCase(logger)

	r := gin.Default()
	r.MaxMultipartMemory = handlers.MaxUploadSize

	// Auth is opt-in: without a secret the service is open, matching the
	// original deployment.
	var middleware []gin.HandlerFunc
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		middleware = append(middleware, auth.JWTMiddleware(secret, os.Getenv("JWT_AUDIENCE")))
	}

	handlers.RegisterRoutes(r, uc, middleware...)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	logger.Info("color analyzer listening", zap.String("addr", addr))
	if err := server.Serve(srv, 15*time.Second, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
