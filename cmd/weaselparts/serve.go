package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/weaselparts/internal/adapter/handler"
	"github.com/rl1809/weaselparts/internal/adapter/handler/pb"
)

func serveCmd() *cobra.Command {
	var (
		httpAddr string
		grpcAddr string
		migrate  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inventory service over HTTP and gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("http") {
				cfg.HTTPAddr = httpAddr
			}
			if cmd.Flags().Changed("grpc") {
				cfg.GRPCAddr = grpcAddr
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			b, err := openBackend(ctx, cfg, logger)
			if err != nil {
				logger.Error("failed to open storage", zap.Error(err))
				return err
			}
			defer b.Close()

			if migrate {
				if err := b.adapter.Migrate(ctx); err != nil {
					return err
				}
			}

			inventory := b.service(cfg, logger)

			// Initialize gRPC server
			grpcServer := grpc.NewServer()
			pb.RegisterInventoryServer(grpcServer, handler.NewGRPCHandler(inventory, logger))

			lis, err := net.Listen("tcp", cfg.GRPCAddr)
			if err != nil {
				return err
			}

			go func() {
				logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
				if err := grpcServer.Serve(lis); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			// Initialize HTTP server
			httpServer := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           handler.NewHTTPHandler(inventory, logger).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}()

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info("shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
			logger.Info("HTTP server stopped")

			grpcServer.GracefulStop()
			logger.Info("gRPC server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&grpcAddr, "grpc", ":50051", "gRPC listen address")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create missing tables on start")
	return cmd
}
