package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/gfilippi/salesvc/config"
	saleapi "github.com/gfilippi/salesvc/internal/api/sale_service_api"
	"github.com/gfilippi/salesvc/internal/pb/salesvc"
	"github.com/gfilippi/salesvc/internal/service/sale"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC server and the HTTP front (grpc-gateway + swagger) and
// blocks until the context is canceled or a server fails.
func Run(ctx context.Context, cfg config.Config, saleSvc sale.SaleUseCase) error {
	s, err := newServers(cfg, saleSvc)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPCAddress, err)
	}
	log.Info().Str("address", cfg.GRPCAddress).Msg("starting gRPC server")
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	log.Info().Str("address", cfg.HTTPAddress).Msg("starting HTTP gateway")
	go func() { errCh <- s.httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg config.Config, saleSvc sale.SaleUseCase) (*Servers, error) {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor))

	salesvc.RegisterSaleServer(grpcSrv, saleapi.NewServer(saleSvc))
	reflection.Register(grpcSrv)

	mux := runtime.NewServeMux()
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := salesvc.RegisterSaleHandlerFromEndpoint(context.Background(), mux, cfg.GRPCAddress, opts); err != nil {
		return nil, fmt.Errorf("register sale gateway: %w", err)
	}

	handler := http.NewServeMux()
	handler.Handle("/", mux)

	if cfg.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.Handle("/docs/sale/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/sale.swagger.json"),
		))
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: handler,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}, nil
}

// loggingInterceptor logs every unary call with its duration and status code.
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Str("code", status.Code(err).String()).
		Msg("rpc")

	return resp, err
}
