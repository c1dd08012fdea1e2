package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	pb "github.com/JoeShih716/audit-ledger/api/ledger/v1"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// ServiceName 帳本服務全名，也是健康檢查使用的服務名稱
var ServiceName = pb.LedgerService_ServiceDesc.ServiceName

// NewServer 建立已註冊帳本服務與健康檢查的 *grpc.Server
//
// 回傳:
//
//	*grpc.Server: 尚未 Serve
//	*health.Server: 關機前可呼叫 Shutdown() 讓健康檢查回報 NOT_SERVING
func NewServer(ledger *usecase.LedgerService, logger *slog.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(LoggingInterceptor(logger))}, opts...)
	s := grpc.NewServer(opts...)

	pb.RegisterLedgerServiceServer(s, NewGrpcServer(ledger))

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	// 註冊 reflection 服務，讓 grpcurl 等工具可以查詢服務
	reflection.Register(s)
	return s, hs
}

// LoggingInterceptor 每個請求記一行 log
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.LogAttrs(ctx, slog.LevelDebug, "grpc request",
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return resp, err
	}
}
