package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	grpc_adapter "github.com/JoeShih716/audit-ledger/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/audit-ledger/internal/app/core/adapter/in/http"
	journal_adapter "github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/journal"
	memory_adapter "github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/audit-ledger/internal/config"
	"github.com/JoeShih716/audit-ledger/pkg/journal"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "core",
	Short: "In-memory account ledger served over gRPC and HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config/config.yaml", "path to the yaml config file")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// 1. Logger
	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// 2. 稽核串流
	opts := []usecase.Option{usecase.WithLogger(logger)}
	auditOut, err := openAuditOutput(cfg.Audit.Output)
	if err != nil {
		return err
	}
	stopAudit := func() {}
	if auditOut != nil {
		sink := journal_adapter.NewSink(auditOut)
		defer sink.Close()
		if cfg.Audit.Buffer > 0 {
			async := journal_adapter.NewAsyncSink(sink, cfg.Audit.Buffer, logger)
			auditCtx, cancelAudit := context.WithCancel(context.Background())
			async.Start(auditCtx)
			stopAudit = func() {
				cancelAudit()
				async.Wait()
			}
			opts = append(opts, usecase.WithAuditSink(async))
		} else {
			opts = append(opts, usecase.WithAuditSink(sink))
		}
	}

	// 3. 初始化 UseCase
	ledger := usecase.NewLedgerService(memory_adapter.NewStore(), opts...)
	if err := seedAccounts(ctx, ledger, cfg.Seed); err != nil {
		return err
	}
	logger.Info("ledger ready", "accounts", len(cfg.Seed))

	errCh := make(chan error, 2)

	// 4. 啟動 gRPC Server
	var shutdowns []func(context.Context)
	if cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr)
		if err != nil {
			return fmt.Errorf("listen grpc %s: %w", cfg.GRPC.Addr, err)
		}
		srv, hs := grpc_adapter.NewServer(ledger, logger)
		go func() {
			logger.Info("starting grpc server", "addr", lis.Addr().String())
			if err := srv.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
		shutdowns = append(shutdowns, func(context.Context) {
			hs.Shutdown()
			srv.GracefulStop()
		})
	}

	// 5. 啟動 HTTP Server
	if cfg.HTTP.Enabled {
		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: http_adapter.NewRouter(ledger, logger)}
		go func() {
			logger.Info("starting http server", "addr", cfg.HTTP.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("http server: %w", err)
			}
		}()
		shutdowns = append(shutdowns, func(ctx context.Context) {
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("http shutdown", "error", err)
			}
		})
	}

	if len(shutdowns) == 0 {
		return errors.New("neither grpc nor http is enabled")
	}

	// Graceful Shutdown
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down server...")
	case runErr = <-errCh:
		logger.Error("server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	for _, shutdown := range shutdowns {
		shutdown(shutdownCtx)
	}
	// 不會再有新的交易，輸出剩下的稽核紀錄
	stopAudit()

	if report, err := ledger.VerifyLedger(shutdownCtx); err != nil {
		logger.Error("ledger verification failed", "error", err)
	} else {
		logger.Info("server exited", "transactions", report.Transactions, "last_id", report.LastID)
	}
	return runErr
}

// seedAccounts 建立設定檔中的帳戶
func seedAccounts(ctx context.Context, ledger *usecase.LedgerService, seeds []config.SeedAccount) error {
	for _, seed := range seeds {
		balance, err := domain.ParseAmount(seed.Balance)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.Number, err)
		}
		if _, err := ledger.CreateAccount(ctx, seed.Number, balance, seed.Holder); err != nil {
			return fmt.Errorf("seed %s: %w", seed.Number, err)
		}
	}
	return nil
}

// openAuditOutput 空字串回傳 nil (不輸出)
func openAuditOutput(output string) (io.Writer, error) {
	switch output {
	case "":
		return nil, nil
	case "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	default:
		file, err := journal.OpenFile(output)
		if err != nil {
			return nil, fmt.Errorf("open audit output %s: %w", output, err)
		}
		return file, nil
	}
}

// nopCloser 不實作 io.Closer，Sink.Close 不會關掉 stdout / stderr
type nopCloser struct {
	io.Writer
}
