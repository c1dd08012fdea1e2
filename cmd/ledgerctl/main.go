package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/JoeShih716/audit-ledger/api/ledger/v1"
	grpcpool "github.com/JoeShih716/audit-ledger/pkg/grpc"
)

var (
	serverAddr string
	timeout    time.Duration
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operator CLI for the audit ledger gRPC service",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50051", "ledger gRPC address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-command deadline")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every gRPC call to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session 一次指令使用的連線與 client
type session struct {
	pool   *grpcpool.Pool
	client pb.LedgerServiceClient
	ctx    context.Context
	cancel context.CancelFunc
}

func dial(cmd *cobra.Command) (*session, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pool := grpcpool.NewPool(grpcpool.WithLogger(logger))
	conn, err := pool.GetConnection(serverAddr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return &session{pool: pool, client: pb.NewLedgerServiceClient(conn), ctx: ctx, cancel: cancel}, nil
}

func (s *session) Close() {
	s.cancel()
	_ = s.pool.Close()
}

// withClient 建立連線後執行 fn，結束時關閉
func withClient(fn func(s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := dial(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(s, args)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// protoOutput 欄位名稱沿用 proto 定義 (snake_case)，零值欄位也輸出
var protoOutput = protojson.MarshalOptions{
	Multiline:       true,
	Indent:          "  ",
	UseProtoNames:   true,
	EmitUnpopulated: true,
}

func printProto(w io.Writer, m proto.Message) error {
	b, err := protoOutput.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// checkStatus Soft Failure 轉成指令錯誤
func checkStatus(st *pb.Status) error {
	if st.GetSuccess() {
		return nil
	}
	return fmt.Errorf("%s: %s", st.GetErrorKind(), st.GetMessage())
}
