package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/JoeShih716/audit-ledger/api/ledger/v1"
)

var (
	benchTotal       int
	benchConcurrency int
	benchAmount      string
	benchDeadline    time.Duration
)

// benchCmd 壓測: 大量並發存款到同一個帳戶
var benchCmd = &cobra.Command{
	Use:   "bench [number]",
	Short: "Fire concurrent deposits at one account and report throughput",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(s *session, args []string) error {
		// 壓測不共用 --timeout，整批請求有自己的期限
		ctx, cancel := context.WithTimeout(context.Background(), benchDeadline)
		defer cancel()

		var wg sync.WaitGroup
		var failed atomic.Int64
		wg.Add(benchTotal)

		sem := make(chan struct{}, benchConcurrency)
		startTime := time.Now()

		for i := 0; i < benchTotal; i++ {
			sem <- struct{}{}
			go func(idx int) {
				defer wg.Done()
				defer func() { <-sem }()

				resp, err := s.client.Deposit(ctx, &pb.DepositRequest{
					AccountNumber: args[0],
					Amount:        benchAmount,
					Description:   "bench",
				})
				if err == nil && !resp.GetStatus().GetSuccess() {
					err = checkStatus(resp.Status)
				}
				if err != nil {
					if failed.Add(1) == 1 || idx%10000 == 0 {
						fmt.Printf("deposit %d failed: %v\n", idx, err)
					}
				}
			}(i)
		}
		wg.Wait()

		elapsed := time.Since(startTime)
		fmt.Printf("Completed %d requests in %v (%d failed)\n", benchTotal, elapsed, failed.Load())
		fmt.Printf("TPS: %.2f\n", float64(benchTotal)/elapsed.Seconds())
		return nil
	}),
}

func init() {
	benchCmd.Flags().IntVarP(&benchTotal, "count", "n", 100000, "total requests")
	benchCmd.Flags().IntVar(&benchConcurrency, "concurrency", 1000, "in-flight requests")
	benchCmd.Flags().StringVar(&benchAmount, "amount", "1", "amount per deposit")
	benchCmd.Flags().DurationVar(&benchDeadline, "deadline", 120*time.Second, "deadline for the whole run, independent of --timeout")
	rootCmd.AddCommand(benchCmd)
}
