package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/journal"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// verifyJournalCmd 離線重播 core 輸出的稽核串流，不需要連線
var verifyJournalCmd = &cobra.Command{
	Use:   "verify-journal [file]",
	Short: "Replay an exported audit journal offline and check its invariants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		runs, err := journal.DecodeFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		// 每次執行的交易 ID 與餘額各自從頭開始，逐段重播
		reports := make([]runReport, 0, len(runs))
		for i, run := range runs {
			report, err := usecase.Audit(slices.Values(run.Transactions))
			if err != nil {
				return fmt.Errorf("run %d (%s): %w", i+1, run.ID, err)
			}
			report.Accounts = len(report.Balances)
			report.CheckedAt = time.Now()
			reports = append(reports, runReport{Run: run.ID.String(), StartedAt: run.StartedAt, AuditReport: report})
		}
		return printJSON(os.Stdout, reports)
	},
}

// runReport 單次執行的重播結果
type runReport struct {
	Run       string    `json:"run"`
	StartedAt time.Time `json:"started_at"`
	usecase.AuditReport
}

func init() {
	rootCmd.AddCommand(verifyJournalCmd)
}
