package main

import (
	"os"

	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/JoeShih716/audit-ledger/api/ledger/v1"
)

var description string

var createCmd = &cobra.Command{
	Use:   "create [number] [holder] [initial-balance]",
	Short: "Open an account, optionally with initial funding",
	Args:  cobra.RangeArgs(2, 3),
	RunE: withClient(func(s *session, args []string) error {
		req := &pb.CreateAccountRequest{AccountNumber: args[0], HolderName: args[1]}
		if len(args) == 3 {
			req.InitialBalance = args[2]
		}
		resp, err := s.client.CreateAccount(s.ctx, req)
		if err != nil {
			return err
		}
		if err := checkStatus(resp.Status); err != nil {
			return err
		}
		return printProto(os.Stdout, resp.GetAccount())
	}),
}

var depositCmd = &cobra.Command{
	Use:   "deposit [number] [amount]",
	Short: "Credit an account",
	Args:  cobra.ExactArgs(2),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.Deposit(s.ctx, &pb.DepositRequest{AccountNumber: args[0], Amount: args[1], Description: description})
		if err != nil {
			return err
		}
		if err := checkStatus(resp.Status); err != nil {
			return err
		}
		return printProto(os.Stdout, resp.GetTransaction())
	}),
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [number] [amount]",
	Short: "Debit an account, overdraft is rejected",
	Args:  cobra.ExactArgs(2),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.Withdraw(s.ctx, &pb.WithdrawRequest{AccountNumber: args[0], Amount: args[1], Description: description})
		if err != nil {
			return err
		}
		if err := checkStatus(resp.Status); err != nil {
			return err
		}
		return printProto(os.Stdout, resp.GetTransaction())
	}),
}

var transferCmd = &cobra.Command{
	Use:   "transfer [from] [to] [amount]",
	Short: "Move funds between two accounts",
	Args:  cobra.ExactArgs(3),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.Transfer(s.ctx, &pb.TransferRequest{
			FromAccount: args[0], ToAccount: args[1], Amount: args[2], Description: description,
		})
		if err != nil {
			return err
		}
		if err := checkStatus(resp.Status); err != nil {
			return err
		}
		return printProto(os.Stdout, &pb.TransferResponse{Debit: resp.GetDebit(), Credit: resp.GetCredit()})
	}),
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [number]",
	Short: "Deactivate an account; it stays queryable",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.DeactivateAccount(s.ctx, &pb.DeactivateAccountRequest{AccountNumber: args[0]})
		if err != nil {
			return err
		}
		if err := checkStatus(resp.Status); err != nil {
			return err
		}
		return printProto(os.Stdout, resp.GetAccount())
	}),
}

var accountCmd = &cobra.Command{
	Use:   "account [number]",
	Short: "Show an account",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.GetAccount(s.ctx, &pb.GetAccountRequest{AccountNumber: args[0]})
		if err != nil {
			return err
		}
		return printProto(os.Stdout, resp.GetAccount())
	}),
}

var balanceCmd = &cobra.Command{
	Use:   "balance [number]",
	Short: "Show an account balance",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.GetBalance(s.ctx, &pb.GetBalanceRequest{AccountNumber: args[0]})
		if err != nil {
			return err
		}
		return printProto(os.Stdout, resp)
	}),
}

var historyCmd = &cobra.Command{
	Use:   "history [number]",
	Short: "List an account's transactions, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(s *session, args []string) error {
		resp, err := s.client.GetHistory(s.ctx, &pb.GetHistoryRequest{AccountNumber: args[0]})
		if err != nil {
			return err
		}
		return printProto(os.Stdout, resp)
	}),
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Replay the server's log and compare it with account balances",
	Args:  cobra.NoArgs,
	RunE: withClient(func(s *session, _ []string) error {
		resp, err := s.client.VerifyLedger(s.ctx, &pb.VerifyLedgerRequest{})
		if err != nil {
			return err
		}
		if err := printProto(os.Stdout, resp); err != nil {
			return err
		}
		return checkStatus(resp.Status)
	}),
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query the gRPC health service",
	Args:  cobra.NoArgs,
	RunE: withClient(func(s *session, _ []string) error {
		conn, err := s.pool.GetConnection(serverAddr)
		if err != nil {
			return err
		}
		resp, err := healthpb.NewHealthClient(conn).Check(s.ctx, &healthpb.HealthCheckRequest{Service: pb.LedgerService_ServiceDesc.ServiceName})
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, map[string]string{"status": resp.Status.String()})
	}),
}

func init() {
	for _, cmd := range []*cobra.Command{depositCmd, withdrawCmd, transferCmd} {
		cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	}
	rootCmd.AddCommand(createCmd, depositCmd, withdrawCmd, transferCmd, deactivateCmd,
		accountCmd, balanceCmd, historyCmd, auditCmd, healthCmd)
}
