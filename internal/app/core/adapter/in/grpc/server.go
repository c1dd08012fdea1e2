package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/JoeShih716/audit-ledger/api/ledger/v1"
	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// GrpcServer gRPC 入口 (Driving Adapter)
//
// 異動類操作的業務錯誤以 Success=false 回傳 (Soft Failure)；
// 查詢類操作則轉換成 gRPC status code。
type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	ledger *usecase.LedgerService
}

func NewGrpcServer(ledger *usecase.LedgerService) *GrpcServer {
	return &GrpcServer{
		ledger: ledger,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.AccountResponse, error) {
	// 1. 金額解析
	initial, err := domain.ParseAmount(req.InitialBalance)
	if err != nil {
		return &pb.AccountResponse{Status: failure(err)}, nil
	}

	// 2. 開戶
	account, err := s.ledger.CreateAccount(ctx, req.AccountNumber, initial, req.HolderName)
	if err != nil {
		return &pb.AccountResponse{Status: failure(err)}, nil
	}
	return &pb.AccountResponse{Status: ok(), Account: toAccount(account)}, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.TransactionResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return &pb.TransactionResponse{Status: failure(err)}, nil
	}
	tran, err := s.ledger.Deposit(ctx, req.AccountNumber, amount, req.Description)
	if err != nil {
		return &pb.TransactionResponse{Status: failure(err)}, nil
	}
	return &pb.TransactionResponse{Status: ok(), Transaction: toTransaction(tran)}, nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.TransactionResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return &pb.TransactionResponse{Status: failure(err)}, nil
	}
	tran, err := s.ledger.Withdraw(ctx, req.AccountNumber, amount, req.Description)
	if err != nil {
		return &pb.TransactionResponse{Status: failure(err)}, nil
	}
	return &pb.TransactionResponse{Status: ok(), Transaction: toTransaction(tran)}, nil
}

func (s *GrpcServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return &pb.TransferResponse{Status: failure(err)}, nil
	}
	result, err := s.ledger.Transfer(ctx, req.FromAccount, req.ToAccount, amount, req.Description)
	if err != nil {
		return &pb.TransferResponse{Status: failure(err)}, nil
	}
	return &pb.TransferResponse{
		Status: ok(),
		Debit:  toTransaction(result.Debit),
		Credit: toTransaction(result.Credit),
	}, nil
}

func (s *GrpcServer) DeactivateAccount(ctx context.Context, req *pb.DeactivateAccountRequest) (*pb.AccountResponse, error) {
	account, err := s.ledger.DeactivateAccount(ctx, req.AccountNumber)
	if err != nil {
		return &pb.AccountResponse{Status: failure(err)}, nil
	}
	return &pb.AccountResponse{Status: ok(), Account: toAccount(account)}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.ledger.GetBalance(ctx, req.AccountNumber)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetBalanceResponse{
		Balance: balance.String(),
	}, nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	account, err := s.ledger.GetAccount(ctx, req.AccountNumber)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAccountResponse{Account: toAccount(account)}, nil
}

func (s *GrpcServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	history := s.ledger.GetHistory(ctx, req.AccountNumber)
	out := make([]*pb.Transaction, len(history))
	for i, tran := range history {
		out[i] = toTransaction(tran)
	}
	return &pb.GetHistoryResponse{Transactions: out}, nil
}

func (s *GrpcServer) VerifyLedger(ctx context.Context, _ *pb.VerifyLedgerRequest) (*pb.VerifyLedgerResponse, error) {
	report, err := s.ledger.VerifyLedger(ctx)
	resp := &pb.VerifyLedgerResponse{
		Status:       ok(),
		Accounts:     int64(report.Accounts),
		Transactions: int64(report.Transactions),
		Transfers:    int64(report.Transfers),
		LastId:       report.LastID,
		CheckedAt:    timestamppb.New(report.CheckedAt),
	}
	if err != nil {
		resp.Status = failure(err)
	}
	return resp, nil
}

func ok() *pb.Status {
	return &pb.Status{Success: true}
}

func failure(err error) *pb.Status {
	return &pb.Status{
		Success:   false,
		ErrorKind: domain.KindOf(err).String(),
		Message:   err.Error(),
	}
}

// toStatus 查詢錯誤轉 gRPC status
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toAccount(a domain.Account) *pb.Account {
	out := &pb.Account{
		Number:     a.Number,
		HolderName: a.HolderName,
		Balance:    a.Balance.String(),
		Active:     a.Active,
		CreatedAt:  timestamppb.New(a.CreatedAt),
	}
	if at, ok := a.LastActivityAt.Get(); ok {
		out.LastActivityAt = timestamppb.New(at)
	}
	return out
}

// kinds 領域交易類型對應 proto enum
var kinds = map[domain.TransactionKind]pb.TransactionKind{
	domain.KindDeposit:     pb.TransactionKind_TRANSACTION_KIND_DEPOSIT,
	domain.KindWithdrawal:  pb.TransactionKind_TRANSACTION_KIND_WITHDRAWAL,
	domain.KindTransferOut: pb.TransactionKind_TRANSACTION_KIND_TRANSFER_OUT,
	domain.KindTransferIn:  pb.TransactionKind_TRANSACTION_KIND_TRANSFER_IN,
}

func toTransaction(t domain.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:           t.ID,
		EventId:      t.EventID.String(),
		Account:      t.Account,
		Kind:         kinds[t.Kind],
		Amount:       t.Amount.String(),
		BalanceAfter: t.BalanceAfter.String(),
		Timestamp:    timestamppb.New(t.Timestamp),
		Description:  t.Description,
		Counterpart:  t.Counterpart.OrElse(""),
	}
}
