package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// Handler REST 入口 (Driving Adapter)
type Handler struct {
	ledger *usecase.LedgerService
}

type CreateAccountRequest struct {
	AccountNumber  string `json:"account_number" validate:"required,max=64"`
	HolderName     string `json:"holder_name" validate:"required,max=256"`
	InitialBalance string `json:"initial_balance" validate:"omitempty,numeric"`
}

// MovementRequest 存款 / 提款
type MovementRequest struct {
	Amount      string `json:"amount" validate:"required,numeric"`
	Description string `json:"description" validate:"max=512"`
}

type TransferRequest struct {
	FromAccount string `json:"from_account" validate:"required,max=64"`
	ToAccount   string `json:"to_account" validate:"required,max=64"`
	Amount      string `json:"amount" validate:"required,numeric"`
	Description string `json:"description" validate:"max=512"`
}

type BalanceResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
}

type ListAccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
}

type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

func NewHandler(ledger *usecase.LedgerService) *Handler {
	return &Handler{ledger: ledger}
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	initial, err := domain.ParseAmount(req.InitialBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}
	account, err := h.ledger.CreateAccount(c.Request.Context(), req.AccountNumber, initial, req.HolderName)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *Handler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, ListAccountsResponse{Accounts: h.ledger.ListAccounts(c.Request.Context())})
}

func (h *Handler) GetAccount(c *gin.Context) {
	account, err := h.ledger.GetAccount(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) GetBalance(c *gin.Context) {
	number := c.Param("number")
	balance, err := h.ledger.GetBalance(c.Request.Context(), number)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{AccountNumber: number, Balance: balance.String()})
}

// ListTransactions 最新在前；帳戶不存在時回傳空清單
func (h *Handler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, ListTransactionsResponse{
		Transactions: h.ledger.GetHistory(c.Request.Context(), c.Param("number")),
	})
}

func (h *Handler) Deposit(c *gin.Context) {
	var req MovementRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tran, err := h.ledger.Deposit(c.Request.Context(), c.Param("number"), amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tran)
}

func (h *Handler) Withdraw(c *gin.Context) {
	var req MovementRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tran, err := h.ledger.Withdraw(c.Request.Context(), c.Param("number"), amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tran)
}

func (h *Handler) Deactivate(c *gin.Context) {
	account, err := h.ledger.DeactivateAccount(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) Transfer(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	result, err := h.ledger.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) Audit(c *gin.Context) {
	report, err := h.ledger.VerifyLedger(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
