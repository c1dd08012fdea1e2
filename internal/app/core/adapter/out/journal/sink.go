package journal

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
	jsonl "github.com/JoeShih716/audit-ledger/pkg/journal"
)

// header 每次執行的第一筆紀錄
//
// 帳本只存在記憶體，重啟後交易 ID 與餘額從頭開始；
// 同一個檔案附加多次執行時以 header 分段，各段獨立重播。
type header struct {
	Run       uuid.UUID `json:"run"`
	StartedAt time.Time `json:"started_at"`
}

// Run 一次執行輸出的交易
type Run struct {
	ID           uuid.UUID            `json:"run"`
	StartedAt    time.Time            `json:"started_at"`
	Transactions []domain.Transaction `json:"-"`
}

// Sink 將已提交的交易以 JSON Lines 輸出
//
// 這是稽核串流，不是持久化儲存；重啟後不會讀回。
type Sink struct {
	mu      sync.Mutex
	w       *jsonl.Writer
	head    header
	started bool
}

// NewSink 建立輸出到 w 的 Sink，第一次 Record 時先寫入本次執行的 header
func NewSink(w io.Writer) *Sink {
	return &Sink{
		w:    jsonl.NewWriter(w),
		head: header{Run: uuid.New(), StartedAt: time.Now().UTC()},
	}
}

// RunID 本次執行的識別碼
func (s *Sink) RunID() uuid.UUID {
	return s.head.Run
}

// Record 寫入一批交易，同一批次 (例如轉帳兩腿) 連續輸出
func (s *Sink) Record(_ context.Context, trans ...domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]any, 0, len(trans)+1)
	if !s.started {
		records = append(records, s.head)
	}
	for i := range trans {
		records = append(records, trans[i])
	}
	if err := s.w.Write(records...); err != nil {
		return err
	}
	s.started = true
	return nil
}

// Close 關閉底層輸出
func (s *Sink) Close() error {
	return s.w.Close()
}

// Decode 讀回 Sink 輸出的交易，依 header 分成多次執行
//
// header 之前的交易歸在 ID 為零值的 Run。
func Decode(r io.Reader) ([]Run, error) {
	var d decoder
	if err := jsonl.ReadAll(r, d.add); err != nil {
		return nil, err
	}
	return d.runs, nil
}

// DecodeFile 讀取 journal 檔案
func DecodeFile(path string) ([]Run, error) {
	var d decoder
	if err := jsonl.ReadFile(path, d.add); err != nil {
		return nil, err
	}
	return d.runs, nil
}

type decoder struct {
	runs []Run
}

func (d *decoder) add(raw json.RawMessage) error {
	var probe struct {
		Run *uuid.UUID `json:"run"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return err
	}
	if probe.Run != nil {
		var h header
		if err := json.Unmarshal(raw, &h); err != nil {
			return err
		}
		d.runs = append(d.runs, Run{ID: h.Run, StartedAt: h.StartedAt})
		return nil
	}

	var tran domain.Transaction
	if err := json.Unmarshal(raw, &tran); err != nil {
		return err
	}
	if len(d.runs) == 0 {
		d.runs = append(d.runs, Run{})
	}
	last := &d.runs[len(d.runs)-1]
	last.Transactions = append(last.Transactions, tran)
	return nil
}

var _ usecase.AuditSink = (*Sink)(nil)
