package journal

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// ErrSinkStopped AsyncSink 已停止，不再接收交易
var ErrSinkStopped = errors.New("audit sink stopped")

// batch 一次 Record 的交易，透過 sync.Pool 重用
type batch struct {
	trans []domain.Transaction
}

// AsyncSink 把 I/O 移出帳本臨界區
//
// Record 只把交易放上輸送帶 (buffered channel)；單一 goroutine 依序交給 next，
// 所以輸出順序與提交順序相同。輸送帶滿了 Record 會等待。
//
// Record(臨界區內) -> Channel -> Run Loop -> next.Record
type AsyncSink struct {
	next   usecase.AuditSink
	logger *slog.Logger
	queue  chan *batch
	pool   sync.Pool
	done   chan struct{}

	// mu 保護 stopped；Record 持有讀鎖送進輸送帶，run 取得寫鎖後才做最後的 drain
	mu      sync.RWMutex
	stopped bool
}

// NewAsyncSink 建立 AsyncSink，呼叫 Start 之後才會開始輸出
//
// 參數:
//
//	next: 實際輸出的 Sink
//	buffer: 輸送帶長度
//	logger: next 失敗時記錄
func NewAsyncSink(next usecase.AuditSink, buffer int, logger *slog.Logger) *AsyncSink {
	return &AsyncSink{
		next:   next,
		logger: logger,
		queue:  make(chan *batch, buffer),
		pool: sync.Pool{
			New: func() any {
				return &batch{trans: make([]domain.Transaction, 0, 2)}
			},
		},
		done: make(chan struct{}),
	}
}

// Record 放入輸送帶；停止後回傳 ErrSinkStopped
//
// 輸送帶滿了會等待，直到輸出迴圈取走或開始停止。
func (a *AsyncSink) Record(ctx context.Context, trans ...domain.Transaction) error {
	b := a.pool.Get().(*batch)
	b.trans = append(b.trans[:0], trans...)

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.stopped {
		a.pool.Put(b)
		return ErrSinkStopped
	}
	// 持有讀鎖期間 run 還沒開始最後的 drain，放進去的交易一定會被輸出
	a.queue <- b
	return nil
}

// Start 啟動輸出迴圈 (非同步)；ctx 結束後把剩下的交易輸出完才停止
func (a *AsyncSink) Start(ctx context.Context) {
	go a.run(ctx)
}

// Wait 等待輸出迴圈結束
func (a *AsyncSink) Wait() {
	<-a.done
}

func (a *AsyncSink) run(ctx context.Context) {
	defer close(a.done)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，先擋住新的 Record，再把剩下的交易處理完
			a.stop()
			a.drain()
			return
		case b := <-a.queue:
			a.flush(b)
		}
	}
}

// stop 標記停止
//
// 等待中的 Record 持有讀鎖卡在滿的輸送帶上，所以一邊搶寫鎖一邊消化輸送帶。
func (a *AsyncSink) stop() {
	locked := make(chan struct{})
	go func() {
		a.mu.Lock()
		a.stopped = true
		a.mu.Unlock()
		close(locked)
	}()
	for {
		select {
		case <-locked:
			return
		case b := <-a.queue:
			a.flush(b)
		}
	}
}

func (a *AsyncSink) drain() {
	for {
		select {
		case b := <-a.queue:
			a.flush(b)
		default:
			return
		}
	}
}

func (a *AsyncSink) flush(b *batch) {
	// 背景輸出沒有請求的 ctx
	if err := a.next.Record(context.Background(), b.trans...); err != nil {
		a.logger.Error("audit sink failed", "error", err, "transactions", len(b.trans))
	}
	clear(b.trans)
	a.pool.Put(b)
}

var _ usecase.AuditSink = (*AsyncSink)(nil)
