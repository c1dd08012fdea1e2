package usecase

import "sync/atomic"

// Sequencer 分配交易序號 (1, 2, 3...)，不重複也不回收
type Sequencer struct {
	last atomic.Uint64
}

// NewSequencer 從 start 之後開始分配
func NewSequencer(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next 取得下一個序號
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Last 最後一次分配的序號，尚未分配時為起始值
func (s *Sequencer) Last() uint64 {
	return s.last.Load()
}
