package journal

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 自己定義常用的權限常量
const (
	// rw-r--r-- (擁有者讀寫，其他人唯讀) - 適用於大多數檔案
	FileModeReadOnly fs.FileMode = 0644

	// rw------- (只有擁有者可讀寫) - 適用於機密檔
	FileModePrivate fs.FileMode = 0600
)

// syncer 可強制刷入硬碟的 Writer (例如 *os.File)
type syncer interface {
	Sync() error
}

// Writer 以 JSON Lines 格式寫入紀錄，一行一筆
//
// 執行緒安全；底層若支援 Sync，每次 Write 後都會刷入。
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	enc *json.Encoder
}

// NewWriter 包裝任意 io.Writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, enc: json.NewEncoder(w)}
}

// OpenFile 以附加模式開啟或建立檔案
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FileModeReadOnly)
}

// Open 開啟或建立一個 journal 檔案
func Open(path string) (*Writer, error) {
	file, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewWriter(file), nil
}

// Write 寫入多筆資料，同一批次連續寫入不會被其他呼叫插隊
func (w *Writer) Write(records ...any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range records {
		if err := w.enc.Encode(v); err != nil {
			return err
		}
	}
	if s, ok := w.w.(syncer); ok {
		return s.Sync()
	}
	return nil
}

// Close 關閉底層 Writer (若支援)
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadAll 逐筆讀取所有資料
// callback 接收一筆 JSON 原始資料
// 這樣可以避免一次將所有資料載入記憶體
func ReadAll(r io.Reader, callback func(raw json.RawMessage) error) error {
	decoder := json.NewDecoder(r)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
}

// ReadFile 開啟檔案並逐筆讀取
func ReadFile(path string, callback func(raw json.RawMessage) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ReadAll(file, callback)
}
