package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	N    int    `json:"n"`
	Name string `json:"name"`
}

func TestWriteAndReadAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(entry{1, "a"}, entry{2, "b"}))
	require.NoError(t, w.Write(entry{3, "c"}))

	var got []entry
	err := ReadAll(&buf, func(raw json.RawMessage) error {
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []entry{{1, "a"}, {2, "b"}, {3, "c"}}, got)
}

func TestReadAllStopsOnCallbackError(t *testing.T) {
	buf := bytes.NewBufferString("{\"n\":1}\n{\"n\":2}\n")
	stop := errors.New("stop")
	calls := 0
	err := ReadAll(buf, func(json.RawMessage) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReadAllRejectsGarbage(t *testing.T) {
	err := ReadAll(bytes.NewBufferString("{\"n\":1}\nnot json\n"), func(json.RawMessage) error { return nil })
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	w, err := Open(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, w.Write(entry{N: n}, entry{N: n}))
		}(i)
	}
	wg.Wait()
	require.NoError(t, w.Close())

	// 重新開啟會接續寫在後面
	w, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(entry{N: 99}))
	require.NoError(t, w.Close())

	var got []int
	require.NoError(t, ReadFile(path, func(raw json.RawMessage) error {
		var e entry
		require.NoError(t, json.Unmarshal(raw, &e))
		got = append(got, e.N)
		return nil
	}))
	require.Len(t, got, 41)
	for i := 0; i < 40; i += 2 {
		assert.Equal(t, got[i], got[i+1], "batch split at %d", i)
	}
	assert.Equal(t, 99, got[40])
}
