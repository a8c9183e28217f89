package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook đánh dấu các entry không cần ghi (log nhiễu như health check).
// Entry bị filter được gắn field "_filtered" để AsyncHook bỏ qua,
// vì hook của logrus không thể hủy một entry trực tiếp.
type FilterHook struct {
	skipContains []string
}

// NewFilterHook tạo filter hook từ cấu hình logging
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{
		skipContains: []string{
			"/health",
		},
	}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry cần bỏ qua
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if path, ok := entry.Data["path"].(string); ok {
		for _, pattern := range h.skipContains {
			if strings.Contains(path, pattern) {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}
	return nil
}

// AsyncHook ghi log bất đồng bộ: buffer entries vào channel và ghi vào
// các writers trong một goroutine riêng. Channel đầy thì drop entry
// thay vì block request handling.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook với nhiều writers.
// bufferSize <= 0 dùng mặc định 1000 entries.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi trực tiếp vào writers
		data, err := h.formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy: drop entry, không block.
		// Không log ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// processEntries xử lý entries trong goroutine riêng.
// Có recover để goroutine logger không làm crash server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			data, err := h.formatEntry(entry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// formatEntry format entry thành bytes bằng formatter của logger
func (h *AsyncHook) formatEntry(entry *logrus.Entry) ([]byte, error) {
	cleaned := entry
	if _, ok := entry.Data["_filtered"]; ok {
		cleaned = entry.Dup()
		delete(cleaned.Data, "_filtered")
	}

	if cleaned.Logger != nil && cleaned.Logger.Formatter != nil {
		return cleaned.Logger.Formatter.Format(cleaned)
	}

	line, err := cleaned.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi các entry còn lại được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
