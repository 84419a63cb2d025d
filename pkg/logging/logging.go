// Package logging builds the logrus logger shared by the session, the engine
// and the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultHistorySize = 10

type Options struct {
	Verbose     bool
	Out         io.Writer
	HistorySize int
}

// New returns a logger writing text lines to opts.Out (stderr by default)
// together with the History hook attached to it.
func New(opts Options) (*logrus.Logger, *History) {
	logger := logrus.New()
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	history := NewHistory(opts.HistorySize)
	logger.AddHook(history)
	return logger, history
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// History keeps the newest messages, newest first, each prefixed with the
// wall clock time "15:04:05.000".
type History struct {
	mu       sync.Mutex
	size     int
	messages []string
	now      func() time.Time
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size, now: time.Now}
}

func (h *History) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel, logrus.InfoLevel}
}

func (h *History) Fire(entry *logrus.Entry) error {
	h.Add(entry.Message)
	return nil
}

func (h *History) Add(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := fmt.Sprintf("%s %s", h.now().Format("15:04:05.000"), message)
	h.messages = append([]string{line}, h.messages...)
	if len(h.messages) > h.size {
		h.messages = h.messages[:h.size]
	}
}

func (h *History) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
