package adapter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/logger"
)

type logEntry map[string]any

// captureLog is a concurrency-safe sink for JSON log lines.
type captureLog struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *captureLog) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *captureLog) entries(t *testing.T) []logEntry {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []logEntry
	scanner := bufio.NewScanner(bytes.NewReader(c.buf.Bytes()))
	for scanner.Scan() {
		var entry logEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func (c *captureLog) find(t *testing.T, message string) (logEntry, bool) {
	t.Helper()
	for _, entry := range c.entries(t) {
		if entry["message"] == message {
			return entry, true
		}
	}
	return nil, false
}

func newTestRegistry(t *testing.T, opts ...RegistryOption) (*Registry, *captureLog) {
	t.Helper()
	sink := &captureLog{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: sink})
	require.NoError(t, err)
	return NewRegistry(append([]RegistryOption{WithLogger(log)}, opts...)...), sink
}

// recorder renders a marker unique to tag and remembers the last props.
type recorder struct {
	tag string

	mu    sync.Mutex
	last  Props
	calls int
}

func newRecorder(tag string) *recorder {
	return &recorder{tag: tag}
}

func (r *recorder) Render(_ RenderContext, props Props) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = props
	r.calls++
	return "<" + r.tag + " variant=" + props.String("variant") + ">" + props.Children
}

func (r *recorder) lastProps() Props {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *recorder) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
