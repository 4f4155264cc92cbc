package llm

import (
	"fmt"
	"io"
	"time"
)

// LLMCallEvent describes one finished Ollama call: which companion task it
// served, how long it took, and how it ended.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer is notified after every Ollama call. The client never blocks on
// an observer, so implementations should return quickly.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver prints one line per call to w. Wired to stderr when
// SOLACE_LLM_LOG_CALLS is set, so chat output on stdout stays clean.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver drops every event. The default when call logging is off.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
