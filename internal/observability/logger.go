// Package observability emits structured JSON-line events for the
// planning pipeline.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeDecompose EventType = "decompose"
	EventTypeEnrich    EventType = "enrich"
	EventTypeWeather   EventType = "weather"
	EventTypeAssemble  EventType = "assemble"
	EventTypeStore     EventType = "store"
	EventTypeFallback  EventType = "fallback"
	EventTypeLLM       EventType = "llm"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	PlanID    string    `json:"plan_id,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger handles structured logging. LLM transcripts are additionally
// spilled to a rotating jsonl file for offline inspection.
type Logger struct {
	out        io.Writer
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	return &Logger{
		out:        os.Stdout,
		llmLogPath: filepath.Join("logs", "llm.jsonl"),
		maxSize:    10 * 1024 * 1024, // 10MB
	}
}

// NewLoggerTo directs events at w; used by tests and the CLI's quiet
// mode.
func NewLoggerTo(w io.Writer) *Logger {
	return &Logger{out: w, llmLogPath: filepath.Join("logs", "llm.jsonl"), maxSize: 10 * 1024 * 1024}
}

// Log emits a structured JSON event.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Fprintf(l.out, "{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Fprintln(l.out, string(data))

	if evt.Type == EventTypeLLM {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogStage(t EventType, planID string, data any) {
	l.Log(Event{Type: t, PlanID: planID, Data: data})
}

func (l *Logger) LogFallback(stage, reason string) {
	l.Log(Event{
		Type: EventTypeFallback,
		Data: map[string]string{"stage": stage, "reason": reason},
	})
}

func (l *Logger) LogLLM(prompt, response string) {
	l.Log(Event{
		Type: EventTypeLLM,
		Data: map[string]string{"prompt": prompt, "response": response},
	})
}
