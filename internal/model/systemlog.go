package model

import "time"

// LogLevel is the severity of a system log entry.
type LogLevel string

const (
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

// LogLevels lists the known levels from least to most severe.
var LogLevels = []LogLevel{LevelInfo, LevelWarning, LevelError}

// Valid reports whether l is a known level.
func (l LogLevel) Valid() bool {
	return l == LevelInfo || l == LevelWarning || l == LevelError
}

// SystemLogEntry is a read-only line from the system log.
type SystemLogEntry struct {
	ID        string    `json:"id"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
