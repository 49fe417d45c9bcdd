package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/shush/internal/configs"
	"github.com/PolarWolf314/shush/internal/utils"
)

// Entry represents a single audit log entry. It never holds secret values.
type Entry struct {
	Timestamp    string `json:"ts"`   // RFC3339 with microseconds.
	InvocationID string `json:"id"`   // Shared by every entry of one shush run.
	User         string `json:"user"` // OS user running shush.
	Host         string `json:"host,omitempty"`
	Operation    string `json:"op"` // encrypt, decrypt or exec.

	// Optional fields depending on operation.
	Key       string   `json:"key,omitempty"`       // Key reference (encrypt) or reported key id (decrypt).
	Variables []string `json:"variables,omitempty"` // Variables substituted by exec.
	Skipped   []string `json:"skipped,omitempty"`   // Empty candidates left alone by exec.
	Command   string   `json:"command,omitempty"`   // Command started by exec.
	ExitCode  *int     `json:"exit_code,omitempty"` // Exit code of that command.
}

// invocationID correlates the entries written by this process.
var invocationID = uuid.NewString()

// Log appends an entry to the configured audit log.
// If logging fails, it is silently dropped: operations should not fail
// just because audit logging failed.
func Log(entry Entry) {
	logPath := LogPath()
	if logPath == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.InvocationID == "" {
		entry.InvocationID = invocationID
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser is a convenience function that populates user fields.
func LogWithUser(op string) Entry {
	entry := Entry{
		Operation: op,
		User:      configs.UserShushSettings.Username,
	}

	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}

	return entry
}

// LogPath returns the path to the audit log file.
// Returns empty string if audit logging is disabled.
func LogPath() string {
	if configs.GlobalConfig == nil {
		return ""
	}
	return configs.GlobalConfig.AuditLog
}
