// Package audit provides an opt-in audit trail of shush operations.
//
// When audit_log is set in the config file, every encrypt, decrypt and exec
// appends one JSON object per line to that file. Entries record who ran
// what against which key, and for exec which variables were substituted
// and how the command exited. They never contain cipher text or plaintext.
//
// # Usage
//
// Create an entry with user info pre-populated:
//
//	entry := audit.LogWithUser("exec")
//	entry.Variables = substituted
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// All entries written by one process carry the same invocation id, so the
// lines of a single run can be grouped.
package audit
