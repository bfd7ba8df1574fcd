// Package security screens inbound chat messages for injection
// payloads. Answers can echo user text into web pages and into
// generation prompts, so hostile input is answered with the default
// message instead of being processed.
package security

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// ScreenResult describes a detected injection pattern.
type ScreenResult struct {
	IsSQLi      bool
	IsXSS       bool
	Fingerprint string // libinjection fingerprint for SQLi detections
}

// ScreenMessage checks a chat message for SQL injection and XSS
// patterns. Returns nil when the message is clean.
func ScreenMessage(message string) *ScreenResult {
	if isSQLi, fingerprint := libinjection.IsSQLi(message); isSQLi {
		return &ScreenResult{IsSQLi: true, Fingerprint: string(fingerprint)}
	}
	if libinjection.IsXSS(message) {
		return &ScreenResult{IsXSS: true}
	}
	return nil
}
