package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		logger  Logger
		log     func(l Logger)
		visible bool
	}{
		{"info hidden by default", Logger{}, func(l Logger) { l.Infof("hello") }, false},
		{"info shown when verbose", Logger{Verbose: true}, func(l Logger) { l.Infof("hello") }, true},
		{"debug hidden when verbose", Logger{Verbose: true}, func(l Logger) { l.Debugf("hello") }, false},
		{"debug shown when debug", Logger{Debug: true}, func(l Logger) { l.Debugf("hello") }, true},
		{"warn hidden by default", Logger{}, func(l Logger) { l.Warnf("hello") }, false},
		{"warn always shown", Logger{}, func(l Logger) { l.WarnfAlways("hello") }, true},
		{"error shown when debug", Logger{Debug: true}, func(l Logger) { l.Errorf("hello") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logger.Writer = &buf
			tt.log(tt.logger)

			if got := strings.Contains(buf.String(), "hello"); got != tt.visible {
				t.Errorf("Expected visible=%t, got output %q", tt.visible, buf.String())
			}
		})
	}
}

func TestErrorfAndReturnWraps(t *testing.T) {
	sentinel := errors.New("sentinel")
	var buf bytes.Buffer
	l := Logger{Debug: true, Writer: &buf}

	err := l.ErrorfAndReturn("could not decrypt %s: %w", "KMS_ENCRYPTED_X", sentinel)
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected error to wrap sentinel, got %v", err)
	}
	if !strings.Contains(buf.String(), "KMS_ENCRYPTED_X") {
		t.Errorf("Expected log output to name the variable, got %q", buf.String())
	}
}
