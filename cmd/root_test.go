package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PolarWolf314/shush/internal/configs"
	"github.com/PolarWolf314/shush/internal/kms"
	logger "github.com/PolarWolf314/shush/internal/logging"
)

func TestDefaultGatewayLogsRegion(t *testing.T) {
	defaultGateway := newGateway
	setupTestEnvironment(t)
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_PROFILE", "")

	var stderr bytes.Buffer
	Logger = logger.Logger{Debug: true, Writer: &stderr}
	configs.GlobalConfig = &configs.Config{Region: "eu-west-1"}

	gateway, err := defaultGateway(context.Background())
	if err != nil {
		t.Fatalf("Failed to create gateway: %v", err)
	}
	if _, ok := gateway.(*kms.Client); !ok {
		t.Errorf("Expected a *kms.Client, got %T", gateway)
	}
	if !strings.Contains(stderr.String(), `region "eu-west-1"`) {
		t.Errorf("Expected debug output to name the region, got %q", stderr.String())
	}
}

func TestLogsGoToCommandStderr(t *testing.T) {
	setupTestEnvironment(t)

	stdout, stderr, err := runCLI("", "--verbose", "encrypt", "--key", "alias/test", "hello")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if !strings.Contains(stderr, "Starting encrypt command") {
		t.Errorf("Expected verbose logs on stderr, got %q", stderr)
	}
	if strings.Contains(stdout, "Starting") {
		t.Errorf("Expected only the token on stdout, got %q", stdout)
	}
}
