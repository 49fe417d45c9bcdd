package utils

import (
	"testing"
)

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Skipf("current user unavailable: %v", err)
	}
	if username == "" {
		t.Error("GetUsername returned empty string")
	}
}

func TestGetHostname(t *testing.T) {
	hostname, err := GetHostname()
	if err != nil {
		t.Skipf("hostname unavailable: %v", err)
	}
	if hostname == "" {
		t.Error("GetHostname returned empty string")
	}
}
