package main

import (
	"testing"
	"time"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--canteen", "42", "--refresh", "5m", "-v"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if got, _ := cmd.Flags().GetInt("canteen"); got != 42 {
		t.Fatalf("canteen = %d, want 42", got)
	}
	if got, _ := cmd.Flags().GetDuration("refresh"); got != 5*time.Minute {
		t.Fatalf("refresh = %s, want 5m", got)
	}
	if got, _ := cmd.Flags().GetBool("verbose"); !got {
		t.Fatalf("verbose = false, want true")
	}
}

func TestRootCmdRejectsNegativeCanteen(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--canteen", "-3"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() error = nil, want invalid canteen error")
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() error = nil, want error for positional args")
	}
}
