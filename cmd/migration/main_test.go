package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("expected version 1, got %d err=%v", got, err)
	}
	if _, err := parseVersion("abc"); err == nil {
		t.Fatalf("expected error for non numeric version")
	}
	if _, err := parseVersion("-2"); err == nil {
		t.Fatalf("expected error for version below -1")
	}
}
