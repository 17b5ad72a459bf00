package main

import (
	"context"
	"strings"
	"testing"
)

func TestRun_LeibnizTwoTerms(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(context.Background(),
		[]string{"-method", "leibniz", "-terms", "2", "-precision", "10"},
		&stdout, &stderr)

	if code != exitOK {
		t.Fatalf("exit code = %d; want %d (stderr: %s)", code, exitOK, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "2.666666667" {
		t.Errorf("stdout = %q; want 2.666666667", got)
	}
}

func TestRun_ChudnovskyDigits(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(context.Background(),
		[]string{"-method", "chudnovsky", "-digits", "30"},
		&stdout, &stderr)

	if code != exitOK {
		t.Fatalf("exit code = %d; want %d (stderr: %s)", code, exitOK, stderr.String())
	}
	if got := stdout.String(); !strings.HasPrefix(got, "3.14159265358979323846") {
		t.Errorf("stdout = %q; want a π prefix", got)
	}
}

func TestRun_InvalidTerms(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(context.Background(),
		[]string{"-terms", "0"},
		&stdout, &stderr)

	if code != exitBadRequest {
		t.Fatalf("exit code = %d; want %d", code, exitBadRequest)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q; want empty on failure", stdout.String())
	}
	if !strings.Contains(stderr.String(), "terms") {
		t.Errorf("stderr = %q; want a terms complaint", stderr.String())
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(context.Background(),
		[]string{"-method", "montecarlo"},
		&stdout, &stderr)

	if code != exitBadRequest {
		t.Fatalf("exit code = %d; want %d", code, exitBadRequest)
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run(context.Background(),
		[]string{"-terms", "not-a-number"},
		&stdout, &stderr)

	if code != exitBadRequest {
		t.Fatalf("exit code = %d; want %d", code, exitBadRequest)
	}
}
