package main

import (
	"bytes"
	"strings"
	"testing"

	"healthscan/catalog"
)

func TestEstimateCmd(t *testing.T) {
	cmd := newEstimateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--height", "175", "--weight", "70", "--target-weight", "65", "--target-date", "2099-01-01"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{"BMI:              22.9 (Normal weight)", "Maintenance:      2308 kcal/day", "Goal Date"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestEstimateCmd_InvalidMetrics(t *testing.T) {
	cmd := newEstimateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--height", "0"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for zero height")
	}
}

func TestAskCmd(t *testing.T) {
	cmd := newAskCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Is", "SLS", "safe?"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := catalog.MustLoad().ChatResponses[catalog.ResponseSLS]
	if strings.TrimSpace(out.String()) != want {
		t.Errorf("expected SLS response, got %q", out.String())
	}
}
