package services

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	driver, _ := setupDriver(t, scenarioConfig())
	final, _ := driver.RunToCompletion(100)

	var out bytes.Buffer
	if err := WriteReport(&out, final); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report := out.String()
	for _, want := range []string{final.RunID, "RR", "PRIORIDAD", "ESPERA", "6.00", "Memoria (FIFO)"} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, report)
		}
	}
}

func TestReportObserver_WritesOnCompletion(t *testing.T) {
	var out bytes.Buffer
	config := scenarioConfig()
	driver := NewDriver(NewReportObserver(&out))
	_ = driver.Configure(config)
	_ = driver.Start()

	_, _ = driver.Tick()
	if out.Len() != 0 {
		t.Errorf("Expected no report before completion, got %q", out.String())
	}
	_, _ = driver.RunToCompletion(100)
	if !strings.Contains(out.String(), "THROUGHPUT") {
		t.Errorf("Expected report with footer, got:\n%s", out.String())
	}
}
