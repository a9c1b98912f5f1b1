package gate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arx-sec/arx/internal/analyze"
)

func TestRendererPackage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.Package(&buf, "firefox", analyze.Verdict{
		MaliciousIntent:    false,
		Confidence:         0.95,
		SuspiciousPatterns: []string{"none of note"},
		Recommendations:    []string{"verify upstream source"},
		Analysis:           "standard upstream build",
		NameFindings:       "Package name appears normal",
	})

	output := buf.String()
	for _, want := range []string{
		"SECURITY ANALYSIS: firefox",
		"Confidence: 95%",
		"Malicious Intent: NO",
		"none of note",
		"verify upstream source",
		"standard upstream build",
		"Package name appears normal",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRendererPackageMalicious(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.Package(&buf, "ghost123", analyze.Verdict{MaliciousIntent: true, Confidence: 0.8})

	if !strings.Contains(buf.String(), "Malicious Intent: YES") {
		t.Errorf("missing malicious flag:\n%s", buf.String())
	}
}

func TestRendererOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.Package(&buf, "vlc", analyze.Verdict{Confidence: 1.0})

	output := buf.String()
	if strings.Contains(output, "Suspicious Patterns:") {
		t.Errorf("empty patterns section rendered:\n%s", output)
	}
	if strings.Contains(output, "Recommendations:") {
		t.Errorf("empty recommendations section rendered:\n%s", output)
	}
}

func TestRendererNotFound(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.NotFound(&buf, []string{"ghost123", "ghost456"})

	output := buf.String()
	if !strings.Contains(output, "PACKAGES NOT FOUND") {
		t.Errorf("missing header:\n%s", output)
	}
	if !strings.Contains(output, "ghost123") || !strings.Contains(output, "ghost456") {
		t.Errorf("missing package names:\n%s", output)
	}
}

func TestRendererOverall(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.Overall(&buf, true, 0.75)

	output := buf.String()
	if !strings.Contains(output, "OVERALL SECURITY ASSESSMENT") {
		t.Errorf("missing header:\n%s", output)
	}
	if !strings.Contains(output, "Overall Confidence: 75%") {
		t.Errorf("missing confidence:\n%s", output)
	}
	if !strings.Contains(output, "MALICIOUS INTENT DETECTED") {
		t.Errorf("missing warning:\n%s", output)
	}
}

func TestRendererOverallClean(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	r.Overall(&buf, false, 0.9)

	if strings.Contains(buf.String(), "MALICIOUS INTENT DETECTED") {
		t.Errorf("warning rendered for clean aggregate:\n%s", buf.String())
	}
}
