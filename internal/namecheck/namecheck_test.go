package namecheck

import (
	"strings"
	"testing"
)

func TestCheckNormalName(t *testing.T) {
	if got := Check("firefox"); got != NormalFinding {
		t.Errorf("Check(firefox) = %q, want %q", got, NormalFinding)
	}
}

func TestCheckAllDigits(t *testing.T) {
	got := Check("123456")
	if !strings.Contains(got, "all digits") {
		t.Errorf("expected all-digits finding, got %q", got)
	}
	if !strings.Contains(got, "4+ consecutive digits") {
		t.Errorf("expected consecutive-digits finding, got %q", got)
	}
}

func TestCheckVeryShortName(t *testing.T) {
	got := Check("ab")
	if !strings.Contains(got, "Very short") {
		t.Errorf("expected short-name finding, got %q", got)
	}
}

func TestCheckLongLowercaseRun(t *testing.T) {
	got := Check("qqqqqqqqqqqq")
	if !strings.Contains(got, "10+ consecutive lowercase") {
		t.Errorf("expected lowercase-run finding, got %q", got)
	}
}

func TestCheckTyposquatting(t *testing.T) {
	got := Check("firefoxx")
	if !strings.Contains(got, "typosquatting of 'firefox'") {
		t.Errorf("expected typosquatting finding, got %q", got)
	}
}

func TestCheckTyposquattingReverseContainment(t *testing.T) {
	// A name contained inside a well-known name also flags.
	got := Check("firefo")
	if !strings.Contains(got, "typosquatting of 'firefox'") {
		t.Errorf("expected typosquatting finding, got %q", got)
	}
}

func TestCheckExactMatchNotTyposquatting(t *testing.T) {
	// yay is in the well-known list; the exact name must not self-flag.
	got := Check("yay")
	if strings.Contains(got, "typosquatting of 'yay'") {
		t.Errorf("exact match flagged as typosquatting: %q", got)
	}
}

func TestCheckCaseInsensitive(t *testing.T) {
	got := Check("FireFoxX")
	if !strings.Contains(got, "typosquatting of 'firefox'") {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
}

func TestCheckJoinsMultipleFindings(t *testing.T) {
	got := Check("1234abcdefghijkl")
	if !strings.Contains(got, "; ") {
		t.Errorf("expected joined findings, got %q", got)
	}
}

func TestCheckIdempotent(t *testing.T) {
	names := []string{"firefox", "123456", "firefoxx", "ab", "totally-unknown-pkg"}
	for _, name := range names {
		first := Check(name)
		second := Check(name)
		if first != second {
			t.Errorf("Check(%q) not deterministic: %q vs %q", name, first, second)
		}
	}
}
