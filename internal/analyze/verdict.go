// Package analyze classifies PKGBUILD contents for malicious intent using
// a remote LLM. The classifier never fails past its boundary: every path,
// including missing credentials, transport errors, and unparsable replies,
// produces a Verdict.
package analyze

// NeutralConfidence is the midpoint confidence assigned when the
// classifier could not produce a real judgment.
const NeutralConfidence = 0.5

// Verdict is the structured result of analyzing one package.
// Immutable once created.
type Verdict struct {
	// MaliciousIntent is true only when the reply clearly points to
	// activity unnecessary or harmful for building the software.
	MaliciousIntent bool `json:"malicious_intent"`

	// Confidence is the model's confidence in MaliciousIntent, 0.0-1.0.
	Confidence float64 `json:"confidence"`

	// SuspiciousPatterns are short descriptions of detected issues.
	SuspiciousPatterns []string `json:"suspicious_patterns"`

	// Recommendations are steps to verify or mitigate.
	Recommendations []string `json:"recommendations"`

	// Analysis is the model's free-text rationale.
	Analysis string `json:"analysis"`

	// NameFindings carries the name heuristic result for the same
	// package. Attached by the gate, not by the classifier.
	NameFindings string `json:"-"`
}

// unavailableVerdict is returned when no credential is configured.
// No network call is made.
func unavailableVerdict() Verdict {
	return Verdict{
		MaliciousIntent:    false,
		Confidence:         NeutralConfidence,
		SuspiciousPatterns: []string{"No classifier credentials provided"},
		Recommendations:    []string{"Set ANTHROPIC_API_KEY or GEMINI_API_KEY for detailed analysis"},
		Analysis:           "Analysis not available",
	}
}

// failedVerdict is returned on transport or provider failure.
func failedVerdict(err error) Verdict {
	return Verdict{
		MaliciousIntent:    false,
		Confidence:         NeutralConfidence,
		SuspiciousPatterns: []string{"Analysis failed: " + err.Error()},
		Recommendations:    []string{"Manual review recommended"},
		Analysis:           "Analysis failed",
	}
}

// unparsedVerdict is returned when the reply contained no well-formed
// verdict object. The raw reply is preserved as the rationale.
func unparsedVerdict(raw string) Verdict {
	return Verdict{
		MaliciousIntent:    false,
		Confidence:         NeutralConfidence,
		SuspiciousPatterns: []string{"Could not parse classifier reply"},
		Recommendations:    []string{"Manual review recommended"},
		Analysis:           raw,
	}
}

// Aggregate combines per-package verdicts into an overall assessment:
// the malicious flag is the logical OR across verdicts, the confidence
// is the arithmetic mean. Returns false, 0 for an empty slice.
func Aggregate(verdicts []Verdict) (malicious bool, confidence float64) {
	if len(verdicts) == 0 {
		return false, 0
	}

	var sum float64
	for _, v := range verdicts {
		malicious = malicious || v.MaliciousIntent
		sum += v.Confidence
	}
	return malicious, sum / float64(len(verdicts))
}
