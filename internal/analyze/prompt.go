package analyze

import "fmt"

// maxRecipeLen caps the PKGBUILD text embedded in the prompt.
const maxRecipeLen = 30000

// systemPrompt frames the model as a packaging security reviewer.
const systemPrompt = "You are a security expert analyzing PKGBUILD files for malicious intent."

// buildUserMessage creates the analysis prompt for one package.
func buildUserMessage(name, pkgbuild string) string {
	if len(pkgbuild) > maxRecipeLen {
		pkgbuild = pkgbuild[:maxRecipeLen] + "\n...(truncated)"
	}

	return fmt.Sprintf(`Analyze the following PKGBUILD for potential malicious intent.

Important:
- Many legitimate packages download sources or run build scripts from upstream.
- Do NOT consider expected upstream build processes (running ./configure, make,
  cmake, meson, applying patches) as malicious when they are consistent with
  normal packaging practice.
- Only mark malicious_intent true if the PKGBUILD performs actions that are
  clearly unnecessary or harmful for building the software, such as:
  installing backdoors or miners, exfiltrating data, modifying unrelated
  system files, contacting suspicious or unrelated domains, or setting
  insecure file permissions.

Look for:
1. Suspicious commands in prepare(), build(), or install() functions
2. Network requests or downloads outside of normal source retrieval
3. Filesystem modifications outside the packaging directory ($pkgdir or $srcdir)
4. Execution of downloaded scripts from untrusted sources
5. Hardcoded credentials, URLs, or IP addresses unrelated to source hosting
6. Unusual permissions or file operations

Package name: %s

PKGBUILD content:
%s

Return a JSON object with the following keys:
{
  "malicious_intent": <true|false>,
  "confidence": <0.0-1.0>,
  "suspicious_patterns": ["pattern1", "pattern2"],
  "recommendations": ["rec1", "rec2"],
  "analysis": "Detailed explanation, including why legitimate actions are not considered malicious"
}`, name, pkgbuild)
}
