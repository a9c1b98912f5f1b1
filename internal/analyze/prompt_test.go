package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserMessageIncludesRecipe(t *testing.T) {
	msg := buildUserMessage("firefox", "pkgname=firefox\npkgver=128.0")

	assert.Contains(t, msg, "Package name: firefox")
	assert.Contains(t, msg, "pkgver=128.0")
	assert.Contains(t, msg, "malicious_intent")
}

func TestBuildUserMessageTruncatesLargeRecipe(t *testing.T) {
	huge := strings.Repeat("x", maxRecipeLen+1000)

	msg := buildUserMessage("bigpkg", huge)

	assert.Contains(t, msg, "...(truncated)")
	assert.Less(t, len(msg), maxRecipeLen+2000)
}
