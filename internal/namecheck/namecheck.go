// Package namecheck applies static heuristics to package names to flag
// likely typosquatting or machine-generated names. Pure string matching:
// no I/O, no failure modes, same input always yields the same finding.
package namecheck

import (
	"regexp"
	"strings"
)

// NormalFinding is the sentinel returned when no heuristic triggers.
const NormalFinding = "Package name appears normal"

// patternRule pairs a compiled pattern with its human-readable finding.
type patternRule struct {
	re      *regexp.Regexp
	finding string
}

// patternRules are evaluated in order; every match contributes a finding.
var patternRules = []patternRule{
	{regexp.MustCompile(`^[0-9]+$`), "Name is all digits"},
	{regexp.MustCompile(`^[a-z0-9]{1,3}$`), "Very short alphanumeric name"},
	{regexp.MustCompile(`[0-9]{4,}`), "Contains 4+ consecutive digits"},
	{regexp.MustCompile(`[a-z]{10,}`), "Contains 10+ consecutive lowercase letters"},
}

// wellKnown is the curated list of software names checked for
// substring-similarity typosquatting.
var wellKnown = []string{
	// Web browsers
	"firefox", "chrome", "chromium", "brave", "edge", "safari", "opera",

	// Development tools
	"vscode", "code", "sublime", "atom", "vim", "emacs", "nano",
	"git", "github", "gitlab", "bitbucket", "svn",
	"node", "npm", "yarn", "pnpm",
	"python", "pip", "conda", "poetry",
	"java", "maven", "gradle", "ant",
	"rust", "cargo", "rustc",
	"golang", "go",
	"gcc", "clang", "make", "cmake",
	"docker", "podman", "kubernetes", "k8s", "helm",
	"jenkins", "travis", "circleci",

	// Media applications
	"vlc", "mpv", "mplayer", "ffmpeg", "gstreamer",
	"gimp", "inkscape", "krita", "blender",
	"audacity", "obs",
	"spotify", "tidal",
	"steam", "lutris",

	// Communication
	"discord", "slack", "teams", "zoom", "skype", "telegram",
	"whatsapp", "signal", "matrix",

	// Office and productivity
	"libreoffice", "openoffice", "onlyoffice",
	"notion", "evernote", "obsidian",

	// System tools
	"htop", "top", "iotop", "glances",
	"wget", "curl", "aria2", "yt-dlp",
	"rsync", "openssh", "tmux",
	"nmap", "wireshark", "tcpdump",

	// Package managers
	"pacman", "yay", "paru", "aurman", "pamac",
	"apt", "dnf", "zypper", "brew", "flatpak", "snap",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "mariadb",

	// Web servers and runtimes
	"apache", "nginx", "caddy",
	"nodejs", "php", "ruby", "django", "flask",

	// Security tools
	"metasploit", "john", "hashcat", "aircrack-ng",

	// Virtualization and infrastructure
	"virtualbox", "vmware", "qemu", "kvm",
	"vagrant", "ansible", "terraform", "kubectl",

	// File sharing and sync
	"dropbox", "mega", "nextcloud", "owncloud", "syncthing",
}

// Check applies all heuristics to a package name and returns the
// "; "-joined findings, or NormalFinding when nothing triggers.
func Check(name string) string {
	var findings []string

	for _, rule := range patternRules {
		if rule.re.MatchString(name) {
			findings = append(findings, rule.finding)
		}
	}

	lower := strings.ToLower(name)
	for _, known := range wellKnown {
		if lower == known {
			continue
		}
		if strings.Contains(lower, known) || strings.Contains(known, lower) {
			findings = append(findings, "Potential typosquatting of '"+known+"'")
		}
	}

	if len(findings) == 0 {
		return NormalFinding
	}
	return strings.Join(findings, "; ")
}
