package version

import (
	"strings"
	"testing"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected dev version, got %s", info.Version)
	}
	if info.IsRelease {
		t.Error("dev build should not be a release")
	}
	if info.GoVersion == "" {
		t.Error("expected go version to be populated")
	}
}

func TestInfo_ShortCommit(t *testing.T) {
	info := Info{GitCommit: "0123456789abcdef"}
	if got := info.ShortCommit(); got != "01234567" {
		t.Errorf("expected 01234567, got %s", got)
	}

	info = Info{GitCommit: "abc"}
	if got := info.ShortCommit(); got != "abc" {
		t.Errorf("short hashes should pass through, got %s", got)
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "ollamakit/") {
		t.Errorf("unexpected user agent prefix: %s", ua)
	}
	if !strings.Contains(ua, "go") {
		t.Errorf("user agent should carry the go version: %s", ua)
	}
}
