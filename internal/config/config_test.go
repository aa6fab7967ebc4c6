package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"COMPASS_SERVER_PORT":          "server.port",
		"COMPASS_AUTH_JWT_SECRET":      "auth.jwt_secret",
		"COMPASS_RATE_LIMIT_BURST":     "rate_limit.burst",
		"COMPASS_LOCAL_STORE_PATH":     "local_store.path",
		"COMPASS_MATCHER_STREAM_BONUS": "matcher.stream_bonus",
		"COMPASS_SESSION_ANSWER_TTL":   "session.answer_ttl",
		"MONGO_URI":                    "mongo.uri",
		"JWT_SECRET":                   "auth.jwt_secret",
		"HOME":                         "",
		"SERVER_PORT":                  "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Fatalf("envTransformFunc(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Session.AnswerTTL != 7*24*time.Hour {
		t.Fatalf("unexpected answer ttl %v", cfg.Session.AnswerTTL)
	}
	if cfg.Matcher.Similarity != 0.80 || cfg.Matcher.StreamBonus != 15 || cfg.Matcher.MarksBonus != 5 {
		t.Fatalf("unexpected matcher weights %+v", cfg.Matcher)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
  cors_origins:
    - https://counsel.example.org
redis:
  addr: cache:6379
matcher:
  stream_bonus: 20
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("COMPASS_SERVER_PORT", "9100")
	t.Setenv("REDIS_URI", "redis://legacy:6379")
	t.Setenv("COMPASS_SESSION_ANSWER_TTL", "48h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("env should override file, got port %d", cfg.Server.Port)
	}
	if cfg.Redis.Addr != "legacy:6379" {
		t.Fatalf("expected legacy redis addr without scheme, got %q", cfg.Redis.Addr)
	}
	if cfg.Matcher.StreamBonus != 20 {
		t.Fatalf("file should override defaults, got %v", cfg.Matcher.StreamBonus)
	}
	if cfg.Session.AnswerTTL != 48*time.Hour {
		t.Fatalf("expected 48h, got %v", cfg.Session.AnswerTTL)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"https://counsel.example.org"}) {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadSplitsSliceEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdir(t, t.TempDir())
	t.Setenv("COMPASS_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Server.CORSOrigins)
	}
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdir(t, t.TempDir())
	t.Setenv("COMPASS_RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.1, ::1")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"10.0.0.1", "::1"}
	if !reflect.DeepEqual(cfg.RateLimit.TrustedProxies, want) {
		t.Fatalf("expected %v, got %v", want, cfg.RateLimit.TrustedProxies)
	}

	t.Setenv("COMPASS_RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.1,gateway")
	if _, err := Load(); err == nil {
		t.Fatal("expected a non-IP proxy to be rejected")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	chdir(t, t.TempDir())
	t.Setenv("COMPASS_AUTH_JWT_SECRET", "short")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Fatalf("expected jwt_secret validation error, got %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
