package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestPrepare_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "logs", "marquee.log")
	writeFile(t, configPath, "source = \"https://catalog.example.com/movies.json\"\n"+
		"log_file = \""+logPath+"\"\nlog_level = \"warn\"\n")

	prefsPath := filepath.Join(dir, "prefs.toml")
	if err := prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save prefs: %v", err)
	}

	opts, closeLog, err := prepare(context.Background(), Options{ConfigPath: configPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("prepare returned error: %v", err)
	}
	t.Cleanup(func() { _ = closeLog() })

	if _, ok := opts.Source.(*catalog.HTTPSource); !ok {
		t.Fatalf("Source = %T, want *catalog.HTTPSource", opts.Source)
	}
	if opts.Source.Location() != "https://catalog.example.com/movies.json" {
		t.Fatalf("Source.Location = %q", opts.Source.Location())
	}
	if opts.ThemeName != "Slate" {
		t.Fatalf("ThemeName = %q, want Slate", opts.ThemeName)
	}
	if opts.PrefsPath != prefsPath {
		t.Fatalf("PrefsPath = %q, want %q", opts.PrefsPath, prefsPath)
	}
	if opts.Logger.GetLevel() != log.WarnLevel {
		t.Fatalf("logger level = %v, want warn", opts.Logger.GetLevel())
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestPrepare_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, configPath, "source = \"https://catalog.example.com/movies.json\"\n")

	catalogPath := filepath.Join(dir, "movies.json")
	writeFile(t, catalogPath, "[]")

	opts, closeLog, err := prepare(context.Background(), Options{
		ConfigPath: configPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Source:     catalogPath,
		LogFile:    filepath.Join(dir, "debug.log"),
		Debug:      true,
	})
	if err != nil {
		t.Fatalf("prepare returned error: %v", err)
	}
	t.Cleanup(func() { _ = closeLog() })

	if _, ok := opts.Source.(*catalog.FileSource); !ok {
		t.Fatalf("Source = %T, want *catalog.FileSource", opts.Source)
	}
	if opts.Source.Location() != catalogPath {
		t.Fatalf("Source.Location = %q, want %q", opts.Source.Location(), catalogPath)
	}
	if opts.Logger.GetLevel() != log.DebugLevel {
		t.Fatalf("logger level = %v, want debug", opts.Logger.GetLevel())
	}
	if opts.ThemeName != prefs.DefaultTheme {
		t.Fatalf("ThemeName = %q, want %q", opts.ThemeName, prefs.DefaultTheme)
	}
}

func TestPrepare_MalformedConfigIsFatal(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, configPath, "source = [\n")

	_, _, err := prepare(context.Background(), Options{ConfigPath: configPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("prepare error = %v, want load config error", err)
	}
}

func TestPrepare_UnwritableLogFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "")

	opts, closeLog, err := prepare(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Source:     "https://catalog.example.com/movies.json",
		LogFile:    filepath.Join(blocker, "marquee.log"),
	})
	if err != nil {
		t.Fatalf("prepare returned error: %v", err)
	}
	if opts.Logger == nil {
		t.Fatalf("Logger is nil, want discarding logger")
	}
	if err := closeLog(); err != nil {
		t.Fatalf("closeLog returned error: %v", err)
	}
}

func TestPrepare_BadSourceIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, _, err := prepare(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		Source:     "ftp://catalog.example.com/movies.json",
		LogFile:    filepath.Join(dir, "marquee.log"),
	})
	if err == nil || !strings.Contains(err.Error(), "init catalog source") {
		t.Fatalf("prepare error = %v, want init catalog source error", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	base := config.Config{Source: "/srv/movies.json", LogFile: "/var/log/marquee.log", LogLevel: "info"}

	if got := applyOverrides(base, Options{}); got != base {
		t.Fatalf("applyOverrides(no flags) = %#v, want %#v", got, base)
	}

	got := applyOverrides(base, Options{Source: "  http://localhost:8080/movies.json ", Debug: true})
	if got.Source != "http://localhost:8080/movies.json" {
		t.Fatalf("Source = %q", got.Source)
	}
	if got.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", got.LogLevel)
	}
	if got.LogFile != base.LogFile {
		t.Fatalf("LogFile = %q, want unchanged", got.LogFile)
	}
}
