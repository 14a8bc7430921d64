package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirPrefersIdidConfigHome(t *testing.T) {
	t.Setenv("IDID_CONFIG_HOME", "/tmp/idid-conf")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if dir := Dir(); dir != "/tmp/idid-conf" {
		t.Errorf("Dir() = %q, want %q", dir, "/tmp/idid-conf")
	}
}

func TestDirUsesXDGConfigHome(t *testing.T) {
	t.Setenv("IDID_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "idid")
	if dir := Dir(); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestDirFallsBackToHome(t *testing.T) {
	t.Setenv("IDID_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}
	want := filepath.Join(home, ".config", "idid")
	if dir := Dir(); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.TSV != "" || cfg.Quiet || cfg.Editor != "" {
		t.Errorf("LoadFile() on missing file = %+v, want zero value", cfg)
	}
}

func TestLoadFileParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "tsv: /home/me/did.tsv\nquiet: true\neditor: nano\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.TSV != "/home/me/did.tsv" {
		t.Errorf("TSV = %q, want %q", cfg.TSV, "/home/me/did.tsv")
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true")
	}
	if cfg.Editor != "nano" {
		t.Errorf("Editor = %q, want %q", cfg.Editor, "nano")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tsv: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() on malformed YAML succeeded, want error")
	}
}

func TestTSVPathExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.tsv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := TSVPath(path, nil)
	if err != nil {
		t.Fatalf("TSVPath() error = %v", err)
	}
	if got != path {
		t.Errorf("TSVPath() = %q, want %q", got, path)
	}
}

func TestTSVPathExplicitMissing(t *testing.T) {
	_, err := TSVPath(filepath.Join(t.TempDir(), "absent.tsv"), nil)
	if err == nil {
		t.Fatal("TSVPath() on missing explicit path succeeded, want error")
	}
	if !strings.HasPrefix(err.Error(), "--tsv ") {
		t.Errorf("error = %q, want --tsv prefix", err)
	}
}

func TestTSVPathExplicitDirectory(t *testing.T) {
	_, err := TSVPath(t.TempDir(), nil)
	if err == nil {
		t.Fatal("TSVPath() on directory succeeded, want error")
	}
	if !strings.Contains(err.Error(), "not a file") {
		t.Errorf("error = %q, want not-a-file message", err)
	}
}

func TestTSVPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.tsv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IDID_TSV", path)

	got, err := TSVPath("", nil)
	if err != nil {
		t.Fatalf("TSVPath() error = %v", err)
	}
	if got != path {
		t.Errorf("TSVPath() = %q, want %q", got, path)
	}
}

func TestTSVPathEnvMissing(t *testing.T) {
	t.Setenv("IDID_TSV", filepath.Join(t.TempDir(), "absent.tsv"))

	_, err := TSVPath("", nil)
	if err == nil {
		t.Fatal("TSVPath() on missing $IDID_TSV path succeeded, want error")
	}
	if !strings.HasPrefix(err.Error(), "$IDID_TSV ") {
		t.Errorf("error = %q, want $IDID_TSV prefix", err)
	}
}

func TestTSVPathConfig(t *testing.T) {
	t.Setenv("IDID_TSV", "")
	path := filepath.Join(t.TempDir(), "cfg.tsv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := TSVPath("", &Config{TSV: path})
	if err != nil {
		t.Fatalf("TSVPath() error = %v", err)
	}
	if got != path {
		t.Errorf("TSVPath() = %q, want %q", got, path)
	}
}

func TestTSVPathDefaultCreated(t *testing.T) {
	t.Setenv("IDID_TSV", "")
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	got, err := TSVPath("", nil)
	if err != nil {
		t.Fatalf("TSVPath() error = %v", err)
	}
	want := filepath.Join(data, "idid", "idid.tsv")
	if got != want {
		t.Errorf("TSVPath() = %q, want %q", got, want)
	}
	info, err := os.Stat(got)
	if err != nil {
		t.Fatalf("default log file not created: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Error("default log path is not a regular file")
	}
}

func TestTSVPathDefaultExisting(t *testing.T) {
	t.Setenv("IDID_TSV", "")
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	path := filepath.Join(data, "idid", "idid.tsv")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("existing\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := TSVPath("", nil)
	if err != nil {
		t.Fatalf("TSVPath() error = %v", err)
	}
	if got != path {
		t.Errorf("TSVPath() = %q, want %q", got, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "existing\n" {
		t.Errorf("existing log file was modified: %q", content)
	}
}
