package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_KeepsDefaultsAndExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "scoop")
	path := writeFile(t, "name: ${SAMPLE_NAME}\ndebug: true\n")

	s := sample{Port: 8080}
	if err := Load(path, &s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "scoop" || s.Port != 8080 || !s.Debug {
		t.Errorf("got %+v", s)
	}
}

func TestLoad_Errors(t *testing.T) {
	s := sample{Port: 1}
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &s); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	if err := Load(writeFile(t, "port: [1, 2"), &s); err == nil {
		t.Error("malformed YAML accepted")
	}
	err := Load(writeFile(t, "port: 0\n"), &s)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("validation err = %v", err)
	}
}

func TestLoadOptional(t *testing.T) {
	s := sample{Port: 8080}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &s)
	if err != nil || found {
		t.Fatalf("absent: found=%v err=%v", found, err)
	}
	if s.Port != 8080 {
		t.Errorf("defaults lost: %+v", s)
	}

	bad := sample{}
	if _, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &bad); err == nil {
		t.Error("defaults must still be validated")
	}

	found, err = LoadOptional(writeFile(t, "port: 9000\n"), &s)
	if err != nil || !found || s.Port != 9000 {
		t.Errorf("present: found=%v err=%v port=%d", found, err, s.Port)
	}
}
