package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ".guestgate")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// TestCategoriesLog verifies that enabled categories create log files when
// debug_mode is true.
func TestCategoriesLog(t *testing.T) {
	tempDir := t.TempDir()
	writeTestConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"boot": true,
				"session": true,
				"store": true,
				"ui": false
			}
		}
	}`)

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if !IsDebugMode() {
		t.Fatal("expected debug mode to be enabled")
	}

	Session("guest mode enabled")
	Store("persisted isGuestMode=true")
	UI("should be suppressed")

	CloseAll()

	entries, err := os.ReadDir(filepath.Join(tempDir, ".guestgate", "logs"))
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	joined := strings.Join(names, ",")

	for _, want := range []string{"session", "store"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected a %s log file, got %v", want, names)
		}
	}
	if strings.Contains(joined, "_ui.log") {
		t.Errorf("ui category is disabled but produced a file: %v", names)
	}
}

// TestProductionModeIsSilent verifies that without a config file no logs
// directory is created.
func TestProductionModeIsSilent(t *testing.T) {
	tempDir := t.TempDir()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if IsDebugMode() {
		t.Fatal("expected production mode without a config file")
	}

	Session("this should go nowhere")

	if _, err := os.Stat(filepath.Join(tempDir, ".guestgate", "logs")); !os.IsNotExist(err) {
		t.Error("logs directory should not exist in production mode")
	}
}

func TestCategoryEnabledDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeTestConfig(t, tempDir, `{
		"logging": {
			"level": "info",
			"debug_mode": true
		}
	}`)

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	// No category filter means everything is enabled.
	for _, cat := range []Category{CategoryBoot, CategorySession, CategoryStore, CategoryCatalog, CategoryI18n, CategoryHaptics, CategoryUI} {
		if !IsCategoryEnabled(cat) {
			t.Errorf("category %s should be enabled by default", cat)
		}
	}
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	if err := Initialize(""); err == nil {
		t.Error("expected error for empty workspace path")
	}
}
