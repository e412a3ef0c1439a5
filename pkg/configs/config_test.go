package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/studiovault/pkg/configs"
)

// TestDatabaseConfiguredDefaults 测试仅有内置默认值时不视为已配置数据库.
func TestDatabaseConfiguredDefaults(t *testing.T) {
	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}

	if configs.DatabaseConfigured() {
		t.Error("DatabaseConfigured() = true with defaults only, want false")
	}
}

// TestDatabaseConfiguredExplicit 测试配置文件提供数据库连接信息后视为已配置.
func TestDatabaseConfiguredExplicit(t *testing.T) {
	dir := t.TempDir()

	content := "server:\n  reload_config: false\ndb:\n  host: db.internal\n  database: studiovault\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if err := configs.InitConfig(dir); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}

	if !configs.DatabaseConfigured() {
		t.Error("DatabaseConfigured() = false with explicit db config, want true")
	}
}
