package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixseek/pixseek/pkg/settings"
)

func TestDefaultFinderConfig(t *testing.T) {
	config := DefaultFinderConfig()

	if config.Display != 0 {
		t.Errorf("默认 Display 应为 0, 实际为 %d", config.Display)
	}
	if config.MinSimilarity != 0.7 {
		t.Errorf("默认 MinSimilarity 应为 0.7, 实际为 %v", config.MinSimilarity)
	}
	if config.WaitScanRate != 3 {
		t.Errorf("默认 WaitScanRate 应为 3, 实际为 %v", config.WaitScanRate)
	}
	if config.LogLevel != "INFO" {
		t.Errorf("默认 LogLevel 应为 INFO, 实际为 %s", config.LogLevel)
	}
	if config.DumpDir != "" {
		t.Error("默认 DumpDir 应为空")
	}

	t.Logf("默认配置: %+v", config)
}

func TestManagerSaveAndLoad(t *testing.T) {
	// 使用临时目录
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	// 检查初始状态
	if manager.Exists() {
		t.Error("初始时配置文件不应存在")
	}

	// 保存配置
	config := &FinderConfig{
		Display:       1,
		MinSimilarity: 0.85,
		WaitScanRate:  10,
		LogLevel:      "DEBUG",
		LogFile:       "/tmp/pixseek.log",
		DumpDir:       "/tmp/dumps",
	}

	err := manager.Save(config)
	if err != nil {
		t.Fatalf("保存配置失败: %v", err)
	}

	// 检查文件是否存在
	if !manager.Exists() {
		t.Error("保存后配置文件应存在")
	}

	// 加载配置
	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	// 验证内容
	if loaded.Display != config.Display {
		t.Errorf("Display 不匹配: 期望 %d, 实际 %d", config.Display, loaded.Display)
	}
	if loaded.MinSimilarity != config.MinSimilarity {
		t.Errorf("MinSimilarity 不匹配: 期望 %v, 实际 %v", config.MinSimilarity, loaded.MinSimilarity)
	}
	if loaded.WaitScanRate != config.WaitScanRate {
		t.Errorf("WaitScanRate 不匹配: 期望 %v, 实际 %v", config.WaitScanRate, loaded.WaitScanRate)
	}
	if loaded.LogLevel != config.LogLevel {
		t.Errorf("LogLevel 不匹配: 期望 %s, 实际 %s", config.LogLevel, loaded.LogLevel)
	}
	if loaded.DumpDir != config.DumpDir {
		t.Errorf("DumpDir 不匹配: 期望 %s, 实际 %s", config.DumpDir, loaded.DumpDir)
	}

	t.Logf("加载的配置: %+v", loaded)
}

func TestManagerLoadPartialFile(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	// 只含部分字段的配置文件, 缺失字段应保留默认值
	configFile := filepath.Join(tempDir, "config.json")
	err := os.WriteFile(configFile, []byte(`{"min_similarity": 0.9}`), 0600)
	if err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if loaded.MinSimilarity != 0.9 {
		t.Errorf("MinSimilarity = %v, want 0.9", loaded.MinSimilarity)
	}
	if loaded.WaitScanRate != 3 {
		t.Errorf("缺失字段应保留默认值, WaitScanRate = %v", loaded.WaitScanRate)
	}
	if loaded.LogLevel != "INFO" {
		t.Errorf("缺失字段应保留默认值, LogLevel = %s", loaded.LogLevel)
	}
}

func TestManagerClear(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	// 先保存一个配置
	config := &FinderConfig{
		MinSimilarity: 0.8,
	}
	err := manager.Save(config)
	if err != nil {
		t.Fatalf("保存配置失败: %v", err)
	}

	if !manager.Exists() {
		t.Fatal("保存后配置文件应存在")
	}

	// 清除配置
	err = manager.Clear()
	if err != nil {
		t.Fatalf("清除配置失败: %v", err)
	}

	if manager.Exists() {
		t.Error("清除后配置文件不应存在")
	}

	// 清除不存在的文件不应报错
	err = manager.Clear()
	if err != nil {
		t.Errorf("清除不存在的配置不应报错: %v", err)
	}
}

func TestManagerLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	// 加载不存在的配置应返回默认值
	config, err := manager.Load()
	if err != nil {
		t.Fatalf("加载不存在的配置不应报错: %v", err)
	}

	defaultConfig := DefaultFinderConfig()
	if config.MinSimilarity != defaultConfig.MinSimilarity {
		t.Errorf("应返回默认 MinSimilarity")
	}

	t.Log("加载不存在的配置返回默认值: OK")
}

func TestManagerLoadCorruptedFile(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	// 创建一个损坏的配置文件
	configFile := filepath.Join(tempDir, "config.json")
	os.MkdirAll(tempDir, 0755)
	err := os.WriteFile(configFile, []byte("not valid json"), 0600)
	if err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	// 加载损坏的配置应返回默认值和错误
	config, err := manager.Load()
	if err == nil {
		t.Error("加载损坏的配置应返回错误")
	}

	// 但仍应返回默认配置
	if config == nil {
		t.Error("即使出错也应返回默认配置")
	}

	t.Logf("加载损坏配置的错误: %v", err)
}

func TestManagerPaths(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	if manager.GetConfigDir() != tempDir {
		t.Errorf("GetConfigDir 应为 %s", tempDir)
	}

	expectedFile := filepath.Join(tempDir, "config.json")
	if manager.GetConfigFile() != expectedFile {
		t.Errorf("GetConfigFile 应为 %s", expectedFile)
	}

	t.Logf("配置目录: %s", manager.GetConfigDir())
	t.Logf("配置文件: %s", manager.GetConfigFile())
}

func TestDefaultManager(t *testing.T) {
	manager := GetDefaultManager()
	if manager == nil {
		t.Fatal("GetDefaultManager 返回 nil")
	}

	// 检查默认路径是否在用户目录下
	homeDir, _ := os.UserHomeDir()
	expectedDir := filepath.Join(homeDir, ".pixseek")

	if manager.GetConfigDir() != expectedDir {
		t.Errorf("默认配置目录应为 %s, 实际为 %s", expectedDir, manager.GetConfigDir())
	}

	t.Logf("默认配置目录: %s", manager.GetConfigDir())
}

func TestApply(t *testing.T) {
	defer settings.Reset()

	config := &FinderConfig{
		MinSimilarity: 0.92,
		WaitScanRate:  8,
		LogLevel:      "DEBUG",
	}
	if err := config.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	s := settings.Get()
	if s.MinSimilarity != 0.92 {
		t.Errorf("MinSimilarity = %v, want 0.92", s.MinSimilarity)
	}
	if s.WaitScanRate != 8 {
		t.Errorf("WaitScanRate = %v, want 8", s.WaitScanRate)
	}

	// 非法相似度不应写入
	bad := &FinderConfig{MinSimilarity: 1.5}
	if err := bad.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if settings.Get().MinSimilarity != 0.92 {
		t.Errorf("非法相似度不应覆盖原值, 实际 %v", settings.Get().MinSimilarity)
	}
}

func TestConfigFilePermissions(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManagerWithDir(tempDir)

	config := &FinderConfig{
		MinSimilarity: 0.8,
	}

	err := manager.Save(config)
	if err != nil {
		t.Fatalf("保存配置失败: %v", err)
	}

	// 检查文件权限 (应为 0600)
	info, err := os.Stat(manager.GetConfigFile())
	if err != nil {
		t.Fatalf("获取文件信息失败: %v", err)
	}

	perm := info.Mode().Perm()
	// 在某些系统上权限可能略有不同，但不应该是全局可读的
	if perm&0077 != 0 {
		t.Logf("警告: 配置文件权限为 %o, 建议设为 0600", perm)
	}

	t.Logf("配置文件权限: %o", perm)
}

// BenchmarkSaveLoad 基准测试
func BenchmarkSaveLoad(b *testing.B) {
	tempDir := b.TempDir()
	manager := NewManagerWithDir(tempDir)
	config := &FinderConfig{
		Display:       0,
		MinSimilarity: 0.8,
		WaitScanRate:  5,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		manager.Save(config)
		manager.Load()
	}
}
