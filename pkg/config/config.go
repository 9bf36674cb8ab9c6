package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pixseek/pixseek/internal/logger"
	"github.com/pixseek/pixseek/pkg/settings"
)

// FinderConfig 找色引擎配置
type FinderConfig struct {
	Display       int     `json:"display"`
	MinSimilarity float64 `json:"min_similarity"`
	WaitScanRate  float64 `json:"wait_scan_rate"`
	LogLevel      string  `json:"log_level"`
	LogFile       string  `json:"log_file"`
	DumpDir       string  `json:"dump_dir"`
}

// DefaultFinderConfig 默认配置
func DefaultFinderConfig() *FinderConfig {
	return &FinderConfig{
		Display:       0,
		MinSimilarity: settings.DefaultSettings.MinSimilarity,
		WaitScanRate:  settings.DefaultSettings.WaitScanRate,
		LogLevel:      "INFO",
		LogFile:       "",
		DumpDir:       "",
	}
}

// Apply 把配置写入全局运行参数与日志器
func (c *FinderConfig) Apply() error {
	s := settings.Get()
	if c.MinSimilarity > 0 && c.MinSimilarity <= 1 {
		s.MinSimilarity = c.MinSimilarity
	}
	if c.WaitScanRate > 0 {
		s.WaitScanRate = c.WaitScanRate
	}
	settings.Set(s)

	return logger.Default().Configure(c.LogLevel, c.LogFile)
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := filepath.Join(homeDir, ".pixseek")
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// ensureDir 确保配置目录存在
func (m *Manager) ensureDir() error {
	return os.MkdirAll(m.configDir, 0755)
}

// Load 加载配置
func (m *Manager) Load() (*FinderConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return DefaultFinderConfig(), nil
	}

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return DefaultFinderConfig(), fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultFinderConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return DefaultFinderConfig(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	return config, nil
}

// Save 保存配置
func (m *Manager) Save(config *FinderConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDir(); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(m.configFile, data, 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// Clear 清除配置
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(m.configFile)
}

// GetConfigDir 获取配置目录
func (m *Manager) GetConfigDir() string {
	return m.configDir
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Exists 检查配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// 全局配置管理器
var defaultManager = NewManager()

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	return defaultManager
}

// Load 使用默认管理器加载配置
func Load() (*FinderConfig, error) {
	return defaultManager.Load()
}

// Save 使用默认管理器保存配置
func Save(config *FinderConfig) error {
	return defaultManager.Save(config)
}

// Clear 使用默认管理器清除配置
func Clear() error {
	return defaultManager.Clear()
}
