// Package settings 提供找色运行时的全局默认值。
// 各搜索入口在未显式指定参数时使用这里的值。
package settings

import (
	"sync"
	"time"
)

// Settings 全局运行时设置
type Settings struct {
	// MinSimilarity 默认相似度阈值 (0-1)
	MinSimilarity float64
	// AutoWaitTimeout 默认等待超时时间
	AutoWaitTimeout time.Duration
	// WaitScanRate 等待查找时每秒扫描次数
	WaitScanRate float64
	// ObserveScanRate 观察 (消失等待) 时每秒扫描次数
	ObserveScanRate float64

	// 日志开关
	ActionLogs bool // 记录查找/等待操作
	InfoLogs   bool // 记录一般信息
	DebugLogs  bool // 记录调试信息
}

// DefaultSettings 默认设置
var DefaultSettings = Settings{
	MinSimilarity:   0.7,
	AutoWaitTimeout: 3 * time.Second,
	WaitScanRate:    3,
	ObserveScanRate: 3,
	ActionLogs:      true,
	InfoLogs:        true,
	DebugLogs:       false,
}

var (
	mu     sync.RWMutex
	global = DefaultSettings
)

// Get 获取当前全局设置的副本
func Get() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set 替换全局设置
func Set(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	global = s
}

// Reset 重置为默认设置
func Reset() {
	Set(DefaultSettings)
}

// ScanInterval 返回等待查找的轮询间隔。
// 扫描频率无效时回落到默认值。
func (s Settings) ScanInterval() time.Duration {
	rate := s.WaitScanRate
	if rate <= 0 {
		rate = DefaultSettings.WaitScanRate
	}
	return time.Duration(float64(time.Second) / rate)
}

// ObserveInterval 返回消失等待的轮询间隔
func (s Settings) ObserveInterval() time.Duration {
	rate := s.ObserveScanRate
	if rate <= 0 {
		rate = DefaultSettings.ObserveScanRate
	}
	return time.Duration(float64(time.Second) / rate)
}

// Similarity 返回有效的相似度阈值
func (s Settings) Similarity() float64 {
	if s.MinSimilarity <= 0 || s.MinSimilarity > 1 {
		return DefaultSettings.MinSimilarity
	}
	return s.MinSimilarity
}
