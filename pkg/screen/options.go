package screen

import (
	"time"

	"github.com/pixseek/pixseek/pkg/settings"
)

// FindOption 实时搜索配置选项
type FindOption func(*findConfig)

// findConfig 单次搜索的临时配置
type findConfig struct {
	similarity float64
	timeout    time.Duration
	timeoutSet bool
	limit      int
	resize     float64
}

func applyFindOptions(opts ...FindOption) *findConfig {
	cfg := &findConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// waitTimeout 返回等待超时: 显式设置优先，否则取全局默认
func (c *findConfig) waitTimeout() time.Duration {
	if c.timeoutSet {
		return c.timeout
	}
	return settings.Get().AutoWaitTimeout
}

// WithSimilarity 设置相似度阈值，覆盖模式与全局默认值
func WithSimilarity(s float64) FindOption {
	return func(c *findConfig) {
		c.similarity = s
	}
}

// WithTimeout 设置等待超时时间。0 表示只检查一次。
func WithTimeout(d time.Duration) FindOption {
	return func(c *findConfig) {
		c.timeout = d
		c.timeoutSet = true
	}
}

// WithLimit 设置 FindAll 结果数量上限
func WithLimit(n int) FindOption {
	return func(c *findConfig) {
		c.limit = n
	}
}

// WithResize 设置帧缩放系数
func WithResize(factor float64) FindOption {
	return func(c *findConfig) {
		c.resize = factor
	}
}
