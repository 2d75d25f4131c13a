package multisearch

import (
	"runtime"

	"github.com/oarkflow/xid"
)

type Config struct {
	Key           string `json:"key"`
	CacheSize     int    `json:"cache_size"`
	Workers       int    `json:"workers"`
	TaskQueueSize int    `json:"task_queue_size"`
}

// MergeConfigs merges multiple Config structs into one. Later non-zero
// fields win.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Key != "" {
			mergedConfig.Key = cfg.Key
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
		if cfg.TaskQueueSize != 0 {
			mergedConfig.TaskQueueSize = cfg.TaskQueueSize
		}
	}
	return mergedConfig
}

func GetConfig(key string) *Config {
	return &Config{
		Key:       key,
		CacheSize: 128,
	}
}

func (c *Config) withDefaults() *Config {
	if c.Key == "" {
		c.Key = xid.New().String()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TaskQueueSize <= 0 {
		c.TaskQueueSize = 2 * c.Workers
	}
	if c.CacheSize < 0 {
		c.CacheSize = 0
	}
	return c
}
