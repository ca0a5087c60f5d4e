package store

import (
	"fmt"
	"time"
)

type Options struct {
	Backend  string // file, redis
	FilePath string
	Redis    RedisOptions
}

// New 按配置选择 day-stamp 存储后端
func New(opts Options, loc *time.Location) (Store, error) {
	switch opts.Backend {
	case "file", "":
		return NewFileStore(opts.FilePath, loc)
	case "redis":
		return NewRedisStore(opts.Redis, loc)
	default:
		return nil, fmt.Errorf("unsupported state backend: %s", opts.Backend)
	}
}
