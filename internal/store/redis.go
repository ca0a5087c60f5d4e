package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"HairJourneyCompanion/utils"
)

const (
	completedSuffix = "checkin:completed"
	dismissedSuffix = "checkin:dismissed"

	// day-stamp 只代表一个日历日，48h TTL 足够跨过日界后自然过期
	stampTTL = 48 * time.Hour
)

// RedisStore 基于 Redis 的 Store 实现，供多实例共享本地提示状态
// （例如同一账号在沙龙 kiosk 的多台设备上运行 companion）
type RedisStore struct {
	client *goredis.Client
	prefix string
	loc    *time.Location
	now    func() time.Time
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisStore(opts RedisOptions, loc *time.Location) (*RedisStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis store ping: %w", err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "myavana"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		loc:    loc,
		now:    time.Now,
	}, nil
}

func (s *RedisStore) CompletedToday(ctx context.Context) (bool, error) {
	return s.stampMatchesToday(ctx, completedSuffix)
}

func (s *RedisStore) DismissedToday(ctx context.Context) (bool, error) {
	return s.stampMatchesToday(ctx, dismissedSuffix)
}

func (s *RedisStore) RecordCompleted(ctx context.Context) error {
	return s.writeStamp(ctx, completedSuffix)
}

func (s *RedisStore) RecordDismissed(ctx context.Context) error {
	return s.writeStamp(ctx, dismissedSuffix)
}

func (s *RedisStore) Days(ctx context.Context) (string, string, error) {
	completed, err := s.readStamp(ctx, completedSuffix)
	if err != nil {
		return "", "", err
	}

	dismissed, err := s.readStamp(ctx, dismissedSuffix)
	if err != nil {
		return "", "", err
	}

	return completed, dismissed, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(suffix string) string {
	var sb strings.Builder
	sb.WriteString(s.prefix)
	sb.WriteString(":")
	sb.WriteString(suffix)
	return sb.String()
}

func (s *RedisStore) stampMatchesToday(ctx context.Context, suffix string) (bool, error) {
	stamp, err := s.readStamp(ctx, suffix)
	if err != nil {
		return false, err
	}
	return stamp == utils.DayKey(s.now(), s.loc), nil
}

func (s *RedisStore) readStamp(ctx context.Context, suffix string) (string, error) {
	val, err := s.client.Get(ctx, s.key(suffix)).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read day stamp %s: %w", suffix, err)
	}
	return val, nil
}

func (s *RedisStore) writeStamp(ctx context.Context, suffix string) error {
	day := utils.DayKey(s.now(), s.loc)
	if err := s.client.Set(ctx, s.key(suffix), day, stampTTL).Err(); err != nil {
		return fmt.Errorf("write day stamp %s: %w", suffix, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
