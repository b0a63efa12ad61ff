package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

// changeChannel carries change announcements between processes sharing the
// redis backend.
const changeChannel = "qrdining:record_changes"

type changeMessage struct {
	Key    string `json:"key"`
	Writer string `json:"writer"`
}

// RedisBackend stores records as plain redis string keys and announces writes
// on a pub/sub channel so other processes can replay them.
type RedisBackend struct {
	rdb    *redis.Client
	writer string
}

func NewRedisBackend(redisURL string) (*RedisBackend, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBackend{
		rdb:    rdb,
		writer: uuid.NewString(),
	}, nil
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := b.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	return []byte(val), nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record %s: %w", key, err)
	}

	msg, err := json.Marshal(changeMessage{Key: key, Writer: b.writer})
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, changeChannel, msg).Err()
}

func (b *RedisBackend) Watch(ctx context.Context) (<-chan Change, error) {
	sub := b.rdb.Subscribe(ctx, changeChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", changeChannel, err)
	}

	out := make(chan Change)
	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case payload, ok := <-sub.Channel():
				if !ok {
					return
				}
				var msg changeMessage
				if err := json.Unmarshal([]byte(payload.Payload), &msg); err != nil {
					utils.ErrorLogger.Printf("Error decoding change message: %v", err)
					continue
				}
				if msg.Writer == b.writer {
					continue
				}
				value, err := b.Get(ctx, msg.Key)
				if err != nil {
					utils.ErrorLogger.Printf("Error fetching changed record %s: %v", msg.Key, err)
					continue
				}
				select {
				case out <- Change{Key: msg.Key, Value: value}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}
