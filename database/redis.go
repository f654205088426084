package database

import (
	"context"
	"encoding/json"
	"log"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis is nil when no REDIS_ADDR is configured. Caching is then skipped
// and status events stay in process.
var Redis *redis.Client

func InitRedis(addr string) error {
	if addr == "" {
		log.Println("[CACHE] REDIS_ADDR empty, cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}
	Redis = client
	log.Printf("[CACHE] connected to redis %s", addr)
	return nil
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
		Redis = nil
	}
}

// CacheKey scopes a cache entry to the dataset version it was computed from.
func CacheKey(version string, parts ...string) string {
	return constants.REDIS_KPI_PREFIX + version + ":" + strings.Join(parts, ":")
}

func CacheGet(ctx context.Context, key string) ([]byte, bool) {
	if Redis == nil {
		return nil, false
	}
	val, err := Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] get %s: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func CacheSet(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("[CACHE] set %s: %v", key, err)
	}
}

var (
	statusMu   sync.Mutex
	lastStatus = model.DatasetStatus{Event: "idle"}
	listeners  = make(map[string]chan model.DatasetStatus)
)

// LastStatus is the most recent status published by this process.
func LastStatus() model.DatasetStatus {
	statusMu.Lock()
	defer statusMu.Unlock()
	return lastStatus
}

// PublishStatus records status and forwards it to redis, or to in-process
// listeners when redis is disabled.
func PublishStatus(ctx context.Context, status model.DatasetStatus) {
	statusMu.Lock()
	lastStatus = status
	statusMu.Unlock()

	if Redis != nil {
		payload, err := json.Marshal(status)
		if err != nil {
			log.Printf("[DATASET] encode status: %v", err)
			return
		}
		if err := Redis.Publish(ctx, constants.REDIS_STATUS_CHANNEL, payload).Err(); err != nil {
			log.Printf("[DATASET] publish status: %v", err)
		}
		return
	}

	statusMu.Lock()
	defer statusMu.Unlock()
	for _, ch := range listeners {
		select {
		case ch <- status:
		default:
		}
	}
}

// SubscribeStatus streams status events until cancel is called or ctx ends.
func SubscribeStatus(ctx context.Context) (string, <-chan model.DatasetStatus, func()) {
	id := uuid.NewString()
	out := make(chan model.DatasetStatus, 8)

	if Redis != nil {
		ctx, stop := context.WithCancel(ctx)
		pubsub := Redis.Subscribe(ctx, constants.REDIS_STATUS_CHANNEL)
		go func() {
			defer close(out)
			defer pubsub.Close()
			channel := pubsub.Channel()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-channel:
					if !ok {
						return
					}
					var status model.DatasetStatus
					if err := json.Unmarshal([]byte(msg.Payload), &status); err != nil {
						log.Printf("[DATASET] bad status payload: %v", err)
						continue
					}
					select {
					case out <- status:
					default:
					}
				}
			}
		}()
		return id, out, stop
	}

	statusMu.Lock()
	listeners[id] = out
	statusMu.Unlock()
	var once sync.Once
	return id, out, func() {
		once.Do(func() {
			statusMu.Lock()
			delete(listeners, id)
			statusMu.Unlock()
			close(out)
		})
	}
}
