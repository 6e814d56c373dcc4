package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisPrefix = "guard:"
	// defaultTTL libera la key si el proceso muere con la acción en vuelo.
	defaultTTL = 2 * time.Minute
)

// releaseScript borra la key solo si todavía guarda el token de quien libera.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis comparte el busy flag entre instancias del servicio.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{rdb: rdb, ttl: ttl}
}

// OpenRedis parsea REDIS_URL y valida la conexión.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (g *Redis) TryAcquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, redisPrefix+key, token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("guard acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release no toca la key si expiró y ya la tomó otro.
func (g *Redis) Release(ctx context.Context, key, token string) {
	_ = releaseScript.Run(ctx, g.rdb, []string{redisPrefix + key}, token).Err()
}
