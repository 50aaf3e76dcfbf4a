package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis surface the repositories depend on. Embedding
// redis.UniversalClient keeps single-node and sentinel clients interchangeable.
type Client interface {
	redis.UniversalClient
}
