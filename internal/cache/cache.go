package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ibwangi/tripsearch/internal/models"
)

// Cache keeps normalized offer sets for identical searches so repeated
// lookups within the TTL skip the vendor round trip. This is ephemeral
// search-result caching only; bookings are never persisted.
type Cache interface {
	Get(ctx context.Context, sc models.SearchContext) ([]models.Offer, bool)
	Set(ctx context.Context, sc models.SearchContext, offers []models.Offer) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, sc models.SearchContext) ([]models.Offer, bool) {
	key := generateKey(sc)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []models.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}

	return offers, true
}

func (c *RedisCache) Set(ctx context.Context, sc models.SearchContext, offers []models.Offer) error {
	key := generateKey(sc)

	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, sc models.SearchContext) ([]models.Offer, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, sc models.SearchContext, offers []models.Offer) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(sc models.SearchContext) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Adults        int
		Minors        int
	}{
		Origin:        sc.Origin,
		Destination:   sc.Destination,
		DepartureDate: sc.DepartureDate,
		Adults:        sc.Adults,
		Minors:        sc.Minors,
	}

	if sc.ReturnDate != nil {
		keyData.ReturnDate = *sc.ReturnDate
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}
