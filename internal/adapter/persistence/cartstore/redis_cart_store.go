package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/infrastructure/config"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "pdv:cart:"

// RedisCartStore keeps PDV carts as JSON documents that expire after ttl
// without activity.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

var _ interfaces.ICartStore = (*RedisCartStore)(nil)

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisCartStore) Get(ctx context.Context, cartID string) (entities.Cart, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+cartID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return emptyCart(cartID), nil
		}
		return entities.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart entities.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []entities.CartItem{}
	}
	return cart, nil
}

// Save overwrites the cart and restarts its expiry.
func (s *RedisCartStore) Save(ctx context.Context, cart entities.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.keyPrefix+cart.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func emptyCart(id string) entities.Cart {
	return entities.Cart{ID: id, Items: []entities.CartItem{}}
}
