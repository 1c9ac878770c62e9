package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libmgmt/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "libmgmt:books"

var redisJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// NewRedisClient connects to the Redis server at redisURL
// (e.g. "redis://localhost:6379/0") and checks that it answers.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// BookRedis keeps every book as one field of a single Redis hash, keyed by
// ISBN, with the JSON-encoded book as the value.
type BookRedis struct {
	client *redis.Client
	key    string
}

// NewBookRedis stores books under hash key; an empty key uses the default.
func NewBookRedis(client *redis.Client, key string) *BookRedis {
	if key == "" {
		key = defaultRedisKey
	}
	return &BookRedis{client: client, key: key}
}

func (r *BookRedis) Add(ctx context.Context, book entity.Book) Result[entity.Book] {
	data, err := redisJSON.Marshal(book)
	if err != nil {
		return Fault[entity.Book]("encode book", err)
	}
	added, err := r.client.HSetNX(ctx, r.key, book.ISBN, data).Result()
	if err != nil {
		return Fault[entity.Book]("hsetnx", err)
	}
	if !added {
		return Duplicate[entity.Book](book.ISBN)
	}
	return Ok(book)
}

func (r *BookRedis) GetByKey(ctx context.Context, isbn string) Result[entity.Book] {
	data, err := r.client.HGet(ctx, r.key, isbn).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NotFound[entity.Book](isbn)
		}
		return Fault[entity.Book]("hget", err)
	}
	var b entity.Book
	if err := redisJSON.Unmarshal(data, &b); err != nil {
		return Fault[entity.Book]("decode book", err)
	}
	return Ok(b)
}

func (r *BookRedis) GetAll(ctx context.Context) Result[[]entity.Book] {
	values, err := r.client.HVals(ctx, r.key).Result()
	if err != nil {
		return Fault[[]entity.Book]("hvals", err)
	}
	books := make([]entity.Book, 0, len(values))
	for _, v := range values {
		var b entity.Book
		if err := redisJSON.UnmarshalFromString(v, &b); err != nil {
			return Fault[[]entity.Book]("decode book", err)
		}
		books = append(books, b)
	}
	return Ok(books)
}

func (r *BookRedis) Update(ctx context.Context, book entity.Book) Result[entity.Book] {
	exists, err := r.client.HExists(ctx, r.key, book.ISBN).Result()
	if err != nil {
		return Fault[entity.Book]("hexists", err)
	}
	if !exists {
		return NotFound[entity.Book](book.ISBN)
	}
	data, err := redisJSON.Marshal(book)
	if err != nil {
		return Fault[entity.Book]("encode book", err)
	}
	if err := r.client.HSet(ctx, r.key, book.ISBN, data).Err(); err != nil {
		return Fault[entity.Book]("hset", err)
	}
	return Ok(book)
}

func (r *BookRedis) Delete(ctx context.Context, isbn string) Result[bool] {
	n, err := r.client.HDel(ctx, r.key, isbn).Result()
	if err != nil {
		return Fault[bool]("hdel", err)
	}
	if n == 0 {
		return NotFound[bool](isbn)
	}
	return Ok(true)
}
