package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// accountCacheEntry is the Redis representation of one account
type accountCacheEntry struct {
	ID             uint64          `json:"id"`
	UserID         uint64          `json:"userId"`
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// RedisAccountListCache keeps each user's account list as one JSON value.
// Redis failures are logged and reported as misses; the database stays authoritative.
type RedisAccountListCache struct {
	client    *goredis.Client
	ttl       time.Duration
	keyPrefix string
	logger    coreport.Logger
}

// NewRedisAccountListCache creates a cache over an existing client
func NewRedisAccountListCache(client *goredis.Client, ttl time.Duration, keyPrefix string, logger coreport.Logger) *RedisAccountListCache {
	return &RedisAccountListCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// NewRedisClient builds a client and checks it answers
func NewRedisClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// versionTTL outlives any in-flight list read, so an expired version key
// cannot reappear at a value a pending Set still holds
const versionTTL = 24 * time.Hour

var errStaleVersion = errors.New("account list version changed")

func (c *RedisAccountListCache) key(userID uint64) string {
	return c.keyPrefix + strconv.FormatUint(userID, 10)
}

func (c *RedisAccountListCache) versionKey(userID uint64) string {
	return c.key(userID) + ":version"
}

// Get returns the cached list for the user. On a miss it returns the
// current version, or -1 when Redis cannot be read.
func (c *RedisAccountListCache) Get(ctx context.Context, userID uint64) ([]*entity.Account, int64, bool) {
	values, err := c.client.MGet(ctx, c.key(userID), c.versionKey(userID)).Result()
	if err != nil {
		c.logger.Warn("Account cache read failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		return nil, -1, false
	}

	version, err := parseVersion(values[1])
	if err != nil {
		c.logger.Warn("Account cache version is unreadable", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		return nil, -1, false
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, version, false
	}

	accounts, err := decodeAccounts([]byte(data))
	if err != nil {
		c.logger.Warn("Discarding undecodable account cache entry", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		c.Invalidate(ctx, userID)
		return nil, -1, false
	}
	return accounts, version, true
}

// Set stores the list for the user with the configured TTL, unless the
// version moved on since the list was read
func (c *RedisAccountListCache) Set(ctx context.Context, userID uint64, version int64, accounts []*entity.Account) {
	if version < 0 {
		return
	}

	data, err := encodeAccounts(accounts)
	if err != nil {
		c.logger.Warn("Account cache encode failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		return
	}

	versionKey := c.versionKey(userID)
	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		currentVersion, err := parseVersion(current)
		if err != nil {
			return err
		}
		if currentVersion != version {
			return errStaleVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, c.key(userID), data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, goredis.TxFailedErr):
		c.logger.Debug("Skipped caching a stale account list", map[string]any{
			"user_id": userID,
			"version": version,
		})
	default:
		c.logger.Warn("Account cache write failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
	}
}

// Invalidate bumps the user's version and drops the cached list
func (c *RedisAccountListCache) Invalidate(ctx context.Context, userID uint64) {
	versionKey := c.versionKey(userID)
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		pipe.Del(ctx, c.key(userID))
		return nil
	})
	if err != nil {
		c.logger.Warn("Account cache invalidation failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
	}
}

// parseVersion reads a version value; a missing key is version 0
func parseVersion(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected version type %T", value)
	}
}

func encodeAccounts(accounts []*entity.Account) ([]byte, error) {
	entries := make([]accountCacheEntry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, accountCacheEntry{
			ID:             a.ID,
			UserID:         a.UserID,
			AccountNumber:  a.AccountNumber,
			AccountName:    a.AccountName,
			AccountBalance: a.AccountBalance,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		})
	}
	return json.Marshal(entries)
}

func decodeAccounts(data []byte) ([]*entity.Account, error) {
	var entries []accountCacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	accounts := make([]*entity.Account, 0, len(entries))
	for _, e := range entries {
		accounts = append(accounts, &entity.Account{
			ID:             e.ID,
			UserID:         e.UserID,
			AccountNumber:  e.AccountNumber,
			AccountName:    e.AccountName,
			AccountBalance: e.AccountBalance,
			CreatedAt:      e.CreatedAt,
			UpdatedAt:      e.UpdatedAt,
		})
	}
	return accounts, nil
}
