// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/fornello/internal/platform/constants"
)

// RedisRevocationRepository implements [RevocationRepository] using Redis.
//
// # Why Redis for the denylist?
//
// Redis executes commands on a single thread, so a SET is visible to every
// subsequent EXISTS, from any connection, the moment it returns. That is
// exactly the read-after-write guarantee the revocation contract demands,
// and it keeps the hot authentication path off the relational database.
type RedisRevocationRepository struct {
	client *redis.Client
}

// NewRevocationRepository creates a new Redis-backed RevocationRepository.
func NewRevocationRepository(client *redis.Client) *RedisRevocationRepository {
	return &RedisRevocationRepository{client: client}
}

/*
Revoke permanently records a credential identifier on the denylist.

Description: Writes the key with no TTL. Issued credentials never expire on
their own, so a revocation must never age out either. SET on an existing key
is a no-op overwrite, which gives idempotence for free.

Parameters:
  - context: context.Context
  - credentialID: string

Returns:
  - error: Execution errors
*/
func (repository *RedisRevocationRepository) Revoke(context context.Context, credentialID string) error {
	key := constants.RedisPrefixDenylist + credentialID

	if err := repository.client.Set(context, key, "1", 0).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}

	return nil
}

/*
IsRevoked reports whether a credential identifier is on the denylist.

Parameters:
  - context: context.Context
  - credentialID: string

Returns:
  - bool: true if the credential has been revoked
  - error: Connectivity errors
*/
func (repository *RedisRevocationRepository) IsRevoked(context context.Context, credentialID string) (bool, error) {
	key := constants.RedisPrefixDenylist + credentialID

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}

	return count > 0, nil
}
