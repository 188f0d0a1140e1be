package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	ShareViewKeyPrefix = "brain:%s"
)

const (
	UserTTL      = 5 * time.Minute
	ShareViewTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// ShareViewKey caches the public read-only snapshot served for a share hash.
func ShareViewKey(hash string) string {
	return fmt.Sprintf(ShareViewKeyPrefix, hash)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateShareView(ctx context.Context, hash string) {
	Invalidate(ctx, ShareViewKey(hash))
}
