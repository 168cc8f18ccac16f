package outbound

import (
	"context"
	"sync/atomic"
)

var defaultClient atomic.Pointer[Client]

// Init replaces the process-wide client used by the package-level
// functions. Calls already in flight keep the client they started with.
func Init(apiKey string, level Level, opts ...Option) {
	opts = append([]Option{WithLogLevel(level)}, opts...)
	defaultClient.Store(New(apiKey, opts...))
}

// Default returns the client installed by [Init], or nil.
func Default() *Client {
	return defaultClient.Load()
}

func Identify(ctx context.Context, userID ID, info UserInfo) Result {
	return Default().Identify(ctx, userID, info)
}

func Alias(ctx context.Context, userID, previousID ID) Result {
	return Default().Alias(ctx, userID, previousID)
}

func Track(ctx context.Context, event Event) Result {
	return Default().Track(ctx, event)
}

func Register(ctx context.Context, platform Platform, userID ID, token string) Result {
	return Default().Register(ctx, platform, userID, token)
}

func Disable(ctx context.Context, platform Platform, userID ID, token string) Result {
	return Default().Disable(ctx, platform, userID, token)
}

func DisableAll(ctx context.Context, platform Platform, userID ID) Result {
	return Default().DisableAll(ctx, platform, userID)
}

func Subscribe(ctx context.Context, userID ID, all bool, campaignIDs []int64) Result {
	return Default().Subscribe(ctx, userID, all, campaignIDs)
}

func Unsubscribe(ctx context.Context, userID ID, all bool, campaignIDs []int64) Result {
	return Default().Unsubscribe(ctx, userID, all, campaignIDs)
}
