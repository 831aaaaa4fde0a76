package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, ActorFromContext(ctx))

	ctx = SetUserContext(ctx, 17, "agent@example.com", "Agent")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(17), id)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Agent", role)

	email, _ := GetEmailFromContext(ctx)
	assert.Equal(t, "agent@example.com", email)

	actor := ActorFromContext(ctx)
	if assert.NotNil(t, actor) {
		assert.Equal(t, "17", *actor)
	}
}

func TestLoggerFrom(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	scoped := zap.NewNop().With(zap.String("request_id", "abc"))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, LoggerFrom(ctx, fallback))
}

func TestRequestIDContext(t *testing.T) {
	ctx := SetRequestIDContext(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
}
