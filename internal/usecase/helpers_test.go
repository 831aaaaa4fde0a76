package usecase

import (
	"context"
	"testing"
	"time"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository/mocks"
	"book-my-property/pkg/token"
	"book-my-property/pkg/utils"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestTokens(t *testing.T) *token.Manager {
	t.Helper()
	m, err := token.NewManager(token.Config{
		Secret:   "test-secret",
		Issuer:   "BookMyPropertyAPI",
		Audience: "BookMyPropertyClient",
		TTL:      time.Hour,
	}, token.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return m
}

func asUser(userID int64, role string) context.Context {
	return utils.SetUserContext(context.Background(), userID, "user@example.com", role)
}

// expectCommit stubs a transaction that commits.
func expectCommit(uow *mocks.MockUnitOfWork) {
	uow.On("BeginTransaction", mockCtx).Return(nil).Once()
	uow.On("Commit", mockCtx).Return(nil).Once()
}

func ownedProperty(id, agentID int64) *entity.Property {
	return &entity.Property{
		Base:    entity.Base{ID: id},
		Title:   "Sea View Villa",
		Status:  entity.PropertyStatusAvailable,
		AgentID: agentID,
	}
}
