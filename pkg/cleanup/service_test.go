package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/config"
	"github.com/inquira/inquira/pkg/database"
	"github.com/inquira/inquira/pkg/models"
	"github.com/inquira/inquira/pkg/services"
	testdb "github.com/inquira/inquira/test/database"
)

type noQuestionsPlanner struct{}

func (noQuestionsPlanner) Plan(ctx context.Context, prompt string) []models.RefinementQuestion {
	return nil
}

func setupSessionService(t *testing.T) (*database.Client, *services.SessionService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewSessionService(client.Client, noQuestionsPlanner{})
}

func startSession(t *testing.T, svc *services.SessionService) string {
	t.Helper()
	session, err := svc.StartResearch(context.Background(), models.StartResearchInput{
		UserID:    "alice",
		UserEmail: "alice@example.com",
		Prompt:    "retention test",
	})
	require.NoError(t, err)
	return session.ID
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 30,
		CleanupInterval:      1 * time.Hour,
	}
}

func TestService_PurgesOldTerminalSessions(t *testing.T) {
	client, sessionService := setupSessionService(t)
	ctx := context.Background()

	id := startSession(t, sessionService)
	require.NoError(t, sessionService.MarkFailed(ctx, id, "boom"))

	err := client.ResearchSession.UpdateOneID(id).
		SetUpdatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService)
	svc.purgeOldSessions(ctx)

	_, err = sessionService.GetSessionByID(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentTerminalSessions(t *testing.T) {
	_, sessionService := setupSessionService(t)
	ctx := context.Background()

	id := startSession(t, sessionService)
	require.NoError(t, sessionService.MarkFailed(ctx, id, "boom"))

	svc := NewService(retentionConfig(), sessionService)
	svc.purgeOldSessions(ctx)

	got, err := sessionService.GetSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusFailed, got.Status)
}

func TestService_PreservesOldActiveSessions(t *testing.T) {
	client, sessionService := setupSessionService(t)
	ctx := context.Background()

	// Still processing: age alone must not delete it.
	id := startSession(t, sessionService)
	err := client.ResearchSession.UpdateOneID(id).
		SetUpdatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService)
	svc.purgeOldSessions(ctx)

	got, err := sessionService.GetSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusProcessing, got.Status)
}
