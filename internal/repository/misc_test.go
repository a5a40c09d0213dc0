package repository

import (
	"context"
	"testing"

	"deptsite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	sub := models.Subscription{Mail: strPtr("reader@example.org")}
	require.NoError(t, repo.Save(ctx, &sub))

	// A signup without a mail is still stored.
	empty := models.Subscription{}
	require.NoError(t, repo.Save(ctx, &empty))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Mail)
	assert.Equal(t, "reader@example.org", *got[0].Mail)
	assert.Nil(t, got[1].Mail)
}

func TestFeedbackRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	fb := models.Feedback{Name: strPtr("Visitor"), Feedback: strPtr("Nice site")}
	require.NoError(t, repo.Save(ctx, &fb))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Feedback)
	assert.Equal(t, "Nice site", *got[0].Feedback)
}
