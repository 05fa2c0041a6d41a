package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/database/dbtest"
)

func strPtr(s string) *string { return &s }

func TestProjectRepository_UpsertBrief(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(dbtest.New(t))

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p, err := repo.UpsertBrief(ctx, entities.ProjectBrief{
		ProjectID:    "P1",
		Requirements: strPtr("build it"),
		Questions:    strPtr("when?"),
	}, first)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "build it", *p.Requirements)
	assert.True(t, p.LastUpdated.Equal(first))

	second := first.Add(2 * time.Hour)
	p, err = repo.UpsertBrief(ctx, entities.ProjectBrief{
		ProjectID:    "P1",
		Requirements: strPtr("build it faster"),
	}, second)
	require.NoError(t, err)
	assert.Equal(t, "build it faster", *p.Requirements)
	assert.Nil(t, p.Questions)
	assert.True(t, p.LastUpdated.Equal(second))
	assert.True(t, p.CreatedAt.Equal(first))
}

func TestProjectRepository_SaveReportKeptAcrossUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(dbtest.New(t))
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	p, err := repo.UpsertBrief(ctx, entities.ProjectBrief{ProjectID: "P1", Requirements: strPtr("r")}, now)
	require.NoError(t, err)

	require.NoError(t, p.SetReport(entities.ValidationReport{"score": 8.0}, now.Add(time.Minute)))
	require.NoError(t, repo.SaveReport(ctx, p))

	p, err = repo.UpsertBrief(ctx, entities.ProjectBrief{ProjectID: "P1", Requirements: strPtr("r2")}, now.Add(time.Hour))
	require.NoError(t, err)

	report, err := p.Report()
	require.NoError(t, err)
	assert.Equal(t, 8.0, report["score"])
}

func TestProjectRepository_EnsureExists(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(dbtest.New(t))
	now := time.Now().UTC()

	created, err := repo.EnsureExists(ctx, "P1", now)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.EnsureExists(ctx, "P1", now)
	require.NoError(t, err)
	assert.False(t, created)

	p, err := repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.IsFresh(now, time.Hour))
	assert.Nil(t, p.Requirements)
}

func TestProjectRepository_FindMissing(t *testing.T) {
	repo := NewProjectRepository(dbtest.New(t))
	p, err := repo.FindByProjectID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}
