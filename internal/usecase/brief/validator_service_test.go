package brief

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/repository"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/database/dbtest"
)

type fakeCompleter struct {
	configured bool
	response   string
	err        error
	calls      int
	lastUser   string
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func (f *fakeCompleter) Complete(_ context.Context, _, user string) (string, error) {
	f.calls++
	f.lastUser = user
	return f.response, f.err
}

type fixture struct {
	svc       *ValidatorService
	repo      repositories.ProjectRepository
	completer *fakeCompleter
	now       time.Time
}

func newFixture(t *testing.T, enabled bool) *fixture {
	t.Helper()
	f := &fixture{
		repo:      repository.NewProjectRepository(dbtest.New(t)),
		completer: &fakeCompleter{configured: true, response: "```json\n{\"completeness_score\": 6}\n```"},
		now:       time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	f.svc = NewValidatorService(f.repo, f.completer, Options{Enabled: enabled, CacheTTL: 72 * time.Hour}, nil)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) seed(t *testing.T, projectID string, requirements *string) {
	t.Helper()
	_, err := f.repo.UpsertBrief(context.Background(), entities.ProjectBrief{ProjectID: projectID, Requirements: requirements}, f.now)
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func codeOf(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestValidate_Preconditions(t *testing.T) {
	ctx := context.Background()

	disabled := newFixture(t, false)
	_, err := disabled.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_VALIDATION_DISABLED, codeOf(t, err))

	unconfigured := newFixture(t, true)
	unconfigured.completer.configured = false
	_, err = unconfigured.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_VALIDATION_NOT_CONFIGURED, codeOf(t, err))

	f := newFixture(t, true)
	_, err = f.svc.Validate(ctx, "missing", false)
	assert.Equal(t, errors.ErrorCode_PROJECT_NOT_FOUND, codeOf(t, err))

	f.seed(t, "empty", nil)
	_, err = f.svc.Validate(ctx, "empty", false)
	assert.Equal(t, errors.ErrorCode_PROJECT_NO_REQUIREMENTS, codeOf(t, err))
	assert.Zero(t, f.completer.calls)
}

func TestValidate_CachesSuccessfulReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))

	res, err := f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 6.0, res.Report["completeness_score"])
	assert.Contains(t, f.completer.lastUser, `"requirements": "Build a CRM"`)
	assert.Contains(t, f.completer.lastUser, "Here is the reference template:")

	f.now = f.now.Add(71 * time.Hour)
	res, err = f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, 1, f.completer.calls)

	res, err = f.svc.Validate(ctx, "P1", true)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 2, f.completer.calls)

	f.now = f.now.Add(73 * time.Hour)
	_, err = f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.Equal(t, 3, f.completer.calls)
}

func TestValidate_ParseFailureNotPersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))
	f.completer.response = "I cannot help with that"

	_, err := f.svc.Validate(ctx, "P1", false)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_VALIDATION_PARSE_FAILED, appErr.Code)
	assert.Equal(t, "I cannot help with that", appErr.Details["raw_response"])

	_, err = f.svc.Validate(ctx, "P1", false)
	require.Error(t, err)
	assert.Equal(t, 2, f.completer.calls)

	p, err := f.repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)
	report, err := p.Report()
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestValidate_ErrorMarkerNotPersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))
	f.completer.response = `{"error": "brief is empty"}`

	_, err := f.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_VALIDATION_UPSTREAM_FAILED, codeOf(t, err))

	p, err := f.repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)
	report, err := p.Report()
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestValidate_QuotaMarkerServedFromCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))
	f.completer.err = fmt.Errorf("%w: 429", entities.ErrQuotaExceeded)

	_, err := f.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_VALIDATION_QUOTA_EXCEEDED, codeOf(t, err))

	res, err := f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.True(t, res.Report.IsQuotaExceeded())
	assert.Equal(t, 1, f.completer.calls)
}

func TestValidate_QuotaKeepsStoredReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))

	_, err := f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	before, err := f.repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	f.completer.err = fmt.Errorf("%w: 429 rate limited", entities.ErrQuotaExceeded)
	_, err = f.svc.Validate(ctx, "P1", true)
	assert.Equal(t, errors.ErrorCode_VALIDATION_QUOTA_EXCEEDED, codeOf(t, err))

	after, err := f.repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, before.LastUpdated.Equal(after.LastUpdated))

	res, err := f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, float64(6), res.Report["completeness_score"])
	assert.Equal(t, 2, f.completer.calls)
}

func TestValidate_QuotaMarkerLeavesLastUpdated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))
	seeded := f.now

	f.now = f.now.Add(2 * time.Hour)
	f.completer.err = fmt.Errorf("%w: 429", entities.ErrQuotaExceeded)
	_, err := f.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_VALIDATION_QUOTA_EXCEEDED, codeOf(t, err))

	p, err := f.repo.FindByProjectID(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, seeded.Equal(p.LastUpdated))

	// The marker ages from its own timestamp
	res, err := f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.True(t, res.Report.IsQuotaExceeded())
	assert.True(t, f.now.Equal(res.ValidatedAt))

	f.now = f.now.Add(72 * time.Hour)
	f.completer.err = nil
	res, err = f.svc.Validate(ctx, "P1", false)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, float64(6), res.Report["completeness_score"])
}

func TestValidate_UpstreamFailureNotPersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, "P1", strPtr("Build a CRM"))
	f.completer.err = entities.ErrUpstream

	_, err := f.svc.Validate(ctx, "P1", false)
	assert.Equal(t, errors.ErrorCode_INTEGRATION_EXTERNAL_API_FAILED, codeOf(t, err))

	_, err = f.svc.Validate(ctx, "P1", false)
	require.Error(t, err)
	assert.Equal(t, 2, f.completer.calls)
}
