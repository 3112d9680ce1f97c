package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "netwiz-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testSubmission(id string, at time.Time) *domain.NetlistSubmission {
	return &domain.NetlistSubmission{
		ID:      id,
		RawText: `{"components": [], "nets": []}`,
		Netlist: &domain.Netlist{
			Components: []domain.Component{},
			Nets:       []domain.Net{},
		},
		Filename:    "board.json",
		SubmittedAt: at,
		Result: &domain.ValidationResult{
			IsValid:             true,
			Errors:              []domain.ValidationError{},
			Warnings:            []domain.ValidationError{},
			ValidationTimestamp: at,
		},
	}
}

func TestStoreCreatesDatabaseFile(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "netwiz.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestSubmissionSaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	saved := testSubmission("sub-1", at)
	saved.Result.IsValid = false
	saved.Result.Errors = []domain.ValidationError{{
		ErrorType: domain.TypeMissingGround,
		Message:   "No ground nets found",
		Severity:  domain.SeverityError,
	}}

	require.NoError(t, subs.Save(ctx, saved))

	got, err := subs.Get(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.RawText, got.RawText)
	assert.Equal(t, "board.json", got.Filename)
	assert.True(t, got.SubmittedAt.Equal(at))
	require.NotNil(t, got.Netlist)
	require.NotNil(t, got.Result)
	assert.False(t, got.Result.IsValid)
	require.Len(t, got.Result.Errors, 1)
	assert.Equal(t, "missing_ground", got.Result.Errors[0].ErrorType.Name)
}

func TestSubmissionSaveUpserts(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	first := testSubmission("sub-1", at)
	require.NoError(t, subs.Save(ctx, first))

	second := testSubmission("sub-1", at.Add(time.Minute))
	second.RawText = `{"components": [{"name": "R1", "type": "RESISTOR"}], "nets": []}`
	require.NoError(t, subs.Save(ctx, second))

	got, err := subs.Get(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, second.RawText, got.RawText)

	all, err := subs.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmissionSaveRejectsMissingID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()

	err := subs.Save(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = subs.Save(ctx, &domain.NetlistSubmission{RawText: "{}"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmissionSaveNilNetlist(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()

	// Unparseable text never produces a netlist; the run is still
	// worth recording.
	sub := testSubmission("sub-broken", time.Now().UTC())
	sub.RawText = `{"components": [`
	sub.Netlist = nil
	require.NoError(t, subs.Save(ctx, sub))

	got, err := subs.Get(ctx, "sub-broken")
	require.NoError(t, err)
	assert.Nil(t, got.Netlist)
	assert.Equal(t, sub.RawText, got.RawText)
}

func TestSubmissionGetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.SubmissionStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmissionListNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		sub := testSubmission(fmt.Sprintf("sub-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, subs.Save(ctx, sub))
	}

	all, err := subs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "sub-4", all[0].ID)
	assert.Equal(t, "sub-0", all[4].ID)

	limited, err := subs.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "sub-4", limited[0].ID)
	assert.Equal(t, "sub-3", limited[1].ID)
}

func TestSubmissionDelete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	subs := store.SubmissionStore()
	ctx := context.Background()

	require.NoError(t, subs.Save(ctx, testSubmission("sub-1", time.Now().UTC())))
	require.NoError(t, subs.Delete(ctx, "sub-1"))

	_, err := subs.Get(ctx, "sub-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, subs.Delete(ctx, "sub-1"))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "netwiz-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening reruns migrate against the same file.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
