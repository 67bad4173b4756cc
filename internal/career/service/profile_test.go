package service

import (
	"testing"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
	"github.com/stretchr/testify/require"
)

func TestProfileDefaultsToEmptyDetails(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	profile := &ProfileService{Store: st}
	ctx := t.Context()

	id, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	details, err := profile.LoadDetails(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.AcademicDetails{}, details)
}

func TestProfileRoundTripsDetails(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	profile := &ProfileService{Store: st}
	ctx := t.Context()

	id, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	want := domain.AcademicDetails{
		Grade10:    "92%",
		Grade12:    "88%",
		Graduation: "B.Sc Computer Science",
	}
	require.NoError(t, profile.SaveDetails(ctx, id, want))

	got, err := profile.LoadDetails(ctx, id)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestProfileSaveOverwritesWholesale(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	profile := &ProfileService{Store: st}
	ctx := t.Context()

	id, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	first := domain.AcademicDetails{Grade10: "92%", Grade12: "88%", Graduation: "B.Sc"}
	require.NoError(t, profile.SaveDetails(ctx, id, first))

	// A later save with only one field replaces the record, it does not merge.
	second := domain.AcademicDetails{Graduation: "M.Sc"}
	require.NoError(t, profile.SaveDetails(ctx, id, second))

	got, err := profile.LoadDetails(ctx, id)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestProfileSaveUnknownUser(t *testing.T) {
	st := newTestStore(t)
	profile := &ProfileService{Store: st}

	err := profile.SaveDetails(t.Context(), 9999, domain.AcademicDetails{Grade10: "90%"})
	require.Error(t, err)
}
