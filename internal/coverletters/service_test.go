package coverletters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoverLetterUpsertKeepsOneRow(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()

	_, found, err := svc.Fetch(ctx, 1)
	require.NoError(t, err)
	require.False(t, found)

	var first Letter
	require.NoError(t, json.Unmarshal([]byte(`{
		"personalInfo": {"name": "Ada", "email": "ada@x.io"},
		"jobInfo": {"company": "Acme", "position": "Engineer"},
		"content": {"introduction": "Hello"},
		"unknownKey": {"ignored": true}
	}`), &first))
	require.NoError(t, svc.Save(ctx, 1, first))

	first.JobInfo.Company = "Beta"
	require.NoError(t, svc.Save(ctx, 1, first))

	got, found, err := svc.Fetch(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, got)
	require.Len(t, repo.byOwner, 1)

	_, found, err = svc.Fetch(ctx, 2)
	require.NoError(t, err)
	require.False(t, found)
}
