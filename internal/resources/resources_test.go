package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticFinder_NeverFails(t *testing.T) {
	f := NewStaticFinder()

	rs, err := f.FindResources(context.Background(), "Light reactions", "Photosynthesis", "easy")
	require.NoError(t, err)
	require.NotNil(t, rs)
	require.NotEmpty(t, rs.Explanation)
	require.NotEmpty(t, rs.Videos)
	require.NotEmpty(t, rs.Articles)
}

func TestStaticFinder_EscapesQuery(t *testing.T) {
	f := NewStaticFinder()

	rs, err := f.FindResources(context.Background(), "goal & title", "topic?", "easy")
	require.NoError(t, err)
	require.NotContains(t, rs.Videos[0], " ")
	require.NotContains(t, rs.Videos[0], "&t")
}
