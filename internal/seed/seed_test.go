package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyGroupSessionsAreISOTimestamps(t *testing.T) {
	groups := StudyGroups()
	require.NotEmpty(t, groups)

	for _, g := range groups {
		_, err := time.Parse("2006-01-02T15:04:05", g.NextSession)
		assert.NoError(t, err, "group %q", g.Name)
	}
}

func TestSeededDatasetShape(t *testing.T) {
	assert.Len(t, Courses(), 4)
	assert.Len(t, StudyGroups(), 5)

	for _, c := range Courses() {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Category)
		assert.Positive(t, c.ID)
	}
}
