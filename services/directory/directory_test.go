package directory

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"

	mentorRepo "skillbridge/database/repository/mentor"
	"skillbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func seeded(t *testing.T) (*Directory, *mentorRepo.MemoryMentorRepo) {
	t.Helper()
	repo := mentorRepo.NewMemoryMentorRepo()
	_, err := mentorRepo.Seed(context.Background(), repo, mentorRepo.DefaultMentors())
	require.NoError(t, err)
	return NewDirectory(repo, zap.NewNop()), repo
}

func names(seq iter.Seq[models.Mentor]) []string {
	var out []string
	for m := range seq {
		out = append(out, m.Name)
	}
	return out
}

func TestSearchByName(t *testing.T) {
	d, _ := seeded(t)
	assert.Equal(t, []string{"Priya Sharma"}, names(d.Search(context.Background(), "priya", "all")))
	assert.Equal(t, []string{"Priya Sharma"}, names(d.Search(context.Background(), "PRIYA", "")))
}

func TestSearchByTitleAndCompany(t *testing.T) {
	d, _ := seeded(t)
	assert.Equal(t, []string{"Arjun Verma"}, names(d.Search(context.Background(), "google", "all")))
	assert.Equal(t, []string{"Rakesh Kumar"}, names(d.Search(context.Background(), "devops", "all")))
}

func TestSearchBySkill(t *testing.T) {
	d, _ := seeded(t)
	assert.Equal(t, []string{"Priya Sharma"}, names(d.Search(context.Background(), "", "react")))
	assert.Equal(t, []string{"Priya Sharma", "Rakesh Kumar"}, names(d.Search(context.Background(), "", "aws")))
	assert.Equal(t, []string{"Priya Sharma", "Arjun Verma"}, names(d.Search(context.Background(), "", "Python")))
}

func TestSearchAllKeepsInsertionOrder(t *testing.T) {
	d, _ := seeded(t)
	assert.Equal(t,
		[]string{"Priya Sharma", "Arjun Verma", "Sneha Patel", "Rakesh Kumar"},
		names(d.Search(context.Background(), "", "ALL")))
}

func TestSearchNoMatchIsEmpty(t *testing.T) {
	d, _ := seeded(t)
	assert.Empty(t, names(d.Search(context.Background(), "priya", "kubernetes")))
}

func TestSearchIsLazyAndRestartable(t *testing.T) {
	d, repo := seeded(t)
	seq := d.Search(context.Background(), "", "all")

	first := slices.Collect(seq)
	require.Len(t, first, 4)

	require.NoError(t, repo.Insert(context.Background(), &models.Mentor{
		Name: "Kavya Rao", Title: "Data Engineer", Company: "Swiggy",
		Skills: []string{"Spark"}, HourlyRate: 150000,
	}))
	second := slices.Collect(seq)
	assert.Len(t, second, 5)
	assert.Equal(t, "Kavya Rao", second[4].Name)

	// Stopping early must not panic or yield more.
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

type failingRepo struct{ mentorRepo.MentorRepository }

func (failingRepo) List(context.Context) ([]models.Mentor, error) {
	return nil, errors.New("connection reset")
}

func TestSearchLogsRepositoryFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDirectory(failingRepo{}, zap.New(core))

	assert.Empty(t, names(d.Search(context.Background(), "x", "all")))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Directory search failed", logs.All()[0].Message)
}

func TestMatches(t *testing.T) {
	m := models.Mentor{Name: "Sneha Patel", Title: "Product Manager", Company: "Zomato", Skills: []string{"User Research"}}
	assert.True(t, Matches(m, "zom", "research"))
	assert.False(t, Matches(m, "zom", "react"))
	assert.True(t, Matches(m, "", ""))
}
