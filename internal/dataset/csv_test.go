package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persistorai/degrees/internal/dataset"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

func TestLoadCSV_SmallDataset(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		dataset.PeopleFile: "id,name,birth\n" +
			"102,Kevin Bacon,1958\n" +
			"129,Tom Cruise,1962\n" +
			"163,Dustin Hoffman,1937\n" +
			"1697,Emma Watson,1990\n",
		dataset.MoviesFile: "id,title,year\n" +
			"104257,A Few Good Men,1992\n" +
			"95953,Rain Man,1988\n" +
			"\"112384\",\"Apollo 13\",\"1995\"\n",
		dataset.StarsFile: "person_id,movie_id\n" +
			"102,104257\n" +
			"129,104257\n" +
			"129,95953\n" +
			"163,95953\n" +
			"102,112384\n" +
			"999,104257\n" +
			"102,000000\n",
	})

	s, report, err := dataset.LoadCSV(context.Background(), dir, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, report.People)
	assert.Equal(t, 3, report.Movies)
	assert.Equal(t, 5, report.Credits)
	assert.Equal(t, 2, report.SkippedCredits)
	assert.Equal(t, 2, report.Skipped())
	assert.Equal(t, "csv:"+dir, report.Source)

	p, err := s.Person("1697")
	require.NoError(t, err)
	assert.Equal(t, "Emma Watson", p.Name)
	assert.Empty(t, p.Movies)

	m, err := s.Movie("112384")
	require.NoError(t, err)
	assert.Equal(t, "Apollo 13", m.Title)
	assert.Equal(t, 1995, m.Year)
	assert.Equal(t, []string{"102"}, m.Stars)
}

func TestLoadCSV_OptionalFields(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		dataset.PeopleFile: "id,name,birth\n1,No Birth,\n2,Bad Birth,unknown\n2,Duplicate,1900\n",
		dataset.MoviesFile: "id,title,year\n10,Untitled,\n",
		dataset.StarsFile:  "person_id,movie_id\n1,10\n",
	})

	s, report, err := dataset.LoadCSV(context.Background(), dir, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, report.SkippedPeople)

	p, err := s.Person("1")
	require.NoError(t, err)
	assert.Nil(t, p.Birth)

	p, err = s.Person("2")
	require.NoError(t, err)
	assert.Equal(t, "Bad Birth", p.Name)
	assert.Nil(t, p.Birth)

	m, err := s.Movie("10")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Year)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		dataset.PeopleFile: "id,name,birth\n",
		dataset.MoviesFile: "id,title,year\n",
	})

	_, _, err := dataset.LoadCSV(context.Background(), dir, testLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		dataset.PeopleFile: "id,birth\n1,1900\n",
		dataset.MoviesFile: "id,title,year\n",
		dataset.StarsFile:  "person_id,movie_id\n",
	})

	_, _, err := dataset.LoadCSV(context.Background(), dir, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "name"`)
}

func TestLoadCSV_Cancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		dataset.PeopleFile: "id,name,birth\n1,A,\n",
		dataset.MoviesFile: "id,title,year\n",
		dataset.StarsFile:  "person_id,movie_id\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := dataset.LoadCSV(ctx, dir, testLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
