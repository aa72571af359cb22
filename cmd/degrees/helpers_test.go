package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()

	orig := struct {
		url, source, data, sqlite, dbURL, fmt, level string
		depth                                        int
	}{flagURL, flagSource, flagData, flagSQLite, flagDatabaseURL, flagFmt, flagLogLevel, flagMaxDepth}

	t.Cleanup(func() {
		flagURL = orig.url
		flagSource = orig.source
		flagData = orig.data
		flagSQLite = orig.sqlite
		flagDatabaseURL = orig.dbURL
		flagFmt = orig.fmt
		flagLogLevel = orig.level
		flagMaxDepth = orig.depth
	})
}

// unsetEnv temporarily unsets an environment variable and restores it on cleanup.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	prev, exists := os.LookupEnv(key)
	os.Unsetenv(key)

	t.Cleanup(func() {
		if exists {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

// isolate clears every DEGREES_* variable and points HOME at an empty dir.
func isolate(t *testing.T) string {
	t.Helper()
	resetFlags(t)

	for _, key := range []string{"DEGREES_URL", "DEGREES_SOURCE", "DEGREES_DATA", "DEGREES_SQLITE", "DEGREES_DATABASE_URL"} {
		unsetEnv(t, key)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	return home
}

// run executes a fresh root command and returns what it wrote to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut strings.Builder

	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	_, err := root.ExecuteC()

	return out.String(), errOut.String(), err
}

// writeDataset writes a small CSV dataset and returns its directory.
//
// Tom Cruise and Kevin Bacon share A Few Good Men, Kevin Bacon and Tom Hanks
// share Apollo 13, and Tom Hanks shares Captain Film with Chris Evans (200).
// The other Chris Evans (201) has no co-stars and Lonely Extra has no movies.
func writeDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"people.csv": "id,name,birth\n" +
			"102,Kevin Bacon,1958\n" +
			"129,Tom Cruise,1962\n" +
			"158,Tom Hanks,1956\n" +
			"193,Demi Moore,1962\n" +
			"200,Chris Evans,1981\n" +
			"201,Chris Evans,1966\n" +
			"300,Lonely Extra,\n",
		"movies.csv": "id,title,year\n" +
			"104257,A Few Good Men,1992\n" +
			"112384,Apollo 13,1995\n" +
			"900,Captain Film,2011\n" +
			"901,Other Film,1999\n",
		"stars.csv": "person_id,movie_id\n" +
			"102,104257\n" +
			"129,104257\n" +
			"193,104257\n" +
			"102,112384\n" +
			"158,112384\n" +
			"158,900\n" +
			"200,900\n" +
			"201,901\n",
	}

	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	return dir
}
