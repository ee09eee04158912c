package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/ident"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{
		CacheDir:  t.TempDir(),
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	return s
}

func TestSessionCookieRoundtrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.SessionCookie()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveSessionCookie("secret-cookie"))

	cookie, ok, err := s.SessionCookie()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "secret-cookie", cookie)
}

func TestSessionCookieIsTrimmedOnRead(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveSessionCookie("abc123\n"))

	cookie, ok, err := s.SessionCookie()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc123", cookie)
}

func TestDeleteSessionCookieIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.DeleteSessionCookie(), "deleting a missing cookie is fine")

	require.NoError(t, s.SaveSessionCookie("abc"))
	require.NoError(t, s.DeleteSessionCookie())
	require.NoError(t, s.DeleteSessionCookie())

	_, ok, err := s.SessionCookie()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPuzzleInputRoundtrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.ReadPuzzleInput(2021, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SavePuzzleInput(2021, 1, "199\n200\n"))

	input, ok, err := s.ReadPuzzleInput(2021, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "199\n200\n", input)

	// The file name is part of the contract; users may drop files in
	// manually.
	_, err = os.Stat(filepath.Join(s.PuzzleInputsDir(), "y21d01_personal_puzzle_input.txt"))
	assert.NoError(t, err)
}

func TestLeaderboardYears(t *testing.T) {
	s := openTestStore(t)

	years, err := s.LeaderboardYears()
	require.NoError(t, err)
	assert.Nil(t, years, "missing directory means no leaderboards")

	dir := s.LeaderboardDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, dir, "y24_personal_leaderboard_statistics.txt", "table")
	writeFile(t, dir, "y21_personal_leaderboard_statistics.txt", "table")

	years, err = s.LeaderboardYears()
	require.NoError(t, err)
	assert.Equal(t, []ident.Year{2021, 2024}, years)
}

func TestLeaderboardYearsRejectsStrayFiles(t *testing.T) {
	s := openTestStore(t)

	dir := s.LeaderboardDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, dir, "notes.txt", "not a leaderboard")

	_, err := s.LeaderboardYears()
	assert.ErrorContains(t, err, "does not match pattern")
}

func TestReadLeaderboard(t *testing.T) {
	s := openTestStore(t)

	dir := s.LeaderboardDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, dir, "y21_personal_leaderboard_statistics.txt", "the table\n")

	text, err := s.ReadLeaderboard(2021)
	require.NoError(t, err)
	assert.Equal(t, "the table\n", text)

	_, err = s.ReadLeaderboard(2024)
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
