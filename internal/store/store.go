// Package store owns all persisted state: the session cookie in the
// user config directory, cached personal puzzle inputs in the user
// cache directory, and personal leaderboard files in the user data
// directory. File names are fixed so users can also place the files
// manually.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"aoc/internal/ident"
)

const (
	appSubdir         = "advent_of_code"
	inputsSubdir      = "personal_puzzle_inputs"
	leaderboardSubdir = "personal_leaderboard_statistics"

	cookieFile = "session.cookie"
)

var leaderboardFilePattern = regexp.MustCompile(`^y(\d{2})_personal_leaderboard_statistics\.txt$`)

// Options overrides the default user directories. Tests point all three
// at temporary directories.
type Options struct {
	CacheDir  string
	ConfigDir string
	DataDir   string
}

// Store resolves and accesses the tool's on-disk state.
type Store struct {
	cacheDir  string // holds personal_puzzle_inputs/
	configDir string // holds session.cookie
	dataDir   string // holds personal_leaderboard_statistics/
}

// Open resolves the user directories (honoring overrides) and creates
// the cache and config directories if missing. The data directory is
// only read, never created: leaderboard files are placed there manually.
func Open(opts Options) (*Store, error) {
	cacheDir := opts.CacheDir
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine cache directory: %w", err)
		}
		cacheDir = filepath.Join(base, appSubdir)
	}

	configDir := opts.ConfigDir
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		configDir = filepath.Join(base, appSubdir)
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to determine data directory: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		}
		dataDir = filepath.Join(base, appSubdir)
	}

	s := &Store{cacheDir: cacheDir, configDir: configDir, dataDir: dataDir}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory %q: %w", s.configDir, err)
	}
	if err := os.MkdirAll(s.PuzzleInputsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create puzzle inputs directory: %w", err)
	}

	return s, nil
}

// ---- Session cookie ----

func (s *Store) cookiePath() string { return filepath.Join(s.configDir, cookieFile) }

// SessionCookie reads the stored session cookie. The second return
// value is false when no cookie is stored.
func (s *Store) SessionCookie() (string, bool, error) {
	b, err := os.ReadFile(s.cookiePath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session cookie: %w", err)
	}
	return strings.TrimSpace(string(b)), true, nil
}

func (s *Store) SaveSessionCookie(cookie string) error {
	if err := os.WriteFile(s.cookiePath(), []byte(cookie), 0o600); err != nil {
		return fmt.Errorf("failed to save session cookie: %w", err)
	}
	return nil
}

// DeleteSessionCookie removes the cookie; deleting a missing cookie is
// not an error.
func (s *Store) DeleteSessionCookie() error {
	err := os.Remove(s.cookiePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete session cookie: %w", err)
	}
	return nil
}

// ---- Puzzle inputs ----

// PuzzleInputsDir is where cached personal puzzle inputs live.
func (s *Store) PuzzleInputsDir() string {
	return filepath.Join(s.cacheDir, inputsSubdir)
}

func (s *Store) puzzleInputPath(y ident.Year, d ident.Day) string {
	yd := ident.YearDay{Year: y, Day: d}
	return filepath.Join(s.PuzzleInputsDir(), yd.String()+"_personal_puzzle_input.txt")
}

// ReadPuzzleInput returns the cached input for a day, if present.
func (s *Store) ReadPuzzleInput(y ident.Year, d ident.Day) (string, bool, error) {
	b, err := os.ReadFile(s.puzzleInputPath(y, d))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read puzzle input: %w", err)
	}
	return string(b), true, nil
}

func (s *Store) SavePuzzleInput(y ident.Year, d ident.Day, input string) error {
	if err := os.WriteFile(s.puzzleInputPath(y, d), []byte(input), 0o644); err != nil {
		return fmt.Errorf("failed to save puzzle input: %w", err)
	}
	return nil
}

// ---- Leaderboards ----

// LeaderboardDir is where manually saved leaderboard files live.
func (s *Store) LeaderboardDir() string {
	return filepath.Join(s.dataDir, leaderboardSubdir)
}

func (s *Store) leaderboardPath(y ident.Year) string {
	return filepath.Join(s.LeaderboardDir(), y.String()+"_personal_leaderboard_statistics.txt")
}

// LeaderboardYears lists the years with a leaderboard file, ascending.
// Files not matching the fixed naming scheme fail the listing rather
// than being skipped silently.
func (s *Store) LeaderboardYears() ([]ident.Year, error) {
	dir := s.LeaderboardDir()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboards from %q: %w", dir, err)
	}

	var years []ident.Year
	for _, e := range entries {
		name := e.Name()
		m := leaderboardFilePattern.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf(
				"file %q does not match pattern 'yYY_personal_leaderboard_statistics.txt'", name)
		}
		yy, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse file name %q: %w", name, err)
		}
		y, err := ident.NewYear(2000 + yy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file name %q: %w", name, err)
		}
		years = append(years, y)
	}

	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years, nil
}

// ReadLeaderboard returns the raw leaderboard text for a year.
func (s *Store) ReadLeaderboard(y ident.Year) (string, error) {
	path := s.leaderboardPath(y)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read leaderboard %q: %w", path, err)
	}
	return string(b), nil
}
