// internal/config/config.go
//
// Environment-driven configuration. main loads .env files with godotenv
// before calling Load, so values may come from either place.
//
// Environment variables (defaults in parentheses):
//   PORT (5175)                      HTTP port
//   LOG_LEVEL (info)                 zerolog level
//   WORDS_FILE ("")                  JSON word list; empty uses the embedded list
//   WORDS_WATCH (true)               reload WORDS_FILE when it changes
//   WORD_LENGTH (5), MAX_GUESSES (6)
//   PUZZLE_EPOCH (2026-01-01T00:00:00Z)
//   PUZZLE_SLOTS_PER_DAY (3)
//   PUZZLE_SLOT_BOUNDARIES, PUZZLE_SLOT_LABELS (derived from slot count)
//   PUZZLE_TZ (Local)                zone for the slot of day
//   PUZZLE_SALT (brad-fixed-salt-123)
//   DB_PATH (./data/archive.db)      empty keeps the archive in memory
//   CLIENT_ORIGIN, JWT_SECRET, JWT_EXPIRES_HOURS, ADMIN_PASSWORD_HASH,
//   COOKIE_NAME, NODE_ENV

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/slotword/internal/schedule"
	"github.com/robalobadob/slotword/internal/words"
)

// DefaultSalt seeds the shuffle of the reference deployment.
const DefaultSalt = "brad-fixed-salt-123"

// DefaultJWTSecret is the development signing key. Load refuses it in
// production when admin login is enabled.
const DefaultJWTSecret = "dev_secret_change_me"

// Config is the resolved runtime configuration.
type Config struct {
	Port     string
	LogLevel string

	WordsFile  string
	WordsWatch bool
	WordLength int
	MaxGuesses int

	Schedule schedule.Schedule
	Salt     string

	DBPath string

	ClientOrigin      string
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string
	CookieName        string
	Production        bool
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	c := Config{
		Port:              getEnv("PORT", "5175"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		WordsFile:         os.Getenv("WORDS_FILE"),
		Salt:              getEnv("PUZZLE_SALT", DefaultSalt),
		DBPath:            getEnv("DB_PATH", "./data/archive.db"),
		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:         getEnv("JWT_SECRET", DefaultJWTSecret),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CookieName:        getEnv("COOKIE_NAME", "slotword_admin"),
		Production:        os.Getenv("NODE_ENV") == "production",
	}
	if v, ok := os.LookupEnv("DB_PATH"); ok && v == "" {
		c.DBPath = ""
	}

	var err error
	if c.WordsWatch, err = getBool("WORDS_WATCH", true); err != nil {
		return Config{}, err
	}
	if c.WordLength, err = getInt("WORD_LENGTH", words.DefaultLength); err != nil {
		return Config{}, err
	}
	if c.MaxGuesses, err = getInt("MAX_GUESSES", 6); err != nil {
		return Config{}, err
	}
	hours, err := getInt("JWT_EXPIRES_HOURS", 12)
	if err != nil {
		return Config{}, err
	}
	c.JWTExpiry = time.Duration(hours) * time.Hour

	if c.WordLength < 1 {
		return Config{}, fmt.Errorf("config: WORD_LENGTH must be positive, got %d", c.WordLength)
	}
	if c.MaxGuesses < 1 {
		return Config{}, fmt.Errorf("config: MAX_GUESSES must be positive, got %d", c.MaxGuesses)
	}

	if c.Production && c.AdminPasswordHash != "" && c.JWTSecret == DefaultJWTSecret {
		return Config{}, fmt.Errorf("config: JWT_SECRET must be set when NODE_ENV=production and ADMIN_PASSWORD_HASH is set")
	}

	if c.Schedule, err = loadSchedule(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func loadSchedule() (schedule.Schedule, error) {
	epoch := schedule.DefaultEpoch
	if v := os.Getenv("PUZZLE_EPOCH"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("config: PUZZLE_EPOCH: %w", err)
		}
		epoch = t
	}
	slots, err := getInt("PUZZLE_SLOTS_PER_DAY", schedule.DefaultSlotsPerDay)
	if err != nil {
		return schedule.Schedule{}, err
	}
	var boundaries []int
	for _, f := range splitList(os.Getenv("PUZZLE_SLOT_BOUNDARIES")) {
		h, err := strconv.Atoi(f)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("config: PUZZLE_SLOT_BOUNDARIES: %w", err)
		}
		boundaries = append(boundaries, h)
	}
	loc, err := LoadLocation(getEnv("PUZZLE_TZ", "Local"))
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("config: PUZZLE_TZ: %w", err)
	}
	s, err := schedule.New(epoch, slots, boundaries, splitList(os.Getenv("PUZZLE_SLOT_LABELS")), loc)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// LoadLocation resolves an IANA zone name; "" and "Local" mean the
// machine's local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, f := range strings.Split(v, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
