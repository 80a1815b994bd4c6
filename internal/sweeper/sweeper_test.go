package sweeper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shortspro/internal/appdirs"
	"shortspro/internal/storage"
	"shortspro/internal/types"
	"shortspro/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	os.Setenv(appdirs.HomeEnv, filepath.Join(os.TempDir(), "shortspro-sweeper-test"))
	log.InitLogger()
}

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&types.SessionRecord{}))

	original := storage.DB
	storage.DB = db
	storage.ResetSessionCache()
	t.Cleanup(func() {
		storage.DB = original
		storage.ResetSessionCache()
	})
}

func TestNormalizeConfig(t *testing.T) {
	cfg := normalizeConfig(Config{})
	assert.Equal(t, defaultMaxAge, cfg.MaxAge)
	assert.Equal(t, defaultInterval, cfg.Interval)

	cfg = normalizeConfig(Config{MaxAge: time.Hour, Interval: time.Minute})
	assert.Equal(t, time.Hour, cfg.MaxAge)
	assert.Equal(t, time.Minute, cfg.Interval)
}

func TestSweeper_RemovesExpiredSessionsOnStart(t *testing.T) {
	setupTestDB(t)

	result := &types.AnalysisResult{
		Video: types.VideoMetadata{VideoId: "old"},
	}
	require.NoError(t, storage.SaveSession("stale-session", "https://youtu.be/old", result))

	// Backdate the record past the max age.
	err := storage.DB.Model(&types.SessionRecord{}).
		Where("session_id = ?", "stale-session").
		Update("created_at", time.Now().Add(-48*time.Hour)).Error
	require.NoError(t, err)
	storage.ResetSessionCache()

	s := New(Config{MaxAge: 24 * time.Hour, Interval: time.Hour})
	defer s.Close()

	// The startup sweep runs asynchronously.
	assert.Eventually(t, func() bool {
		_, _, err := storage.GetSession("stale-session")
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSweeper_KeepsFreshSessions(t *testing.T) {
	setupTestDB(t)

	result := &types.AnalysisResult{
		Video: types.VideoMetadata{VideoId: "fresh"},
	}
	require.NoError(t, storage.SaveSession("fresh-session", "https://youtu.be/fresh", result))

	s := New(Config{MaxAge: 24 * time.Hour, Interval: time.Hour})
	s.Close()

	_, got, err := storage.GetSession("fresh-session")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Video.VideoId)
}

func TestSweeper_CloseIsIdempotent(t *testing.T) {
	setupTestDB(t)

	s := New(Config{MaxAge: time.Hour, Interval: time.Hour})
	s.Close()
	s.Close()
}
