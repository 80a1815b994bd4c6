package storage

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"shortspro/internal/types"
	"shortspro/log"
	apperrors "shortspro/pkg/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sessionCache is a process-lifetime fast path in front of the database.
// The database is the source of truth: the process may restart between
// analyze and render, so a cache miss always falls through to disk.
var sessionCache sync.Map

// SaveSession persists one analysis under a fresh session id. Records are
// written once and never updated in place.
func SaveSession(sessionId, sourceUrl string, analysis *types.AnalysisResult) error {
	if DB == nil {
		return apperrors.ErrDBError
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDBError, "Failed to encode analysis", err)
	}

	record := types.SessionRecord{
		SessionId:     sessionId,
		SchemaVersion: types.SessionSchemaVersion,
		SourceUrl:     sourceUrl,
		Payload:       string(payload),
		CreatedAt:     time.Now(),
	}
	if err := DB.Create(&record).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDBError, "Failed to save session", err)
	}

	sessionCache.Store(sessionId, record)
	return nil
}

// GetSession returns the stored record for a session id, consulting the
// in-process cache first. A corrupt or version-mismatched durable record is
// logged and reported as not-found; session loss is recoverable by
// re-running the analysis.
func GetSession(sessionId string) (*types.SessionRecord, *types.AnalysisResult, error) {
	if cached, ok := sessionCache.Load(sessionId); ok {
		record := cached.(types.SessionRecord)
		if analysis, err := decodePayload(&record); err == nil {
			return &record, analysis, nil
		}
		// Fall through to the durable copy when the cached one is unusable.
		sessionCache.Delete(sessionId)
	}

	if DB == nil {
		return nil, nil, apperrors.ErrDBError
	}

	var record types.SessionRecord
	if err := DB.Where("session_id = ?", sessionId).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrSessionNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.CodeDBError, "Failed to read session", err)
	}

	analysis, err := decodePayload(&record)
	if err != nil {
		log.GetLogger().Warn("discarding unreadable session record",
			zap.String("session_id", sessionId), zap.Error(err))
		return nil, nil, apperrors.ErrSessionNotFound
	}

	sessionCache.Store(sessionId, record)
	return &record, analysis, nil
}

func decodePayload(record *types.SessionRecord) (*types.AnalysisResult, error) {
	if record.SchemaVersion != types.SessionSchemaVersion {
		return nil, errors.New("session schema version mismatch")
	}
	var analysis types.AnalysisResult
	if err := json.Unmarshal([]byte(record.Payload), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// DeleteSession removes one record from both tiers.
func DeleteSession(sessionId string) error {
	sessionCache.Delete(sessionId)
	if DB == nil {
		return apperrors.ErrDBError
	}
	return DB.Where("session_id = ?", sessionId).Delete(&types.SessionRecord{}).Error
}

// ExpireSessionsOlderThan removes every durable record older than maxAge and
// evicts the matching cache entries. Idempotent: a second sweep with the same
// cutoff removes nothing.
func ExpireSessionsOlderThan(maxAge time.Duration) (int64, error) {
	if DB == nil {
		return 0, apperrors.ErrDBError
	}

	cutoff := time.Now().Add(-maxAge)
	result := DB.Where("created_at < ?", cutoff).Delete(&types.SessionRecord{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.CodeDBError, "Session expiry sweep failed", result.Error)
	}

	sessionCache.Range(func(key, value any) bool {
		record, ok := value.(types.SessionRecord)
		if ok && record.CreatedAt.Before(cutoff) {
			sessionCache.Delete(key)
		}
		return true
	})

	return result.RowsAffected, nil
}

// ResetSessionCache clears the in-memory tier. Test hook; the durable store
// is unaffected.
func ResetSessionCache() {
	sessionCache.Range(func(key, _ any) bool {
		sessionCache.Delete(key)
		return true
	})
}
