package types

import "time"

// SessionSchemaVersion tags the on-disk payload format. Records written by an
// incompatible build are rejected as not-found instead of being misread.
const SessionSchemaVersion = 1

// SessionRecord binds a generated session id to one completed analysis.
// Records are immutable once written; they are deleted by the expiry sweep.
type SessionRecord struct {
	Id            int64     `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	SessionId     string    `json:"session_id" gorm:"column:session_id;uniqueIndex;size:64"`
	SchemaVersion int       `json:"schema_version" gorm:"column:schema_version"`
	SourceUrl     string    `json:"source_url" gorm:"column:source_url"`
	Payload       string    `json:"-" gorm:"column:payload"` // JSON-encoded AnalysisResult
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;index"`
}

func (SessionRecord) TableName() string {
	return "session_records"
}
