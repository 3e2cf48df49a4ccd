package storage

import "time"

// ReviewSessionModel is the GORM model for the qc_sessions table
type ReviewSessionModel struct {
	CreatedAt    time.Time  `gorm:"column:created_at"`
	FolderPath   string     `gorm:"column:folder_path;not null"`
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	QCName       string     `gorm:"column:qc_name;not null;index:idx_sessions_qc_name"`
	SessionEnd   *time.Time `gorm:"column:session_end;default:null"`
	SessionStart time.Time  `gorm:"column:session_start;not null"`
}

// TableName specifies the table name for GORM
func (ReviewSessionModel) TableName() string { return "qc_sessions" }

// QCRecordModel is the GORM model for the qc_records table. Rows are only
// ever inserted.
type QCRecordModel struct {
	CreatedAt           time.Time  `gorm:"column:created_at"`
	CustomFieldsJSON    *string    `gorm:"column:custom_fields_json;default:null"`
	Filename            string     `gorm:"column:filename;not null"`
	ID                  int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ImageEndTime        *time.Time `gorm:"column:image_end_time;default:null"`
	ImageStartTime      *time.Time `gorm:"column:image_start_time;default:null"`
	Namespace           string     `gorm:"column:namespace"`
	NextAction          string     `gorm:"column:next_action"`
	NextActionComment   string     `gorm:"column:next_action_comment"`
	QCDate              string     `gorm:"column:qc_date;index:idx_records_qc_date"`
	QCDecision          string     `gorm:"column:qc_decision"`
	QCName              string     `gorm:"column:qc_name;index:idx_records_qc_name"`
	QCObservations      string     `gorm:"column:qc_observations"`
	ReceivedDate        string     `gorm:"column:received_date"`
	RetouchObservations string     `gorm:"column:retouch_observations"`
	RetouchQuality      string     `gorm:"column:retouch_quality"`
	SessionID           int64      `gorm:"column:session_id;not null;index:idx_records_session"`
	TimeSpentSeconds    *float64   `gorm:"column:time_spent_seconds;default:null"`
	WeekNumber          string     `gorm:"column:week_number"`
}

// TableName specifies the table name for GORM
func (QCRecordModel) TableName() string { return "qc_records" }

// AppSettingModel is the GORM model for the app_settings key/value table
type AppSettingModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	Value     string    `gorm:"column:value;not null"`
}

// TableName specifies the table name for GORM
func (AppSettingModel) TableName() string { return "app_settings" }
