package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 列表接口返回条数
const (
	AssessmentHistoryLimit = 10
	JournalHistoryLimit    = 30
	ChatHistoryLimit       = 20
	LeaderboardSize        = 10
)

// 经验值奖励
const (
	XPAssessment = 10
	XPJournal    = 5
)

const MimeJSON = "application/json"
