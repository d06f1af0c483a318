package util

// DateFormat 每日一词按自然日归档时用的日期格式
const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// CorrectOptionFallback 题目正确字母缺失或不合法时的回退值
const CorrectOptionFallback = "A"

// 发音音频上传相关常量
const (
	MimeAudio       = "audio/"
	MimeOctetStream = "application/octet-stream"
)

var AllowedAudioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a"}
