// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "LingoQuiz"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8000"
	DefaultDatabaseDriver  = "postgres"
	DefaultLogLevel        = "info"
	DefaultAccessTokenTTL  = 60 * time.Minute
	DefaultRefreshTokenTTL = 24 * time.Hour
	DefaultAudioProvider   = "none"
	DefaultAudioStore      = "local"
	DefaultAudioDir        = "media/audio"
	DefaultAudioBaseURL    = "/media/audio/"
	DefaultAudioTimeout    = 15 * time.Second
)
