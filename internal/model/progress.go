// internal/model/progress.go
package model

import "time"

// UserProgress はユーザーとクイズの組ごとの受験状況です。
//
// 状態: 未開始 (行なし) -> 受験中 (Completed=false) -> 完了 (Completed=true)。
// 完了 -> 受験中 は start (再受験) でのみ、受験中 -> 完了 は submit でのみ遷移します。
type UserProgress struct {
	ID            uint    `gorm:"primaryKey"`
	UserID        uint    `gorm:"not null;uniqueIndex:uq_progress_user_quiz"`
	QuizID        uint    `gorm:"not null;uniqueIndex:uq_progress_user_quiz"`
	Score         float64 `gorm:"not null;default:0"`
	Completed     bool    `gorm:"not null;default:false"`
	LastAttempted time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Quiz *Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

type ProgressResponse struct {
	ID            uint         `json:"id"`
	Quiz          *QuizSummary `json:"quiz,omitempty"`
	QuizID        uint         `json:"quiz_id"`
	Score         float64      `json:"score"`
	Completed     bool         `json:"completed"`
	LastAttempted time.Time    `json:"last_attempted"`
}

func NewProgressResponse(p *UserProgress) ProgressResponse {
	return ProgressResponse{
		ID:            p.ID,
		Quiz:          NewQuizSummary(p.Quiz),
		QuizID:        p.QuizID,
		Score:         p.Score,
		Completed:     p.Completed,
		LastAttempted: p.LastAttempted,
	}
}
