// internal/model/answer.go
package model

import "time"

// UserAnswer はユーザーと問題の組ごとの回答記録です。IsCorrect は提出時点のスナップショット。
type UserAnswer struct {
	ID               uint  `gorm:"primaryKey"`
	UserID           uint  `gorm:"not null;uniqueIndex:uq_answer_user_question"`
	QuestionID       uint  `gorm:"not null;uniqueIndex:uq_answer_user_question"`
	SelectedOptionID *uint `gorm:"index"`
	IsCorrect        bool  `gorm:"not null;default:false"`
	CreatedAt        time.Time

	User           *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Question       *Question       `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	SelectedOption *QuestionOption `gorm:"foreignKey:SelectedOptionID;constraint:OnDelete:SET NULL"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

// SubmittedAnswer は提出バッチの1要素です。
type SubmittedAnswer struct {
	QuestionID       uint `json:"question_id" validate:"required,gt=0"`
	SelectedOptionID uint `json:"selected_option_id" validate:"required,gt=0"`
}

// SubmissionResult は採点結果です。
type SubmissionResult struct {
	TotalQuestions  int     `json:"total_questions"`
	CorrectAnswers  int     `json:"correct_answers"`
	ScorePercentage float64 `json:"score_percentage"`
	Completed       bool    `json:"completed"`
}

// AnswerResponse は直近の提出で記録された回答です。選択肢が削除された場合 SelectedOptionID は null。
type AnswerResponse struct {
	ID               uint      `json:"id"`
	QuestionID       uint      `json:"question_id"`
	SelectedOptionID *uint     `json:"selected_option_id"`
	IsCorrect        bool      `json:"is_correct"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewAnswerResponse(a *UserAnswer) AnswerResponse {
	return AnswerResponse{
		ID:               a.ID,
		QuestionID:       a.QuestionID,
		SelectedOptionID: a.SelectedOptionID,
		IsCorrect:        a.IsCorrect,
		CreatedAt:        a.CreatedAt,
	}
}
