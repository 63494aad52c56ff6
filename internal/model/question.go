// internal/model/question.go
package model

import "time"

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionSpeech         QuestionType = "speech"
	QuestionTranslation    QuestionType = "translation"
)

// RequiresSingleCorrectOption は採点に選択肢を使う問題タイプかどうかを返します。
func (t QuestionType) RequiresSingleCorrectOption() bool {
	return t == QuestionMultipleChoice || t == QuestionTranslation
}

// Question はクイズに属する1問です。AudioURL は speech 問題の音声 (生成失敗時は nil のまま)。
type Question struct {
	ID            uint         `gorm:"primaryKey"`
	QuizID        uint         `gorm:"not null;index"`
	Text          string       `gorm:"type:varchar(500);not null;default:''"`
	QuestionType  QuestionType `gorm:"type:varchar(20);not null"`
	CorrectAnswer string       `gorm:"type:varchar(500);not null"`
	Position      int          `gorm:"not null;default:0"`
	AudioURL      *string      `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

// NeedsAudio は音声生成が必要か (speech で、まだ参照を持たない) を返します。
func (q *Question) NeedsAudio() bool {
	return q.QuestionType == QuestionSpeech && (q.AudioURL == nil || *q.AudioURL == "")
}

type QuestionOption struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"not null;index"`
	Text       string `gorm:"type:varchar(500);not null"`
	IsCorrect  bool   `gorm:"not null;default:false"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// --- リクエストDTO ---

// OptionRequest の ID は更新時に既存の選択肢を指します。省略すると新しい選択肢になります。
type OptionRequest struct {
	ID        uint   `json:"id,omitempty"`
	Text      string `json:"text" validate:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest は問題の作成・更新用リクエストです。
// 更新で options を省略すると既存の選択肢をそのまま残します。
type QuestionRequest struct {
	Text          string          `json:"text" validate:"required,max=500"`
	QuestionType  QuestionType    `json:"question_type" validate:"required,oneof=multiple_choice speech translation"`
	CorrectAnswer string          `json:"correct_answer" validate:"required,max=500"`
	Position      int             `json:"position" validate:"gte=0"`
	Options       []OptionRequest `json:"options" validate:"dive"`
}

// --- レスポンスDTO ---

// OptionResponse は is_correct を公開しません。
type OptionResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResponse struct {
	ID           uint             `json:"id"`
	Text         string           `json:"text"`
	QuestionType QuestionType     `json:"question_type"`
	Position     int              `json:"position"`
	AudioURL     *string          `json:"audio_url"`
	Options      []OptionResponse `json:"options"`
}

func NewQuestionResponse(q *Question) QuestionResponse {
	options := make([]OptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionResponse{ID: o.ID, Text: o.Text})
	}
	return QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		Position:     q.Position,
		AudioURL:     q.AudioURL,
		Options:      options,
	}
}

// QuestionDetailResponse はコンテンツ管理用で、正解情報を含みます。
type QuestionDetailResponse struct {
	ID            uint                   `json:"id"`
	QuizID        uint                   `json:"quiz_id"`
	Text          string                 `json:"text"`
	QuestionType  QuestionType           `json:"question_type"`
	CorrectAnswer string                 `json:"correct_answer"`
	Position      int                    `json:"position"`
	AudioURL      *string                `json:"audio_url"`
	Options       []OptionDetailResponse `json:"options"`
}

type OptionDetailResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

func NewQuestionDetailResponse(q *Question) QuestionDetailResponse {
	options := make([]OptionDetailResponse, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionDetailResponse{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect})
	}
	return QuestionDetailResponse{
		ID:            q.ID,
		QuizID:        q.QuizID,
		Text:          q.Text,
		QuestionType:  q.QuestionType,
		CorrectAnswer: q.CorrectAnswer,
		Position:      q.Position,
		AudioURL:      q.AudioURL,
		Options:       options,
	}
}
