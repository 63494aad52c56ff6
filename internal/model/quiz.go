// internal/model/quiz.go
package model

import "time"

type QuizLevel string

const (
	LevelBeginner     QuizLevel = "beginner"
	LevelIntermediate QuizLevel = "intermediate"
	LevelExpert       QuizLevel = "expert"
)

// QuizLevels は難易度の順序付き一覧です。
var QuizLevels = []QuizLevel{LevelBeginner, LevelIntermediate, LevelExpert}

func (l QuizLevel) Valid() bool {
	for _, level := range QuizLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Quiz は言語と難易度の組ごとに最大1件存在します。
type Quiz struct {
	ID          uint      `gorm:"primaryKey"`
	LanguageID  uint      `gorm:"not null;uniqueIndex:uq_quiz_language_level"`
	Level       QuizLevel `gorm:"type:varchar(20);not null;uniqueIndex:uq_quiz_language_level"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 関連 (Preload用)
	Language  *Language  `gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE"`
	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizFilter はクイズ一覧の絞り込み条件です。空文字は「指定なし」。
type QuizFilter struct {
	LanguageCode string
	Level        QuizLevel
}

// --- レスポンスDTO ---

type QuizResponse struct {
	ID          uint               `json:"id"`
	Language    *Language          `json:"language,omitempty"`
	Level       QuizLevel          `json:"level"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
}

// QuizSummary は進捗レスポンスに埋め込む、問題を含まないクイズ情報です。
type QuizSummary struct {
	ID       uint      `json:"id"`
	Language *Language `json:"language,omitempty"`
	Level    QuizLevel `json:"level"`
	Title    string    `json:"title"`
}

// NewQuizResponse は正解情報を含まないクイズ表現を作成します。
func NewQuizResponse(q *Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(q.Questions))
	for i := range q.Questions {
		questions = append(questions, NewQuestionResponse(&q.Questions[i]))
	}
	return QuizResponse{
		ID:          q.ID,
		Language:    q.Language,
		Level:       q.Level,
		Title:       q.Title,
		Description: q.Description,
		Questions:   questions,
	}
}

func NewQuizSummary(q *Quiz) *QuizSummary {
	if q == nil {
		return nil
	}
	return &QuizSummary{ID: q.ID, Language: q.Language, Level: q.Level, Title: q.Title}
}
