// internal/model/language.go
package model

// Language は学習対象の言語 (参照データ) です。
type Language struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	Code      string `gorm:"type:varchar(10);not null;uniqueIndex" json:"code"` // "es", "fr" など
	FlagEmoji string `gorm:"type:varchar(10)" json:"flag_emoji"`
}

func (Language) TableName() string {
	return "languages"
}
