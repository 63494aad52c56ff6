// internal/audio/audio.go
package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lingo_quiz/internal/middleware"

	"github.com/google/uuid"
)

var (
	ErrDisabled  = errors.New("audio generation is disabled")
	ErrEmptyText = errors.New("text is empty")
)

// Result は音声生成の結果です。成功時は URL、失敗時は Err を持ちます。
type Result struct {
	URL string
	Err error
}

func (r Result) OK() bool {
	return r.Err == nil && r.URL != ""
}

// Service は問題文の読み上げ音声を生成・削除します。
// 失敗は呼び出し元へ error として返さず、Result / bool で表現します。
type Service interface {
	Generate(ctx context.Context, text, languageCode string) Result
	// Delete は冪等です。空の参照や既に存在しない参照でも true を返します。
	Delete(ctx context.Context, reference string) bool
}

// Synthesizer はテキストを MP3 に変換する TTS プロバイダです。
type Synthesizer interface {
	Synthesize(ctx context.Context, text, locale string) ([]byte, error)
}

// Store は生成した音声の保存先です。Delete は対象が無くても nil を返すこと。
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, reference string) error
}

type service struct {
	synth   Synthesizer
	store   Store
	timeout time.Duration
}

// NewService は synth が nil の場合、常に ErrDisabled を返す Service を生成します。
func NewService(synth Synthesizer, store Store, timeout time.Duration) Service {
	return &service{synth: synth, store: store, timeout: timeout}
}

func (s *service) Generate(ctx context.Context, text, languageCode string) Result {
	logger := middleware.GetLogger(ctx).With("language", languageCode)

	if s.synth == nil || s.store == nil {
		logger.Debug("Audio generation skipped: provider disabled")
		return Result{Err: ErrDisabled}
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("Audio generation skipped: empty text")
		return Result{Err: ErrEmptyText}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	locale := LocaleFor(languageCode)
	data, err := s.synth.Synthesize(ctx, text, locale)
	if err != nil {
		logger.Error("Audio synthesis failed", "error", err, "locale", locale)
		return Result{Err: fmt.Errorf("synthesize: %w", err)}
	}
	if len(data) == 0 {
		logger.Error("Audio synthesis returned no content", "locale", locale)
		return Result{Err: errors.New("synthesize: empty audio content")}
	}

	name := uuid.NewString() + ".mp3"
	url, err := s.store.Put(ctx, name, data)
	if err != nil {
		logger.Error("Failed to store audio", "error", err, "name", name)
		return Result{Err: fmt.Errorf("store: %w", err)}
	}

	logger.Info("Audio generated", "url", url, "bytes", len(data))
	return Result{URL: url}
}

func (s *service) Delete(ctx context.Context, reference string) bool {
	logger := middleware.GetLogger(ctx)
	if reference == "" {
		return true
	}
	if s.store == nil {
		logger.Warn("Audio delete skipped: no store configured", "reference", reference)
		return false
	}
	if err := s.store.Delete(ctx, reference); err != nil {
		logger.Error("Failed to delete audio", "error", err, "reference", reference)
		return false
	}
	logger.Info("Audio deleted", "reference", reference)
	return true
}

// LocaleFor は言語コードを TTS のロケールに変換します。未知のコードは en-US。
func LocaleFor(languageCode string) string {
	switch strings.ToLower(languageCode) {
	case "es":
		return "es-ES"
	case "fr":
		return "fr-FR"
	case "de":
		return "de-DE"
	case "it":
		return "it-IT"
	default:
		return "en-US"
	}
}
