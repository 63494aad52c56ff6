package audio_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	calls   int
	locales []string
	err     error
}

func (f *fakeSynth) Synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	f.calls++
	f.locales = append(f.locales, locale)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ID3-fake-mp3:" + text), nil
}

func newLocal(t *testing.T) *audio.LocalStore {
	t.Helper()
	store, err := audio.NewLocalStore(t.TempDir(), "/media/audio")
	require.NoError(t, err)
	return store
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 音声を保存してURLを返す", func(t *testing.T) {
		store := newLocal(t)
		synth := &fakeSynth{}
		svc := audio.NewService(synth, store, time.Second)

		res := svc.Generate(ctx, "Hola, ¿cómo estás?", "es")

		require.True(t, res.OK(), "unexpected error: %v", res.Err)
		assert.True(t, strings.HasPrefix(res.URL, "/media/audio/"))
		assert.True(t, strings.HasSuffix(res.URL, ".mp3"))
		assert.Equal(t, []string{"es-ES"}, synth.locales)

		data, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(res.URL)))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Hola")
	})

	t.Run("異常系: プロバイダ失敗は Result.Err で返る", func(t *testing.T) {
		svc := audio.NewService(&fakeSynth{err: errors.New("quota exceeded")}, newLocal(t), time.Second)

		res := svc.Generate(ctx, "Bonjour", "fr")

		assert.False(t, res.OK())
		assert.Empty(t, res.URL)
		assert.ErrorContains(t, res.Err, "quota exceeded")
	})

	t.Run("異常系: 空テキストは合成しない", func(t *testing.T) {
		synth := &fakeSynth{}
		svc := audio.NewService(synth, newLocal(t), time.Second)

		res := svc.Generate(ctx, "   ", "de")

		assert.ErrorIs(t, res.Err, audio.ErrEmptyText)
		assert.Equal(t, 0, synth.calls)
	})

	t.Run("無効化: プロバイダ未設定なら ErrDisabled", func(t *testing.T) {
		svc := audio.NewService(nil, newLocal(t), time.Second)

		res := svc.Generate(ctx, "Ciao", "it")

		assert.ErrorIs(t, res.Err, audio.ErrDisabled)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)
	svc := audio.NewService(&fakeSynth{}, store, time.Second)

	res := svc.Generate(ctx, "Guten Tag", "de")
	require.True(t, res.OK())
	path := filepath.Join(store.Dir(), filepath.Base(res.URL))
	require.FileExists(t, path)

	assert.True(t, svc.Delete(ctx, res.URL))
	assert.NoFileExists(t, path)

	// 既に存在しない参照・空の参照も成功扱い
	assert.True(t, svc.Delete(ctx, res.URL))
	assert.True(t, svc.Delete(ctx, ""))
}

func TestLocaleFor(t *testing.T) {
	tests := map[string]string{
		"es": "es-ES",
		"fr": "fr-FR",
		"de": "de-DE",
		"it": "it-IT",
		"IT": "it-IT",
		"en": "en-US",
		"jp": "en-US",
		"":   "en-US",
	}
	for code, want := range tests {
		assert.Equal(t, want, audio.LocaleFor(code), "code=%q", code)
	}
}

func TestNew_Disabled(t *testing.T) {
	cfg := config.AudioConfig{
		Provider: "none",
		Store:    "local",
		LocalDir: t.TempDir(),
		BaseURL:  "/media/audio/",
	}

	c, err := audio.New(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.Local)
	assert.ErrorIs(t, c.Service.Generate(context.Background(), "Hola", "es").Err, audio.ErrDisabled)
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := config.AudioConfig{Provider: "espeak", Store: "local", LocalDir: t.TempDir()}
	_, err := audio.New(context.Background(), cfg)
	assert.Error(t, err)
}
