package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lingo_quiz/internal/config"
)

// Components は設定から組み立てた音声サービスと、終了時に閉じるリソースです。
type Components struct {
	Service Service
	// Local はローカル保存の場合のみ非nil (静的配信用)。
	Local   *LocalStore
	closers []io.Closer
}

func (c *Components) Close() error {
	var firstErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// New は config.AudioConfig の provider / store に従って音声サービスを組み立てます。
func New(ctx context.Context, cfg config.AudioConfig) (*Components, error) {
	c := &Components{}

	var store Store
	switch cfg.Store {
	case "gcs":
		gcs, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, gcs)
		store = gcs
	case "local", "":
		local, err := NewLocalStore(cfg.LocalDir, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		c.Local = local
		store = local
	default:
		return nil, fmt.Errorf("unknown audio store: %q", cfg.Store)
	}

	var synth Synthesizer
	switch cfg.Provider {
	case "google":
		g, err := NewGoogleSynthesizer(ctx)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.closers = append(c.closers, g)
		synth = g
	case "polly":
		p, err := NewPollySynthesizer(ctx, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		synth = p
	case "none", "":
		slog.Warn("Audio provider is disabled; speech questions will be saved without audio")
	default:
		c.Close()
		return nil, fmt.Errorf("unknown audio provider: %q", cfg.Provider)
	}

	c.Service = NewService(synth, store, cfg.RequestTimeout)
	return c, nil
}
