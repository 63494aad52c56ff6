package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lingo_quiz/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

var pollyVoices = map[string]types.VoiceId{
	"es-ES": types.VoiceIdLucia,
	"fr-FR": types.VoiceIdLea,
	"de-DE": types.VoiceIdVicki,
	"it-IT": types.VoiceIdBianca,
	"en-US": types.VoiceIdJoanna,
}

// PollySynthesizer は Amazon Polly を使います。
type PollySynthesizer struct {
	client *polly.Client
}

// NewPollySynthesizer は設定に応じて認証方法を切り替えて Polly クライアントを生成します
func NewPollySynthesizer(ctx context.Context, cfg config.AudioConfig) (*PollySynthesizer, error) {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.AWSRegion))

	switch cfg.AWSAuthType {
	case "static_credentials":
		slog.Info("Configuring Polly with static credentials.")
		if cfg.AWSAccessKeyID == "" || cfg.AWSSecretKey == "" {
			return nil, fmt.Errorf("polly auth_type is 'static_credentials' but access key is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, "")
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role", "":
		slog.Info("Configuring Polly with IAM Role credentials.")
	default:
		slog.Warn("Unknown AWS auth_type specified, defaulting to IAM Role.", "type", cfg.AWSAuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsCfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &PollySynthesizer{client: polly.NewFromConfig(awsCfg)}, nil
}

func (p *PollySynthesizer) Synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	voice, ok := pollyVoices[locale]
	if !ok {
		voice = types.VoiceIdJoanna
	}
	out, err := p.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: types.OutputFormatMp3,
		Text:         aws.String(text),
		VoiceId:      voice,
		LanguageCode: types.LanguageCode(locale),
	})
	if err != nil {
		return nil, err
	}
	defer out.AudioStream.Close()
	return io.ReadAll(out.AudioStream)
}
