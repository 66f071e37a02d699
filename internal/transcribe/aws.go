package transcribe

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/transcribestreaming"

	"github.com/nguyentantai21042004/medscribe/internal/config"
)

// NewStreamingClient builds the AWS Transcribe streaming client from static
// credentials. It returns (nil, nil) when credentials are absent, which
// leaves the Manager unconfigured. The client currently only proves the
// backend is reachable by configuration; recognition itself still runs
// through the Recognizer.
func NewStreamingClient(ctx context.Context, cfg config.AWSConfig) (*transcribestreaming.Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return transcribestreaming.NewFromConfig(awsCfg), nil
}
