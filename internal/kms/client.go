package kms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awskms "github.com/aws/aws-sdk-go-v2/service/kms"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/keyref"
)

// api is the subset of the AWS KMS client used here (allows mocking).
type api interface {
	Encrypt(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error)
	Decrypt(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error)
}

// Client implements Gateway using AWS KMS.
type Client struct {
	api    api
	region string
}

// Config holds optional overrides on top of the ambient AWS configuration.
type Config struct {
	// Region is the AWS region. If empty, AWS_REGION or the shared config is used.
	Region string

	// Profile selects a shared config profile. If empty, AWS_PROFILE or default is used.
	Profile string

	// Endpoint overrides the KMS endpoint, e.g. a LocalStack URL.
	Endpoint string
}

// New creates a Client from the ambient AWS configuration.
//
// Credentials are discovered the usual way (environment, shared config,
// SSO, instance metadata). The SDK retryer is disabled so every call is a
// single round trip.
func New(ctx context.Context, cfg Config) (*Client, error) {
	opts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load AWS config: %w", kerrors.ErrRemoteFailure, err)
	}

	client := awskms.NewFromConfig(awsConfig, func(o *awskms.Options) {
		o.Retryer = aws.NopRetryer{}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Client{
		api:    client,
		region: awsConfig.Region,
	}, nil
}

// Encrypt encrypts plaintext under key.
//
// The key can be any form KMS accepts as a KeyId: key id, key ARN, alias
// name or alias ARN.
func (c *Client) Encrypt(ctx context.Context, key keyref.Reference, plaintext string) ([]byte, error) {
	input := &awskms.EncryptInput{
		KeyId:     aws.String(key.String()),
		Plaintext: []byte(plaintext),
	}

	result, err := c.api.Encrypt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encrypt with KMS key %s: %w", kerrors.ErrRemoteFailure, key, err)
	}

	if result.CiphertextBlob == nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, kerrors.ErrMissingCiphertext)
	}

	return result.CiphertextBlob, nil
}

// Decrypt decrypts a raw cipher text blob. KMS finds the key from the blob
// metadata, so no key is passed.
func (c *Client) Decrypt(ctx context.Context, ciphertext []byte) (*DecryptResult, error) {
	input := &awskms.DecryptInput{
		CiphertextBlob: ciphertext,
	}

	result, err := c.api.Decrypt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt: %w", kerrors.ErrRemoteFailure, err)
	}

	if result.Plaintext == nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, kerrors.ErrMissingPlaintext)
	}

	return &DecryptResult{
		KeyID:     aws.ToString(result.KeyId),
		Plaintext: plaintextString(result.Plaintext),
	}, nil
}

// Region returns the AWS region this client is configured for.
func (c *Client) Region() string {
	return c.region
}
