package kms

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awskms "github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/keyref"
)

// Mock KMS client for testing
type mockKMSClient struct {
	encryptFunc func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error)
	decryptFunc func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error)
}

func (m *mockKMSClient) Encrypt(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error) {
	if m.encryptFunc != nil {
		return m.encryptFunc(ctx, params, optFns...)
	}
	return &awskms.EncryptOutput{}, nil
}

func (m *mockKMSClient) Decrypt(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
	if m.decryptFunc != nil {
		return m.decryptFunc(ctx, params, optFns...)
	}
	return &awskms.DecryptOutput{}, nil
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_PROFILE", "")

	tests := []struct {
		name      string
		cfg       Config
		checkFunc func(t *testing.T, c *Client)
	}{
		{
			name: "with region specified",
			cfg:  Config{Region: "us-east-1"},
			checkFunc: func(t *testing.T, c *Client) {
				assert.Equal(t, "us-east-1", c.Region())
				assert.NotNil(t, c.api)
			},
		},
		{
			name: "with custom endpoint",
			cfg:  Config{Region: "eu-west-1", Endpoint: "http://localhost:4566"},
			checkFunc: func(t *testing.T, c *Client) {
				assert.Equal(t, "eu-west-1", c.Region())
				assert.NotNil(t, c.api)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(ctx, tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, c)
			tt.checkFunc(t, c)
		})
	}
}

func TestEncrypt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		key       keyref.Reference
		mockFunc  func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error)
		wantBlob  []byte
		wantErrIs []error
		errMsg    string
	}{
		{
			name: "alias is sent with prefix",
			key:  keyref.Resolve("my-key"),
			mockFunc: func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error) {
				assert.Equal(t, "alias/my-key", aws.ToString(params.KeyId))
				assert.Equal(t, []byte("super secret"), params.Plaintext)
				return &awskms.EncryptOutput{CiphertextBlob: []byte{1, 2, 3}}, nil
			},
			wantBlob: []byte{1, 2, 3},
		},
		{
			name: "key id is sent in canonical form",
			key:  keyref.Resolve("1234ABCD-12AB-34CD-56EF-1234567890AB"),
			mockFunc: func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error) {
				assert.Equal(t, "1234abcd-12ab-34cd-56ef-1234567890ab", aws.ToString(params.KeyId))
				return &awskms.EncryptOutput{CiphertextBlob: []byte{9}}, nil
			},
			wantBlob: []byte{9},
		},
		{
			name: "service error",
			key:  keyref.Resolve("alias/missing"),
			mockFunc: func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error) {
				return nil, errors.New("NotFoundException: Alias arn:aws:kms:us-east-1:111122223333:alias/missing is not found")
			},
			wantErrIs: []error{kerrors.ErrRemoteFailure},
			errMsg:    "failed to encrypt with KMS key alias/missing",
		},
		{
			name: "missing cipher text",
			key:  keyref.Resolve("alias/key"),
			mockFunc: func(ctx context.Context, params *awskms.EncryptInput, optFns ...func(*awskms.Options)) (*awskms.EncryptOutput, error) {
				return &awskms.EncryptOutput{}, nil
			},
			wantErrIs: []error{kerrors.ErrRemoteFailure, kerrors.ErrMissingCiphertext},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{api: &mockKMSClient{encryptFunc: tt.mockFunc}}

			blob, err := c.Encrypt(ctx, tt.key, "super secret")
			if len(tt.wantErrIs) > 0 {
				require.Error(t, err)
				for _, target := range tt.wantErrIs {
					assert.ErrorIs(t, err, target)
				}
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				assert.Nil(t, blob)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBlob, blob)
		})
	}
}

func TestDecrypt(t *testing.T) {
	ctx := context.Background()
	keyARN := "arn:aws:kms:us-east-1:111122223333:key/1234abcd-12ab-34cd-56ef-1234567890ab"

	tests := []struct {
		name      string
		mockFunc  func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error)
		want      *DecryptResult
		wantErrIs []error
	}{
		{
			name: "successful decryption",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				assert.Equal(t, []byte{1, 2, 3}, params.CiphertextBlob)
				assert.Nil(t, params.KeyId)
				return &awskms.DecryptOutput{KeyId: aws.String(keyARN), Plaintext: []byte("super secret")}, nil
			},
			want: &DecryptResult{KeyID: keyARN, Plaintext: "super secret"},
		},
		{
			name: "missing key id is not an error",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return &awskms.DecryptOutput{Plaintext: []byte("value")}, nil
			},
			want: &DecryptResult{KeyID: "", Plaintext: "value"},
		},
		{
			name: "empty plaintext is returned as is",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return &awskms.DecryptOutput{KeyId: aws.String(keyARN), Plaintext: []byte{}}, nil
			},
			want: &DecryptResult{KeyID: keyARN, Plaintext: ""},
		},
		{
			name: "invalid utf8 is replaced",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return &awskms.DecryptOutput{Plaintext: []byte{'a', 0xff, 'b'}}, nil
			},
			want: &DecryptResult{Plaintext: "a\uFFFDb"},
		},
		{
			name: "each invalid sequence is replaced separately",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return &awskms.DecryptOutput{Plaintext: []byte{'a', 0xff, 0xfe, 'b'}}, nil
			},
			want: &DecryptResult{Plaintext: "a\uFFFD\uFFFDb"},
		},
		{
			name: "service error",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return nil, errors.New("InvalidCiphertextException")
			},
			wantErrIs: []error{kerrors.ErrRemoteFailure},
		},
		{
			name: "missing plaintext",
			mockFunc: func(ctx context.Context, params *awskms.DecryptInput, optFns ...func(*awskms.Options)) (*awskms.DecryptOutput, error) {
				return &awskms.DecryptOutput{KeyId: aws.String(keyARN)}, nil
			},
			wantErrIs: []error{kerrors.ErrRemoteFailure, kerrors.ErrMissingPlaintext},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{api: &mockKMSClient{decryptFunc: tt.mockFunc}}

			got, err := c.Decrypt(ctx, []byte{1, 2, 3})
			if len(tt.wantErrIs) > 0 {
				require.Error(t, err)
				for _, target := range tt.wantErrIs {
					assert.ErrorIs(t, err, target)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
