package awsctx

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_ssoctl "github.com/c2platform/ssoctl/tests/mock"
)

func TestLoadConfig_EndpointOverride(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), LoadOptions{
		Region:      "eu-central-1",
		EndpointURL: "http://localhost:4566",
	})

	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "http://localhost:4566", aws.ToString(cfg.BaseEndpoint))

	// The override installs static test credentials; no real chain is consulted.
	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
}

func TestResolveCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSTS := mock_ssoctl.NewMockSTSGetCallerIdentityAPI(ctrl)

	tests := []struct {
		name          string
		setupMocks    func()
		expected      Caller
		expectError   bool
		errorContains string
	}{
		{
			name: "caller resolved",
			setupMocks: func() {
				mockSTS.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Return(&sts.GetCallerIdentityOutput{
					Account: aws.String("111111111111"),
					Arn:     aws.String("arn:aws:iam::111111111111:role/provisioner"),
				}, nil)
			},
			expected: Caller{AccountID: "111111111111", Region: "eu-west-1"},
		},
		{
			name: "call fails",
			setupMocks: func() {
				mockSTS.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Return(nil, errors.New("no credentials"))
			},
			expectError:   true,
			errorContains: "failed to resolve caller identity",
		},
		{
			name: "missing account in response",
			setupMocks: func() {
				mockSTS.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Return(&sts.GetCallerIdentityOutput{}, nil)
			},
			expectError:   true,
			errorContains: "missing account id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			caller, err := ResolveCaller(context.Background(), mockSTS, "eu-west-1")

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, caller)
			}
		})
	}
}
