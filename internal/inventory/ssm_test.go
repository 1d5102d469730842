package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2platform/ssoctl/models"
	mock_ssoctl "github.com/c2platform/ssoctl/tests/mock"
)

func TestNewSSMSource(t *testing.T) {
	source := NewSSMSource(nil, "")
	assert.Equal(t, models.DefaultSSMPathPrefix, source.Prefix)

	source = NewSSMSource(nil, "/custom/inventory/")
	assert.Equal(t, "/custom/inventory", source.Prefix)
}

func TestSSMSource_Accounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mock_ssoctl.NewMockSSMGetParametersByPathAPI(ctrl)

	tests := []struct {
		name          string
		setupMocks    func()
		expected      []models.AccountRecord
		expectError   bool
		errorContains string
	}{
		{
			name: "accounts sorted by name with inherited account_name",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(&ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						{
							Name:  aws.String("/account-factory/accounts/prod"),
							Value: aws.String(`{"account_id":"2","account_tags":{"Environment":"prod"}}`),
						},
						{
							Name:  aws.String("/account-factory/accounts/dev"),
							Value: aws.String(`{"account_name":"dev","account_id":"1","customer_values":{"sso_admin_groups":["g-a"]}}`),
						},
					},
				}, nil)
			},
			expected: []models.AccountRecord{
				{
					AccountName:    "dev",
					AccountID:      "1",
					CustomerValues: map[string][]string{"sso_admin_groups": {"g-a"}},
				},
				{
					AccountName: "prod",
					AccountID:   "2",
					AccountTags: map[string]string{"Environment": "prod"},
				},
			},
		},
		{
			name: "pagination follows next token",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, input *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
						if input.NextToken == nil {
							return &ssm.GetParametersByPathOutput{
								Parameters: []types.Parameter{
									{Name: aws.String("/account-factory/accounts/alpha"), Value: aws.String(`{"account_id":"1"}`)},
								},
								NextToken: aws.String("page-2"),
							}, nil
						}
						return &ssm.GetParametersByPathOutput{
							Parameters: []types.Parameter{
								{Name: aws.String("/account-factory/accounts/beta"), Value: aws.String(`{"account_id":"2"}`)},
							},
						}, nil
					}).Times(2)
			},
			expected: []models.AccountRecord{
				{AccountName: "alpha", AccountID: "1"},
				{AccountName: "beta", AccountID: "2"},
			},
		},
		{
			name: "empty path yields empty snapshot",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(&ssm.GetParametersByPathOutput{}, nil)
			},
			expected: []models.AccountRecord{},
		},
		{
			name: "malformed account document",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(&ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						{Name: aws.String("/account-factory/accounts/bad"), Value: aws.String("{not-json")},
					},
				}, nil)
			},
			expectError:   true,
			errorContains: `malformed account record "bad"`,
		},
		{
			name: "account_name drift",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(&ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						{Name: aws.String("/account-factory/accounts/dev"), Value: aws.String(`{"account_name":"prod","account_id":"1"}`)},
					},
				}, nil)
			},
			expectError:   true,
			errorContains: "mismatching account_name",
		},
		{
			name: "access denied",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(nil,
					&smithy.GenericAPIError{Code: CodeAccessDenied, Message: "no ssm:GetParametersByPath"})
			},
			expectError:   true,
			errorContains: "access to the parameter store denied",
		},
		{
			name: "throttled",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(nil,
					&smithy.GenericAPIError{Code: CodeThrottling, Message: "rate exceeded"})
			},
			expectError:   true,
			errorContains: "throttled",
		},
		{
			name: "other failure wrapped",
			setupMocks: func() {
				mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectError:   true,
			errorContains: "failed to read parameters under /account-factory/accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			source := NewSSMSource(mockAPI, "")

			accounts, err := source.Accounts(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, accounts)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, accounts)
			}
		})
	}
}

func TestSSMSource_Parameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mock_ssoctl.NewMockSSMGetParametersByPathAPI(ctrl)

	t.Run("passthrough values by leaf name", func(t *testing.T) {
		mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
				assert.Equal(t, "/account-factory/parameters", aws.ToString(input.Path))
				assert.True(t, aws.ToBool(input.Recursive))
				assert.True(t, aws.ToBool(input.WithDecryption))
				return &ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						{Name: aws.String("/account-factory/parameters/org_id"), Value: aws.String("o-abc123")},
						{Name: aws.String("/account-factory/parameters/identity_store_id"), Value: aws.String("d-99672")},
					},
				}, nil
			})

		source := NewSSMSource(mockAPI, "")
		parameters, err := source.Parameters(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"org_id":            "o-abc123",
			"identity_store_id": "d-99672",
		}, parameters)
	})

	t.Run("missing path yields empty map", func(t *testing.T) {
		mockAPI.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any()).Return(&ssm.GetParametersByPathOutput{}, nil)

		source := NewSSMSource(mockAPI, "")
		parameters, err := source.Parameters(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, parameters)
		assert.Empty(t, parameters)
	})
}
