package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
	"golang.org/x/time/rate"

	"github.com/c2platform/ssoctl/models"
)

// Parameter-store layout below the inventory prefix.
const (
	AccountsSubPath   = "accounts"
	ParametersSubPath = "parameters"
)

const (
	ErrAccessDenied     = "access to the parameter store denied. Please verify your credentials and the inventory path policy: %w"
	ErrThrottled        = "parameter store throttled the request after retries: %w"
	ErrStoreOperation   = "parameter store operation failed: %w"
	ErrReadPath         = "failed to read parameters under %s: %w"
	ErrMalformedAccount = "malformed account record %q: %w"
	ErrAccountNameDrift = "account record %q declares mismatching account_name %q"
)

const (
	CodeAccessDenied = "AccessDeniedException"
	CodeThrottling   = "ThrottlingException"
)

// The store is shared with the account-factory collaborator; stay well below
// the default GetParametersByPath throughput quota.
const (
	storeRequestsPerSecond = 3
	storeRequestBurst      = 3
)

// SSMSource reads the inventory from the shared parameter store. Accounts
// live one JSON document per parameter under <prefix>/accounts/<name>;
// passthrough parameters under <prefix>/parameters/. Safe for concurrent use.
type SSMSource struct {
	Client  SSMGetParametersByPathAPI
	Prefix  string
	limiter *rate.Limiter
}

var _ Source = (*SSMSource)(nil)

func NewSSMSource(client SSMGetParametersByPathAPI, prefix string) *SSMSource {
	if prefix == "" {
		prefix = models.DefaultSSMPathPrefix
	}
	return &SSMSource{
		Client:  client,
		Prefix:  strings.TrimRight(prefix, "/"),
		limiter: rate.NewLimiter(rate.Limit(storeRequestsPerSecond), storeRequestBurst),
	}
}

// Accounts returns the account snapshot sorted by account name. A record
// whose document omits account_name inherits the parameter's leaf name; a
// document that contradicts its leaf name is an error, not a silent rename.
func (s *SSMSource) Accounts(ctx context.Context) ([]models.AccountRecord, error) {
	documents, err := s.fetchPath(ctx, s.Prefix+"/"+AccountsSubPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)

	accounts := make([]models.AccountRecord, 0, len(names))
	for _, name := range names {
		var record models.AccountRecord
		if err := json.Unmarshal([]byte(documents[name]), &record); err != nil {
			return nil, fmt.Errorf(ErrMalformedAccount, name, err)
		}
		if record.AccountName == "" {
			record.AccountName = name
		} else if record.AccountName != name {
			return nil, fmt.Errorf(ErrAccountNameDrift, name, record.AccountName)
		}
		accounts = append(accounts, record)
	}
	return accounts, nil
}

// Parameters returns the passthrough mapping unmodified. The collaborator
// may maintain none; an empty path yields an empty map, not an error.
func (s *SSMSource) Parameters(ctx context.Context) (map[string]string, error) {
	return s.fetchPath(ctx, s.Prefix+"/"+ParametersSubPath)
}

func (s *SSMSource) fetchPath(ctx context.Context, path string) (map[string]string, error) {
	values := make(map[string]string)
	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	}

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("inventory read interrupted: %w", err)
		}
		page, err := s.Client.GetParametersByPath(ctx, input)
		if err != nil {
			return nil, handleStoreError(path, err)
		}
		for _, parameter := range page.Parameters {
			values[leafName(aws.ToString(parameter.Name))] = aws.ToString(parameter.Value)
		}
		if page.NextToken == nil || *page.NextToken == "" {
			break
		}
		input.NextToken = page.NextToken
	}
	return values, nil
}

func leafName(parameterName string) string {
	if i := strings.LastIndex(parameterName, "/"); i >= 0 {
		return parameterName[i+1:]
	}
	return parameterName
}

func handleStoreError(path string, err error) error {
	var apiErr *smithy.GenericAPIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case CodeAccessDenied:
			return fmt.Errorf(ErrAccessDenied, err)
		case CodeThrottling:
			return fmt.Errorf(ErrThrottled, err)
		}
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		if strings.Contains(err.Error(), "exceeded maximum number of attempts") {
			return fmt.Errorf(ErrThrottled, err)
		}
		return fmt.Errorf(ErrStoreOperation, err)
	}

	return fmt.Errorf(ErrReadPath, path, err)
}
