package inventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/c2platform/ssoctl/models"
)

// Source hands out one consistent inventory snapshot: the account records
// plus the passthrough parameter mapping, both maintained by the
// account-factory collaborator. Sources are read-only; nothing here writes
// back to the store.
type Source interface {
	Accounts(ctx context.Context) ([]models.AccountRecord, error)
	Parameters(ctx context.Context) (map[string]string, error)
}

type SSMGetParametersByPathAPI interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}
