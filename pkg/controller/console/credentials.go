package console

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
)

// PromptCredentials asks for every credential value missing from known.
// The token is read without echo on terminals.
func (c *Console) PromptCredentials(ctx context.Context, known *model.Credentials) (*model.Credentials, error) {
	creds := &model.Credentials{}
	if known != nil {
		*creds = *known
	}

	c.Heading("Slack credentials")

	var err error
	if creds.ClientID == "" {
		if creds.ClientID, err = c.Ask(ctx, "Enter Slack client ID (optional, not used for login): "); err != nil {
			return nil, goerr.Wrap(err, "failed to read client ID")
		}
	}
	if creds.Token == "" {
		if creds.Token, err = c.AskSecret(ctx, "Enter Slack token: "); err != nil {
			return nil, goerr.Wrap(err, "failed to read token")
		}
	}
	if creds.Account == "" {
		if creds.Account, err = c.Ask(ctx, "Enter account, user ID or name (optional): "); err != nil {
			return nil, goerr.Wrap(err, "failed to read account")
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}
