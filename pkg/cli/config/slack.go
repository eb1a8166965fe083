package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	slackSvc "github.com/secmon-lab/memsweep/pkg/service/slack"
	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where credentials are stored when the operator agrees
const DefaultConfigPath = "memsweep.yaml"

// Prompter collects credentials from the operator when none are configured
type Prompter interface {
	PromptCredentials(ctx context.Context, known *model.Credentials) (*model.Credentials, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// Slack holds Slack configuration
type Slack struct {
	ConfigPath string
	ClientID   string
	Token      string
	Account    string
	APIURL     string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path of the credential file",
			Category:    "Slack",
			Value:       DefaultConfigPath,
			Sources:     cli.EnvVars("MEMSWEEP_CONFIG"),
			Destination: &s.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "slack-client-id",
			Usage:       "Slack app client ID, saved and logged for reference only. Login uses the token alone",
			Category:    "Slack",
			Sources:     cli.EnvVars("MEMSWEEP_SLACK_CLIENT_ID"),
			Destination: &s.ClientID,
		},
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack user token with channels:manage and groups:write scopes",
			Category:    "Slack",
			Sources:     cli.EnvVars("MEMSWEEP_SLACK_TOKEN"),
			Destination: &s.Token,
		},
		&cli.StringFlag{
			Name:        "slack-account",
			Usage:       "Expected Slack user ID or name of the token owner",
			Category:    "Slack",
			Sources:     cli.EnvVars("MEMSWEEP_SLACK_ACCOUNT"),
			Destination: &s.Account,
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL",
			Category:    "Slack",
			Hidden:      true,
			Sources:     cli.EnvVars("MEMSWEEP_SLACK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Configure creates the Slack messenger. The session is opened on login.
func (s *Slack) Configure() *slackSvc.Service {
	var options []slack.Option
	if s.APIURL != "" {
		options = append(options, slack.OptionAPIURL(s.APIURL))
	}
	return slackSvc.New(options...)
}

// Credentials merges the credential file with flag values. Flags win.
func (s *Slack) Credentials() (*model.Credentials, error) {
	creds, err := LoadCredentials(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		creds = &model.Credentials{}
	}

	if s.ClientID != "" {
		creds.ClientID = s.ClientID
	}
	if s.Token != "" {
		creds.Token = s.Token
	}
	if s.Account != "" {
		creds.Account = s.Account
	}
	return creds, nil
}

// Resolve returns usable credentials, asking the operator for missing ones.
// Prompted credentials are saved only if the operator agrees.
func (s *Slack) Resolve(ctx context.Context, prompter Prompter) (*model.Credentials, error) {
	creds, err := s.Credentials()
	if err != nil {
		return nil, err
	}
	if creds.Token != "" {
		return creds, nil
	}

	if prompter == nil {
		return nil, goerr.New("Slack token is required. Please provide MEMSWEEP_SLACK_TOKEN")
	}

	creds, err = prompter.PromptCredentials(ctx, creds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read credentials")
	}

	if s.ConfigPath == "" {
		return creds, nil
	}

	save, err := prompter.Confirm(ctx, "Save credentials to "+s.ConfigPath+" for next time?")
	if err != nil {
		return nil, err
	}
	if save {
		if err := SaveCredentials(s.ConfigPath, creds); err != nil {
			return nil, err
		}
		ctxlog.From(ctx).Info("Credentials saved", "path", s.ConfigPath)
	}

	return creds, nil
}

// LoadCredentials reads the credential file. A missing file is not an error
// and returns nil.
func LoadCredentials(path string) (*model.Credentials, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read credential file",
			goerr.V("path", path))
	}

	var creds model.Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, goerr.Wrap(err, "failed to parse credential file",
			goerr.V("path", path))
	}

	return &creds, nil
}

// SaveCredentials writes the credential file readable by the owner only
func SaveCredentials(path string, creds *model.Credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return goerr.Wrap(err, "failed to encode credentials")
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write credential file",
			goerr.V("path", path))
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0600); err != nil {
		return goerr.Wrap(err, "failed to restrict credential file",
			goerr.V("path", path))
	}
	return nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", s.ConfigPath),
		slog.Bool("has_client_id", s.ClientID != ""),
		slog.Bool("has_token", s.Token != ""),
		slog.String("account", s.Account),
	)
}
