package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Account is the identity the session is logged in as
type Account struct {
	UserID   types.MemberID
	UserName string
	TeamID   string
	Team     string
	URL      string
}

// Credentials is the credential trio used to open a session.
// Token is the API secret and doubles as the session itself.
type Credentials struct {
	// ClientID identifies the Slack app the token was issued to. It is kept
	// in the credential file for reference and never sent to Slack.
	ClientID string `yaml:"client_id"`
	Token    string `yaml:"token"`
	Account  string `yaml:"account"`
}

// Validate checks that the credentials can be used to log in
func (c *Credentials) Validate() error {
	if c == nil {
		return goerr.New("credentials are nil")
	}
	if c.Token == "" {
		return goerr.New("API token is required")
	}
	return nil
}

// IsEmpty reports whether no credential value is set at all
func (c *Credentials) IsEmpty() bool {
	return c.ClientID == "" && c.Token == "" && c.Account == ""
}

// Matches reports whether the logged in account is the configured one.
// An empty configured account matches anything.
func (c *Credentials) Matches(account *Account) bool {
	if c.Account == "" {
		return true
	}
	if account == nil {
		return false
	}
	return c.Account == account.UserID.String() || c.Account == account.UserName
}

// LogValue returns structured log value without exposing the token
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", c.ClientID),
		slog.Bool("has_token", c.Token != ""),
		slog.String("account", c.Account),
	)
}
