package interfaces

//go:generate moq -out mocks/messenger_mock.go -pkg mocks . Messenger

import (
	"context"

	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Messenger is the messaging platform client the sweeper depends on
type Messenger interface {
	// Login opens a session with the given credentials and returns the logged in account
	Login(ctx context.Context, creds *model.Credentials) (*model.Account, error)

	// ListGroups returns groups and channels the account belongs to
	ListGroups(ctx context.Context) ([]*model.Group, error)

	// ListMembers returns up to limit members starting at offset
	ListMembers(ctx context.Context, groupID types.GroupID, offset, limit int) (*model.MemberPage, error)

	// ListAdmins returns members flagged as administrators by the platform
	ListAdmins(ctx context.Context, groupID types.GroupID) ([]*model.Member, error)

	// GetMember returns role and creator information of a single member
	GetMember(ctx context.Context, groupID types.GroupID, memberID types.MemberID) (*model.Member, error)

	// RemoveMember removes the member from the group
	RemoveMember(ctx context.Context, groupID types.GroupID, memberID types.MemberID) error
}
