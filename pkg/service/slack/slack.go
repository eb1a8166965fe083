package slack

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	conversationsPageSize = 200
	adminScanPageSize     = 100
)

var conversationTypes = []string{"public_channel", "private_channel"}

// Service implements interfaces.Messenger on top of the Slack Web API.
// A Slack conversation is a group, a Slack user is a member.
type Service struct {
	options []slack.Option
	client  *slack.Client

	mu sync.Mutex
	// channels and cursors hold state of the listing in progress. They are
	// reset whenever a listing restarts at offset 0.
	channels map[types.GroupID]*slack.Channel
	// cursors maps a membership offset to the Slack cursor starting there
	cursors map[types.GroupID]map[int]string
}

var _ interfaces.Messenger = (*Service)(nil)

// New creates a new Slack service. The client is created on Login.
func New(options ...slack.Option) *Service {
	return &Service{
		options:  options,
		channels: make(map[types.GroupID]*slack.Channel),
		cursors:  make(map[types.GroupID]map[int]string),
	}
}

// Login opens a session with the token and returns the authenticated user
func (s *Service) Login(ctx context.Context, creds *model.Credentials) (*model.Account, error) {
	client := slack.New(creds.Token, s.options...)

	var resp *slack.AuthTestResponse
	err := s.retry(ctx, func() (err error) {
		resp, err = client.AuthTestContext(ctx)
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack")
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	return &model.Account{
		UserID:   types.MemberID(resp.UserID),
		UserName: resp.User,
		TeamID:   resp.TeamID,
		Team:     resp.Team,
		URL:      resp.URL,
	}, nil
}

// ListGroups returns non-archived public and private channels the user is in
func (s *Service) ListGroups(ctx context.Context) ([]*model.Group, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	params := &slack.GetConversationsForUserParameters{
		Types:           conversationTypes,
		ExcludeArchived: true,
		Limit:           conversationsPageSize,
	}

	var groups []*model.Group
	for {
		var (
			channels []slack.Channel
			next     string
		)
		err := s.retry(ctx, func() (err error) {
			channels, next, err = client.GetConversationsForUserContext(ctx, params)
			return err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list conversations", goerr.V("cursor", params.Cursor))
		}

		for _, ch := range channels {
			groups = append(groups, &model.Group{
				ID:          types.GroupID(ch.ID),
				Title:       ch.Name,
				IsPrivate:   ch.IsPrivate,
				MemberCount: ch.NumMembers,
			})
		}

		if next == "" {
			break
		}
		params.Cursor = next
	}

	return groups, nil
}

// ListMembers returns up to limit members starting at offset. Slack paginates
// conversation members with cursors, so offsets are resolved against cursors
// remembered from earlier calls. Offset 0 starts a new listing: conversation
// details and cursors are read again so Total reflects the current membership.
func (s *Service) ListMembers(ctx context.Context, groupID types.GroupID, offset, limit int) (*model.MemberPage, error) {
	if offset < 0 || limit <= 0 {
		return nil, goerr.New("invalid page request", goerr.V("offset", offset), goerr.V("limit", limit))
	}

	if offset == 0 {
		s.forget(groupID)
	}

	channel, err := s.channelInfo(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids, err := s.memberIDs(ctx, groupID, offset, limit)
	if err != nil {
		return nil, err
	}

	members, err := s.usersInfo(ctx, ids, channel.Creator)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get members", goerr.V("group_id", groupID))
	}

	return &model.MemberPage{
		Members: members,
		Total:   channel.NumMembers,
	}, nil
}

// ListAdmins walks all members of the conversation and returns those Slack flags
// as workspace admin or owner
func (s *Service) ListAdmins(ctx context.Context, groupID types.GroupID) ([]*model.Member, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	s.dropChannel(groupID)
	channel, err := s.channelInfo(ctx, groupID)
	if err != nil {
		return nil, err
	}

	params := &slack.GetUsersInConversationParameters{
		ChannelID: groupID.String(),
		Limit:     adminScanPageSize,
	}

	var admins []*model.Member
	for {
		var (
			ids  []string
			next string
		)
		err := s.retry(ctx, func() (err error) {
			ids, next, err = client.GetUsersInConversationContext(ctx, params)
			return err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list conversation members",
				goerr.V("group_id", groupID),
				goerr.V("cursor", params.Cursor))
		}

		members, err := s.usersInfo(ctx, ids, channel.Creator)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get members", goerr.V("group_id", groupID))
		}
		for _, m := range members {
			if m.IsAdmin {
				admins = append(admins, m)
			}
		}

		if next == "" {
			break
		}
		params.Cursor = next
	}

	return admins, nil
}

// GetMember returns role and creator information of a single member
func (s *Service) GetMember(ctx context.Context, groupID types.GroupID, memberID types.MemberID) (*model.Member, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	s.dropChannel(groupID)
	channel, err := s.channelInfo(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var user *slack.User
	err = s.retry(ctx, func() (err error) {
		user, err = client.GetUserInfoContext(ctx, memberID.String())
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user info",
			goerr.V("group_id", groupID),
			goerr.V("member_id", memberID))
	}

	return toMember(user, channel.Creator), nil
}

// RemoveMember kicks the member from the conversation
func (s *Service) RemoveMember(ctx context.Context, groupID types.GroupID, memberID types.MemberID) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}

	err = s.retry(ctx, func() error {
		return client.KickUserFromConversationContext(ctx, groupID.String(), memberID.String())
	})
	if err != nil {
		return goerr.Wrap(err, "failed to kick user from conversation",
			goerr.V("group_id", groupID),
			goerr.V("member_id", memberID))
	}
	return nil
}

func (s *Service) getClient() (*slack.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil, goerr.New("not logged in to Slack")
	}
	return s.client, nil
}

// forget drops cached conversation details and cursors of the group
func (s *Service) forget(groupID types.GroupID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.channels, groupID)
	delete(s.cursors, groupID)
}

// dropChannel drops cached conversation details only. Cursors stay valid for a
// listing in progress.
func (s *Service) dropChannel(groupID types.GroupID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.channels, groupID)
}

// channelInfo returns conversation details, cached until the next forget
func (s *Service) channelInfo(ctx context.Context, groupID types.GroupID) (*slack.Channel, error) {
	s.mu.Lock()
	cached, ok := s.channels[groupID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	var channel *slack.Channel
	err = s.retry(ctx, func() (err error) {
		channel, err = client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
			ChannelID:         groupID.String(),
			IncludeNumMembers: true,
		})
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get conversation info", goerr.V("group_id", groupID))
	}

	s.mu.Lock()
	s.channels[groupID] = channel
	s.mu.Unlock()

	return channel, nil
}

// memberIDs returns member IDs in [offset, offset+limit). It starts from the
// closest remembered cursor at or before offset and walks forward.
func (s *Service) memberIDs(ctx context.Context, groupID types.GroupID, offset, limit int) ([]string, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	pos, cursor := s.nearestCursor(groupID, offset)
	for {
		var (
			ids  []string
			next string
		)
		params := &slack.GetUsersInConversationParameters{
			ChannelID: groupID.String(),
			Cursor:    cursor,
			Limit:     limit,
		}
		err := s.retry(ctx, func() (err error) {
			ids, next, err = client.GetUsersInConversationContext(ctx, params)
			return err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list conversation members",
				goerr.V("group_id", groupID),
				goerr.V("offset", pos))
		}

		end := pos + len(ids)
		if next != "" {
			s.storeCursor(groupID, end, next)
		}

		if end > offset {
			ids = ids[offset-pos:]
			if len(ids) > limit {
				ids = ids[:limit]
			}
			return ids, nil
		}

		if next == "" || len(ids) == 0 {
			return nil, nil
		}
		pos, cursor = end, next
	}
}

func (s *Service) nearestCursor(groupID types.GroupID, offset int) (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, cursor := 0, ""
	for p, c := range s.cursors[groupID] {
		if p <= offset && p > pos {
			pos, cursor = p, c
		}
	}
	return pos, cursor
}

func (s *Service) storeCursor(groupID types.GroupID, offset int, cursor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursors[groupID] == nil {
		s.cursors[groupID] = make(map[int]string)
	}
	s.cursors[groupID][offset] = cursor
}

// usersInfo fetches user details keeping the order of ids
func (s *Service) usersInfo(ctx context.Context, ids []string, creator string) ([]*model.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	var users *[]slack.User
	err = s.retry(ctx, func() (err error) {
		users, err = client.GetUsersInfoContext(ctx, ids...)
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get users info", goerr.V("count", len(ids)))
	}

	byID := make(map[string]*slack.User)
	if users != nil {
		for i := range *users {
			u := &(*users)[i]
			byID[u.ID] = u
		}
	}

	members := make([]*model.Member, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			// Keep the member so it is still processed, just without details
			u = &slack.User{ID: id}
		}
		members = append(members, toMember(u, creator))
	}
	return members, nil
}

// retry runs fn and retries once when Slack answers with a rate limit
func (s *Service) retry(ctx context.Context, fn func() error) error {
	err := fn()

	var rateLimited *slack.RateLimitedError
	if !errors.As(err, &rateLimited) {
		return err
	}

	ctxlog.From(ctx).Warn("Rate limited by Slack, retrying",
		"retry_after", rateLimited.RetryAfter,
	)

	timer := time.NewTimer(rateLimited.RetryAfter)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return fn()
}

func toMember(u *slack.User, creator string) *model.Member {
	name := u.Profile.DisplayName
	if name == "" {
		name = u.RealName
	}
	if name == "" {
		name = u.Name
	}

	return &model.Member{
		ID:        types.MemberID(u.ID),
		Name:      name,
		IsAdmin:   u.IsAdmin || u.IsOwner || u.IsPrimaryOwner,
		IsCreator: creator != "" && u.ID == creator,
		IsBot:     u.IsBot,
	}
}
