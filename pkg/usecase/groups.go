package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Groups lists the groups an account can clean
type Groups struct {
	messenger interfaces.Messenger
}

// NewGroups creates a new Groups use case
func NewGroups(messenger interfaces.Messenger) *Groups {
	return &Groups{messenger: messenger}
}

// List returns the account's groups sorted by title
func (g *Groups) List(ctx context.Context) ([]*model.Group, error) {
	groups, err := g.messenger.ListGroups(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list groups")
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Title) < strings.ToLower(groups[j].Title)
	})
	return groups, nil
}

// Find returns the group with the given ID from the account's groups
func (g *Groups) Find(ctx context.Context, id types.GroupID) (*model.Group, error) {
	groups, err := g.List(ctx)
	if err != nil {
		return nil, err
	}

	group, ok := lo.Find(groups, func(group *model.Group) bool {
		return group.ID == id
	})
	if !ok {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "group not found", goerr.V("group_id", id))
	}
	return group, nil
}

// SelectGroup picks a group by the 1-based number shown to the operator
func SelectGroup(groups []*model.Group, input string) (*model.Group, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "please enter a valid number", goerr.V("input", input))
	}

	if n < 1 || n > len(groups) {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "invalid group number",
			goerr.V("input", input),
			goerr.V("groups", len(groups)))
	}

	return groups[n-1], nil
}
