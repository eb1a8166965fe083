package console

import (
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"github.com/secmon-lab/memsweep/pkg/usecase"
)

// Menu is the interactive loop offered after login
type Menu struct {
	console *Console
	groups  usecase.GroupsUseCase
	sweeper usecase.SweepUseCase
	account *model.Account
}

// NewMenu creates a new Menu for the logged in account
func NewMenu(console *Console, groups usecase.GroupsUseCase, sweeper usecase.SweepUseCase, account *model.Account) *Menu {
	return &Menu{
		console: console,
		groups:  groups,
		sweeper: sweeper,
		account: account,
	}
}

// Run shows the menu until the operator exits or the input is closed
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.console.Println()
		m.console.Heading("Menu")
		m.console.Println("1. List Groups")
		m.console.Println("2. Clean Group")
		m.console.Println("3. Exit")

		choice, err := m.console.Ask(ctx, "Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.ListGroups(ctx)
		case "2":
			err = m.CleanGroup(ctx)
		case "3":
			m.console.Println("Bye.")
			return nil
		default:
			m.console.Error("Invalid option. Please try again.")
			continue
		}

		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		// Failures of a single action are reported and the menu is shown again
		ctxlog.From(ctx).Debug("Menu action failed", "choice", choice, "error", err)
	}
}

// ListGroups prints all groups of the account
func (m *Menu) ListGroups(ctx context.Context) error {
	groups, err := m.listGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		m.console.Notice("No groups found.")
		return nil
	}
	WriteGroups(m.console.Writer(), groups)
	return nil
}

// CleanGroup lets the operator pick a group by number and cleans it
func (m *Menu) CleanGroup(ctx context.Context) error {
	groups, err := m.listGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		m.console.Notice("No groups found.")
		return nil
	}
	WriteGroups(m.console.Writer(), groups)

	input, err := m.console.Ask(ctx, "Enter the number of the group to clean: ")
	if err != nil {
		return err
	}

	group, err := usecase.SelectGroup(groups, input)
	if err != nil {
		m.console.Error("Invalid selection. Please enter a number between 1 and %d.", len(groups))
		return err
	}

	return m.Clean(ctx, group)
}

// CleanByID cleans the group with the given ID
func (m *Menu) CleanByID(ctx context.Context, id types.GroupID) error {
	group, err := m.groups.Find(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSelection) {
			m.console.Error("Group %s is not one of your groups.", id)
		}
		return err
	}
	return m.Clean(ctx, group)
}

// Clean confirms with the operator and sweeps the group
func (m *Menu) Clean(ctx context.Context, group *model.Group) error {
	ok, err := m.console.Confirm(ctx, "Remove every member of "+group.Title+" except admins and the owner?")
	if err != nil {
		return err
	}
	if !ok {
		m.console.Notice("Cleaning %s skipped.", group.Title)
		return nil
	}

	m.console.Heading("Cleaning %s", group.Title)
	result, err := m.sweeper.Sweep(ctx, group, m.account)

	switch {
	case errors.Is(err, model.ErrNotGroupAdmin):
		m.console.Error("You are neither an admin nor the owner of %s.", group.Title)
		return err
	case result != nil && result.Status == types.SweepStatusAborted:
		m.console.Error("Cleaning %s aborted: %s", group.Title, result.Reason)
		return err
	}

	if result != nil {
		m.PrintSummary(result)
	}
	return err
}

// PrintSummary prints the outcome of a sweep
func (m *Menu) PrintSummary(result *model.SweepResult) {
	if result.Cancelled() && result.Reason != "" {
		m.console.Notice("Cleaning %s %s.", result.GroupTitle, result.Reason)
	}
	m.console.Success("Finished cleaning %s: Removed %d members.", result.GroupTitle, result.Removed)
	if n := len(result.Failures); n > 0 {
		m.console.Error("%d members could not be removed. See the error log for details.", n)
	}
}

func (m *Menu) listGroups(ctx context.Context) ([]*model.Group, error) {
	groups, err := m.groups.List(ctx)
	if err != nil {
		m.console.Error("Failed to list groups: %s", err.Error())
		return nil, goerr.Wrap(err, "failed to list groups")
	}
	return groups, nil
}
