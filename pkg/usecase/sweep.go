package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"github.com/secmon-lab/memsweep/pkg/utils/logging"
)

const (
	// DefaultPageSize is the number of members requested per page
	DefaultPageSize = 100
	// DefaultCheckpointEvery is how many removals happen between operator prompts
	DefaultCheckpointEvery = 10
	// RemovalInterval is the fixed delay after every removal call. It is the
	// only backpressure against the platform's rate limits.
	RemovalInterval = time.Second
)

// Sweeper removes every non-protected member from a group, one request at a time
type Sweeper struct {
	messenger       interfaces.Messenger
	operator        interfaces.Operator
	repo            interfaces.Repository
	progress        io.Writer
	errLog          *logging.ErrorLog
	pageSize        int
	checkpointEvery int
	sleep           func(ctx context.Context, d time.Duration) error
}

// SweeperOption configures a Sweeper
type SweeperOption func(*Sweeper)

// WithRepository records every sweep to repo
func WithRepository(repo interfaces.Repository) SweeperOption {
	return func(s *Sweeper) {
		s.repo = repo
	}
}

// WithProgress sets where progress lines are printed
func WithProgress(w io.Writer) SweeperOption {
	return func(s *Sweeper) {
		s.progress = w
	}
}

// WithErrorLog sets the error log receiving per member failures
func WithErrorLog(errLog *logging.ErrorLog) SweeperOption {
	return func(s *Sweeper) {
		s.errLog = errLog
	}
}

// WithPageSize overrides DefaultPageSize
func WithPageSize(size int) SweeperOption {
	return func(s *Sweeper) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithCheckpointEvery overrides DefaultCheckpointEvery
func WithCheckpointEvery(n int) SweeperOption {
	return func(s *Sweeper) {
		if n > 0 {
			s.checkpointEvery = n
		}
	}
}

// WithSleep replaces the delay function. Used by tests to avoid real waits.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) SweeperOption {
	return func(s *Sweeper) {
		s.sleep = sleep
	}
}

// NewSweeper creates a new Sweeper. A nil operator never pauses or cancels.
func NewSweeper(messenger interfaces.Messenger, operator interfaces.Operator, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{
		messenger:       messenger,
		operator:        operator,
		progress:        io.Discard,
		errLog:          logging.NopErrorLog(),
		pageSize:        DefaultPageSize,
		checkpointEvery: DefaultCheckpointEvery,
		sleep:           sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authorize verifies the account holds an admin or owner role in the group
func (s *Sweeper) Authorize(ctx context.Context, group *model.Group, account *model.Account) error {
	self, err := s.messenger.GetMember(ctx, group.ID, account.UserID)
	if err != nil {
		return goerr.Wrap(err, "failed to check admin status",
			goerr.V("group_id", group.ID),
			goerr.V("member_id", account.UserID))
	}

	if !self.IsPrivileged() {
		return goerr.Wrap(model.ErrNotGroupAdmin, "cannot clean group",
			goerr.V("group_id", group.ID),
			goerr.V("member_id", account.UserID))
	}

	return nil
}

// ResolveProtected returns the members that must never be removed: everyone the
// platform flags as admin, the group creator found in the first page, and the
// account running the sweep. A nil account only resolves the first two, for
// previewing a group without a session.
func (s *Sweeper) ResolveProtected(ctx context.Context, group *model.Group, account *model.Account) (*model.ProtectedSet, error) {
	admins, err := s.messenger.ListAdmins(ctx, group.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list admins", goerr.V("group_id", group.ID))
	}

	// The creator is not always reported as an admin
	page, err := s.messenger.ListMembers(ctx, group.ID, 0, s.pageSize)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up group creator", goerr.V("group_id", group.ID))
	}
	if page == nil {
		page = &model.MemberPage{}
	}
	creators := lo.Filter(page.Members, func(m *model.Member, _ int) bool {
		return m.IsCreator
	})

	toID := func(m *model.Member, _ int) types.MemberID { return m.ID }
	ids := append(lo.Map(admins, toID), lo.Map(creators, toID)...)
	if account != nil {
		ids = append(ids, account.UserID)
	}

	return model.NewProtectedSet(ids...), nil
}

// Sweep removes all non-protected members of the group. The returned result is
// never nil, even with an error. It is recorded to the repository if any,
// except when there is no account to sweep as.
func (s *Sweeper) Sweep(ctx context.Context, group *model.Group, account *model.Account) (*model.SweepResult, error) {
	logger := ctxlog.From(ctx).With("group_id", group.ID)

	if account == nil {
		result := model.NewSweepResult(group, "")
		err := goerr.Wrap(model.ErrNoAccount, "cannot clean group", goerr.V("group_id", group.ID))
		s.abort(result, err)
		return result, err
	}

	result := model.NewSweepResult(group, account.UserID)
	defer s.save(context.WithoutCancel(ctx), result)

	if err := s.Authorize(ctx, group, account); err != nil {
		s.abort(result, err)
		return result, err
	}

	protected, err := s.ResolveProtected(ctx, group, account)
	if err != nil {
		s.abort(result, err)
		return result, err
	}
	result.Protected = protected.Len()

	logger.Info("Sweep started",
		"sweep_id", result.ID,
		"protected", protected.Len(),
		"page_size", s.pageSize,
	)

	cancelled, err := s.removeMembers(ctx, group, protected, result)
	switch {
	case err != nil && errors.Is(err, context.Canceled):
		result.Reason = "interrupted"
		result.Finish(types.SweepStatusCancelled)
		return result, err
	case err != nil:
		s.abort(result, err)
		return result, err
	case cancelled:
		result.Finish(types.SweepStatusCancelled)
	default:
		result.Finish(types.SweepStatusCompleted)
	}

	logger.Info("Sweep finished",
		"sweep_id", result.ID,
		"status", result.Status,
		"removed", result.Removed,
		"failures", len(result.Failures),
		"duration", result.Duration(),
	)

	return result, nil
}

// removeMembers walks the membership list page by page. It reports whether the
// operator cancelled the sweep.
func (s *Sweeper) removeMembers(ctx context.Context, group *model.Group, protected *model.ProtectedSet, result *model.SweepResult) (bool, error) {
	logger := ctxlog.From(ctx)
	offset := 0

	for {
		page, err := s.messenger.ListMembers(ctx, group.ID, offset, s.pageSize)
		if err != nil {
			return false, goerr.Wrap(err, "failed to list members",
				goerr.V("group_id", group.ID),
				goerr.V("offset", offset))
		}
		result.Pages++
		if page == nil {
			return false, nil
		}

		if result.Total == 0 && page.Total > 0 {
			result.Total = page.Total
			fmt.Fprintf(s.progress, "Total members to process: %d\n", result.Total)
		}

		if len(page.Members) == 0 {
			return false, nil
		}

		logger.Debug("Member page fetched",
			"offset", offset,
			"count", len(page.Members),
		)

		for _, member := range page.Members {
			if protected.Contains(member.ID) {
				logger.Debug("Skip protected member", "member_id", member.ID)
				continue
			}
			// Roles seen on later pages protect as well as the resolved set
			if member.IsPrivileged() {
				logger.Debug("Skip privileged member", "member_id", member.ID)
				continue
			}

			removed := s.removeMember(ctx, group, member, result)

			if err := s.sleep(ctx, RemovalInterval); err != nil {
				return false, err
			}

			if !removed || result.Removed%s.checkpointEvery != 0 {
				continue
			}

			cancelled, err := s.checkpoint(ctx, result)
			if err != nil {
				return false, err
			}
			if cancelled {
				fmt.Fprintln(s.progress, "Operation cancelled.")
				return true, nil
			}
		}

		// Pages may come back shorter than requested near the end of the list
		offset += len(page.Members)
		if page.Total > 0 && offset >= page.Total {
			return false, nil
		}
	}
}

// removeMember issues a single removal call. Failures are recorded and never
// stop the sweep.
func (s *Sweeper) removeMember(ctx context.Context, group *model.Group, member *model.Member, result *model.SweepResult) bool {
	if err := s.messenger.RemoveMember(ctx, group.ID, member.ID); err != nil {
		s.errLog.Record("Failed to remove member", err,
			"group_id", group.ID.String(),
			"member_id", member.ID.String(),
			"member_name", member.DisplayName(),
		)
		result.Failures = append(result.Failures, model.RemovalFailure{
			MemberID:   member.ID,
			MemberName: member.DisplayName(),
			Reason:     err.Error(),
		})
		fmt.Fprintf(s.progress, "Failed to remove %s: check error log\n", member.DisplayName())
		return false
	}

	result.Removed++
	total := result.Total
	if total == 0 {
		total = result.Removed
	}
	fmt.Fprintf(s.progress, "Removed %s (ID: %s) [%d/%d]\n", member.DisplayName(), member.ID, result.Removed, total)
	return true
}

// checkpoint hands control to the operator. It reports whether to cancel.
func (s *Sweeper) checkpoint(ctx context.Context, result *model.SweepResult) (bool, error) {
	if s.operator == nil {
		return false, nil
	}

	action, err := s.operator.Checkpoint(ctx, result.Removed)
	if err != nil {
		return false, goerr.Wrap(err, "failed to read operator action")
	}

	switch action {
	case model.ActionPause:
		result.Status = types.SweepStatusPaused
		if err := s.operator.WaitResume(ctx); err != nil {
			return false, goerr.Wrap(err, "failed to resume sweep")
		}
		result.Status = types.SweepStatusRunning
	case model.ActionCancel:
		return true, nil
	}

	return false, nil
}

func (s *Sweeper) abort(result *model.SweepResult, err error) {
	s.errLog.Record("Sweep aborted", err,
		"group_id", result.GroupID.String(),
		"sweep_id", result.ID.String(),
	)
	result.Reason = err.Error()
	result.Finish(types.SweepStatusAborted)
}

func (s *Sweeper) save(ctx context.Context, result *model.SweepResult) {
	if s.repo == nil {
		return
	}
	if err := s.repo.PutSweep(ctx, result); err != nil {
		ctxlog.From(ctx).Warn("Failed to record sweep",
			"sweep_id", result.ID,
			"error", err,
		)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
