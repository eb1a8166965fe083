package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"github.com/secmon-lab/memsweep/pkg/repository"
	"github.com/secmon-lab/memsweep/pkg/usecase"
	"github.com/secmon-lab/memsweep/pkg/utils/logging"
)

// fakeGroup is a static membership list served through a MessengerMock
type fakeGroup struct {
	members []*model.Member
	// pageCap limits returned page length below the requested limit when > 0
	pageCap int
	// hideTotal makes ListMembers report Total = 0
	hideTotal bool
	failures  map[types.MemberID]error

	mu      sync.Mutex
	offsets []int
}

func newFakeGroup(n int) *fakeGroup {
	g := &fakeGroup{failures: map[types.MemberID]error{}}
	for i := 1; i <= n; i++ {
		g.members = append(g.members, &model.Member{
			ID:   types.MemberID(fmt.Sprintf("U%03d", i)),
			Name: fmt.Sprintf("user%d", i),
		})
	}
	return g
}

func (g *fakeGroup) member(id types.MemberID) *model.Member {
	for _, m := range g.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (g *fakeGroup) messenger() *mocks.MessengerMock {
	return &mocks.MessengerMock{
		GetMemberFunc: func(ctx context.Context, groupID types.GroupID, memberID types.MemberID) (*model.Member, error) {
			if m := g.member(memberID); m != nil {
				c := *m
				return &c, nil
			}
			return nil, goerr.New("user_not_in_channel")
		},
		ListAdminsFunc: func(ctx context.Context, groupID types.GroupID) ([]*model.Member, error) {
			var admins []*model.Member
			for _, m := range g.members {
				if m.IsAdmin {
					admins = append(admins, m)
				}
			}
			return admins, nil
		},
		ListMembersFunc: func(ctx context.Context, groupID types.GroupID, offset, limit int) (*model.MemberPage, error) {
			g.mu.Lock()
			g.offsets = append(g.offsets, offset)
			g.mu.Unlock()

			if g.pageCap > 0 && limit > g.pageCap {
				limit = g.pageCap
			}
			page := &model.MemberPage{Total: len(g.members)}
			if g.hideTotal {
				page.Total = 0
			}
			if offset >= len(g.members) {
				return page, nil
			}
			end := offset + limit
			if end > len(g.members) {
				end = len(g.members)
			}
			page.Members = g.members[offset:end]
			return page, nil
		},
		RemoveMemberFunc: func(ctx context.Context, groupID types.GroupID, memberID types.MemberID) error {
			if err, ok := g.failures[memberID]; ok {
				return err
			}
			return nil
		},
	}
}

func continueOperator() *mocks.OperatorMock {
	return &mocks.OperatorMock{
		CheckpointFunc: func(ctx context.Context, removed int) (model.Action, error) {
			return model.ActionContinue, nil
		},
		WaitResumeFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func noSleep(calls *int) func(ctx context.Context, d time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		if calls != nil {
			*calls++
		}
		return nil
	}
}

func removedIDs(messenger *mocks.MessengerMock) []types.MemberID {
	var ids []types.MemberID
	for _, call := range messenger.RemoveMemberCalls() {
		ids = append(ids, call.MemberID)
	}
	return ids
}

var testGroup = &model.Group{ID: "C123", Title: "general"}

// groupWithAdmins builds 25 members where U001 (the operator) is admin and
// creator, U002 and U003 are admins
func groupWithAdmins() (*fakeGroup, *model.Account) {
	g := newFakeGroup(25)
	g.members[0].IsAdmin = true
	g.members[0].IsCreator = true
	g.members[1].IsAdmin = true
	g.members[2].IsAdmin = true
	return g, &model.Account{UserID: "U001", UserName: "user1"}
}

func TestSweeperSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("Full sweep removes everyone except protected members", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		operator := continueOperator()
		var progress bytes.Buffer
		var sleeps int

		sweeper := usecase.NewSweeper(messenger, operator,
			usecase.WithProgress(&progress),
			usecase.WithSleep(noSleep(&sleeps)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 22)
		gt.Equal(t, result.Protected, 3)
		gt.Equal(t, result.Total, 25)
		gt.Equal(t, result.Status, types.SweepStatusCompleted)
		gt.False(t, result.Cancelled())

		removed := removedIDs(messenger)
		gt.A(t, removed).Length(22)
		for _, id := range removed {
			gt.NotEqual(t, id, types.MemberID("U001"))
			gt.NotEqual(t, id, types.MemberID("U002"))
			gt.NotEqual(t, id, types.MemberID("U003"))
		}

		// One delay per removal call, one prompt per 10 removals
		gt.Equal(t, sleeps, 22)
		gt.A(t, operator.CheckpointCalls()).Length(2)
		gt.Equal(t, operator.CheckpointCalls()[0].Removed, 10)
		gt.Equal(t, operator.CheckpointCalls()[1].Removed, 20)

		gt.S(t, progress.String()).Contains("Total members to process: 25")
		gt.S(t, progress.String()).Contains("Removed user4 (ID: U004) [1/25]")
		gt.S(t, progress.String()).Contains("Removed user25 (ID: U025) [22/25]")
	})

	t.Run("Cancel at checkpoint stops further removals", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		operator := continueOperator()
		operator.CheckpointFunc = func(ctx context.Context, removed int) (model.Action, error) {
			return model.ActionCancel, nil
		}

		sweeper := usecase.NewSweeper(messenger, operator, usecase.WithSleep(noSleep(nil)))

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 10)
		gt.True(t, result.Cancelled())
		gt.A(t, messenger.RemoveMemberCalls()).Length(10)

		removed := removedIDs(messenger)
		gt.Equal(t, removed[9], types.MemberID("U013"))
	})

	t.Run("Pause waits for resume and continues", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		operator := continueOperator()
		operator.CheckpointFunc = func(ctx context.Context, removed int) (model.Action, error) {
			if removed == 10 {
				return model.ActionPause, nil
			}
			return model.ActionContinue, nil
		}

		sweeper := usecase.NewSweeper(messenger, operator, usecase.WithSleep(noSleep(nil)))

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 22)
		gt.Equal(t, result.Status, types.SweepStatusCompleted)
		gt.A(t, operator.WaitResumeCalls()).Length(1)
	})

	t.Run("Removal failure is logged and sweep continues", func(t *testing.T) {
		g, account := groupWithAdmins()
		g.failures["U010"] = goerr.New("cant_kick_from_general")
		messenger := g.messenger()
		var progress, errBuf bytes.Buffer
		var sleeps int

		sweeper := usecase.NewSweeper(messenger, continueOperator(),
			usecase.WithProgress(&progress),
			usecase.WithErrorLog(logging.NewErrorLogWithWriter(&errBuf)),
			usecase.WithSleep(noSleep(&sleeps)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 21)
		gt.A(t, messenger.RemoveMemberCalls()).Length(22)
		gt.Equal(t, sleeps, 22)

		gt.A(t, result.Failures).Length(1)
		gt.Equal(t, result.Failures[0].MemberID, types.MemberID("U010"))
		gt.S(t, result.Failures[0].Reason).Contains("cant_kick_from_general")

		gt.S(t, errBuf.String()).Contains("member_id=U010")
		gt.S(t, errBuf.String()).Contains("cant_kick_from_general")
		gt.S(t, progress.String()).Contains("Failed to remove user10")
	})

	t.Run("Failed removals do not trigger checkpoints", func(t *testing.T) {
		g := newFakeGroup(12)
		g.members[0].IsAdmin = true
		for _, m := range g.members[1:] {
			g.failures[m.ID] = goerr.New("restricted_action")
		}
		messenger := g.messenger()
		operator := continueOperator()

		sweeper := usecase.NewSweeper(messenger, operator, usecase.WithSleep(noSleep(nil)))

		result, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U001"})
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 0)
		gt.A(t, result.Failures).Length(11)
		gt.A(t, operator.CheckpointCalls()).Length(0)
	})

	t.Run("Admin lookup failure aborts before any removal", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		messenger.ListAdminsFunc = func(ctx context.Context, groupID types.GroupID) ([]*model.Member, error) {
			return nil, goerr.New("ratelimited")
		}
		var errBuf bytes.Buffer

		sweeper := usecase.NewSweeper(messenger, continueOperator(),
			usecase.WithErrorLog(logging.NewErrorLogWithWriter(&errBuf)),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to list admins")
		gt.Equal(t, result.Status, types.SweepStatusAborted)
		gt.Equal(t, result.Removed, 0)
		gt.A(t, messenger.RemoveMemberCalls()).Length(0)
		gt.S(t, errBuf.String()).Contains("group_id=C123")
	})

	t.Run("Creator lookup failure aborts before any removal", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		messenger.ListMembersFunc = func(ctx context.Context, groupID types.GroupID, offset, limit int) (*model.MemberPage, error) {
			return nil, goerr.New("channel_not_found")
		}

		sweeper := usecase.NewSweeper(messenger, continueOperator(), usecase.WithSleep(noSleep(nil)))

		_, err := sweeper.Sweep(ctx, testGroup, account)
		gt.Error(t, err)
		gt.A(t, messenger.RemoveMemberCalls()).Length(0)
	})

	t.Run("Role query failure aborts before any removal", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		messenger.GetMemberFunc = func(ctx context.Context, groupID types.GroupID, memberID types.MemberID) (*model.Member, error) {
			return nil, goerr.New("invalid_auth")
		}

		sweeper := usecase.NewSweeper(messenger, continueOperator(), usecase.WithSleep(noSleep(nil)))

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to check admin status")
		gt.Equal(t, result.Status, types.SweepStatusAborted)
		gt.A(t, messenger.ListAdminsCalls()).Length(0)
		gt.A(t, messenger.RemoveMemberCalls()).Length(0)
	})

	t.Run("Non admin account cannot sweep", func(t *testing.T) {
		g := newFakeGroup(5)
		g.members[0].IsAdmin = true
		messenger := g.messenger()

		sweeper := usecase.NewSweeper(messenger, continueOperator(), usecase.WithSleep(noSleep(nil)))

		_, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U003"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNotGroupAdmin))
		gt.A(t, messenger.RemoveMemberCalls()).Length(0)
	})

	t.Run("Result is recorded to repository", func(t *testing.T) {
		g, account := groupWithAdmins()
		repo := repository.NewMemory()

		sweeper := usecase.NewSweeper(g.messenger(), continueOperator(),
			usecase.WithRepository(repo),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)

		stored, err := repo.GetSweep(ctx, result.ID)
		gt.NoError(t, err)
		gt.Equal(t, stored.Removed, 22)
		gt.Equal(t, stored.Status, types.SweepStatusCompleted)
		gt.Equal(t, stored.GroupID, testGroup.ID)
		gt.False(t, stored.FinishedAt.IsZero())
	})

	t.Run("Repository failure does not change the outcome", func(t *testing.T) {
		g, account := groupWithAdmins()
		repo := &mocks.RepositoryMock{
			PutSweepFunc: func(ctx context.Context, sweep *model.SweepResult) error {
				return goerr.New("unavailable")
			},
		}

		sweeper := usecase.NewSweeper(g.messenger(), continueOperator(),
			usecase.WithRepository(repo),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 22)
		gt.A(t, repo.PutSweepCalls()).Length(1)
	})

	t.Run("Interrupted context stops the sweep", func(t *testing.T) {
		g, account := groupWithAdmins()
		messenger := g.messenger()
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()

		calls := 0
		sleep := func(ctx context.Context, d time.Duration) error {
			calls++
			if calls == 5 {
				cancel()
				return ctx.Err()
			}
			return nil
		}

		sweeper := usecase.NewSweeper(messenger, continueOperator(), usecase.WithSleep(sleep))

		result, err := sweeper.Sweep(cctx, testGroup, account)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.Equal(t, result.Removed, 5)
		gt.Equal(t, result.Status, types.SweepStatusCancelled)
		gt.A(t, messenger.RemoveMemberCalls()).Length(5)
	})

	t.Run("Nil operator never interrupts", func(t *testing.T) {
		g, account := groupWithAdmins()

		sweeper := usecase.NewSweeper(g.messenger(), nil, usecase.WithSleep(noSleep(nil)))

		result, err := sweeper.Sweep(ctx, testGroup, account)
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 22)
	})
}

func TestSweeperPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("Pages are requested ceil(M/pageSize) times", func(t *testing.T) {
		g := newFakeGroup(250)
		g.members[0].IsAdmin = true
		messenger := g.messenger()

		sweeper := usecase.NewSweeper(messenger, nil,
			usecase.WithPageSize(100),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U001"})
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 249)
		gt.Equal(t, result.Pages, 3)

		// First request belongs to the creator lookup
		gt.Equal(t, g.offsets, []int{0, 0, 100, 200})
	})

	t.Run("Empty page terminates when total is unknown", func(t *testing.T) {
		g := newFakeGroup(250)
		g.members[0].IsAdmin = true
		g.hideTotal = true
		messenger := g.messenger()
		var progress bytes.Buffer

		sweeper := usecase.NewSweeper(messenger, nil,
			usecase.WithPageSize(100),
			usecase.WithProgress(&progress),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U001"})
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 249)
		gt.Equal(t, g.offsets, []int{0, 0, 100, 200, 250})
		gt.S(t, progress.String()).Contains("[249/249]")
	})

	t.Run("Offset advances by returned page length", func(t *testing.T) {
		g := newFakeGroup(70)
		g.members[0].IsAdmin = true
		g.pageCap = 30
		messenger := g.messenger()

		sweeper := usecase.NewSweeper(messenger, nil,
			usecase.WithPageSize(100),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U001"})
		gt.NoError(t, err)
		gt.Equal(t, result.Removed, 69)
		gt.Equal(t, g.offsets, []int{0, 0, 30, 60})
	})

	t.Run("Page failure mid sweep aborts with count so far", func(t *testing.T) {
		g := newFakeGroup(150)
		g.members[0].IsAdmin = true
		messenger := g.messenger()
		list := messenger.ListMembersFunc
		messenger.ListMembersFunc = func(ctx context.Context, groupID types.GroupID, offset, limit int) (*model.MemberPage, error) {
			if offset == 100 {
				return nil, goerr.New("internal_error")
			}
			return list(ctx, groupID, offset, limit)
		}

		sweeper := usecase.NewSweeper(messenger, nil,
			usecase.WithPageSize(100),
			usecase.WithSleep(noSleep(nil)),
		)

		result, err := sweeper.Sweep(ctx, testGroup, &model.Account{UserID: "U001"})
		gt.Error(t, err)
		gt.Equal(t, result.Removed, 99)
		gt.Equal(t, result.Status, types.SweepStatusAborted)
	})
}

func TestSweeperResolveProtected(t *testing.T) {
	ctx := context.Background()

	t.Run("Union of admins, creator and operator", func(t *testing.T) {
		g := newFakeGroup(10)
		g.members[1].IsAdmin = true
		g.members[4].IsCreator = true
		g.members[6].IsAdmin = true
		g.members[6].IsCreator = true

		sweeper := usecase.NewSweeper(g.messenger(), nil)

		protected, err := sweeper.ResolveProtected(ctx, testGroup, &model.Account{UserID: "U010"})
		gt.NoError(t, err)
		gt.Equal(t, protected.IDs(), []types.MemberID{"U002", "U005", "U007", "U010"})
	})

	t.Run("Creator outside first page is not looked up", func(t *testing.T) {
		g := newFakeGroup(20)
		g.members[15].IsCreator = true

		sweeper := usecase.NewSweeper(g.messenger(), nil, usecase.WithPageSize(10))

		protected, err := sweeper.ResolveProtected(ctx, testGroup, nil)
		gt.NoError(t, err)
		gt.Equal(t, protected.Len(), 0)
		gt.Equal(t, g.offsets, []int{0})
	})
}

func TestSweeperSkipsLateCreator(t *testing.T) {
	g := newFakeGroup(20)
	g.members[0].IsAdmin = true
	g.members[15].IsCreator = true
	messenger := g.messenger()

	sweeper := usecase.NewSweeper(messenger, continueOperator(),
		usecase.WithPageSize(10),
		usecase.WithSleep(noSleep(nil)),
	)

	result, err := sweeper.Sweep(context.Background(), testGroup, &model.Account{UserID: "U001"})
	gt.NoError(t, err)
	gt.Equal(t, result.Removed, 18)
	for _, id := range removedIDs(messenger) {
		gt.V(t, id).NotEqual(types.MemberID("U016"))
	}
}

func TestSweeperWithoutAccount(t *testing.T) {
	ctx := context.Background()
	g, _ := groupWithAdmins()
	messenger := g.messenger()
	repo := repository.NewMemory()
	var errLog bytes.Buffer

	sweeper := usecase.NewSweeper(messenger, continueOperator(),
		usecase.WithRepository(repo),
		usecase.WithErrorLog(logging.NewErrorLogWithWriter(&errLog)),
		usecase.WithSleep(noSleep(nil)),
	)

	result, err := sweeper.Sweep(ctx, testGroup, nil)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrNoAccount))
	gt.V(t, result).NotNil()
	gt.Equal(t, result.Status, types.SweepStatusAborted)

	gt.A(t, messenger.GetMemberCalls()).Length(0)
	gt.A(t, messenger.RemoveMemberCalls()).Length(0)
	gt.S(t, errLog.String()).Contains("Sweep aborted")

	sweeps, err := repo.ListSweeps(ctx, 0)
	gt.NoError(t, err)
	gt.A(t, sweeps).Length(0)
}
