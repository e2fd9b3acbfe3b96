package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pointsledger/internal/config"
)

type UserRepo interface {
	ListIDs(ctx context.Context, afterID int, limit uint32) ([]int, error)
}

type BalanceReader interface {
	CompareLedger(ctx context.Context, userID int) (counter, ledger int, err error)
}

// Drift is a user whose stored counter disagrees with the ledger.
type Drift struct {
	UserID  int
	Counter int
	Ledger  int
}

type Report struct {
	Checked int
	Drifts  []Drift
}

// Service periodically replays the ledger for every user and reports users
// whose stored counter has drifted. It never repairs anything.
type Service struct {
	users      UserRepo
	balances   BalanceReader
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	stopped    chan struct{}

	inFlight sync.Map
}

func New(cfg *config.Config, users UserRepo, balances BalanceReader) *Service {
	limit := uint32(cfg.ReconcileBatch)
	if limit == 0 {
		limit = 500
	}
	return &Service{
		users:      users,
		balances:   balances,
		limit:      limit,
		workerPool: NewWorkerPool(4),
		interval:   cfg.ReconcileInterval,
		stopped:    make(chan struct{}),
	}
}

// Start runs the reconciler every interval until ctx is done. A run that is
// still going when the next one is due delays it instead of overlapping.
func (s *Service) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			if _, err := s.Run(ctx); err != nil {
				zap.L().Error("reconcile run failed", zap.Error(err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return err
	}
	sched.Start()
	zap.L().Info("reconciler started", zap.Duration("interval", s.interval))

	go func() {
		defer close(s.stopped)
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			zap.L().Error("reconciler shutdown failed", zap.Error(err))
		}
		s.workerPool.Close()
		zap.L().Info("reconciler stopped")
	}()
	return nil
}

// Stopped is closed once the scheduler has shut down after Start's ctx ends.
func (s *Service) Stopped() <-chan struct{} {
	return s.stopped
}

// Run checks every user once, page by page.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	var mu sync.Mutex

	afterID := 0
	for {
		ids, err := s.users.ListIDs(ctx, afterID, atomic.LoadUint32(&s.limit))
		if err != nil {
			return report, err
		}
		if len(ids) == 0 {
			break
		}
		afterID = ids[len(ids)-1]

		var wg sync.WaitGroup
		var g errgroup.Group
		for _, id := range ids {
			id := id
			if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
				continue
			}
			wg.Add(1)
			g.Go(func() error {
				err := s.workerPool.AddTask(ctx, func() error {
					defer wg.Done()
					defer s.inFlight.Delete(id)

					drift, err := s.check(ctx, id)
					if err != nil {
						return err
					}
					mu.Lock()
					report.Checked++
					if drift != nil {
						report.Drifts = append(report.Drifts, *drift)
					}
					mu.Unlock()
					return nil
				})
				if err != nil {
					wg.Done()
					s.inFlight.Delete(id)
				}
				return err
			})
		}
		err = g.Wait()
		wg.Wait()
		if err != nil {
			return report, err
		}
	}

	zap.L().Info("reconcile finished",
		zap.Int("checked", report.Checked),
		zap.Int("drifted", len(report.Drifts)),
	)
	return report, nil
}

func (s *Service) check(ctx context.Context, userID int) (*Drift, error) {
	counter, ledger, err := s.balances.CompareLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	if counter == ledger {
		return nil, nil
	}
	zap.L().Warn("balance drift",
		zap.Int("user_id", userID),
		zap.Int("counter", counter),
		zap.Int("ledger", ledger),
	)
	return &Drift{UserID: userID, Counter: counter, Ledger: ledger}, nil
}
