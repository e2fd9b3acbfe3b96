package transactionservice

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/GlebRadaev/pointsledger/internal/promotion"
	"github.com/GlebRadaev/pointsledger/internal/service/balanceservice"
)

// memStore is an in-memory stand-in for the PostgreSQL schema. Begin serializes
// units of work behind one mutex and restores a snapshot when fn fails, which
// gives the engine the same all-or-nothing commit it gets from the database.
type memStore struct {
	mu         sync.Mutex
	users      map[int]domain.User
	txs        []domain.Transaction
	promotions map[int]domain.Promotion
	usages     map[[2]int]domain.PromotionUsage
	events     map[int]domain.Event
	organizers map[[2]int]bool
	guests     map[[2]int]domain.EventGuest

	// failAddPoints makes AddPoints fail for the given user id.
	failAddPoints map[int]error
}

type memTxKey struct{}

var errPointsCheck = errors.New(`new row for relation "users" violates check constraint "users_points_check"`)

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[int]domain.User),
		promotions:    make(map[int]domain.Promotion),
		usages:        make(map[[2]int]domain.PromotionUsage),
		events:        make(map[int]domain.Event),
		organizers:    make(map[[2]int]bool),
		guests:        make(map[[2]int]domain.EventGuest),
		failAddPoints: make(map[int]error),
	}
}

type memSnapshot struct {
	users  map[int]domain.User
	txs    []domain.Transaction
	usages map[[2]int]domain.PromotionUsage
	events map[int]domain.Event
}

func (m *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:  maps.Clone(m.users),
		txs:    slices.Clone(m.txs),
		usages: maps.Clone(m.usages),
		events: maps.Clone(m.events),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.users = s.users
	m.txs = s.txs
	m.usages = s.usages
	m.events = s.events
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshot()
	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

// guard takes the store lock for calls made outside Begin.
func (m *memStore) guard(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *memStore) engine() *Service {
	return New(m, memUsers{m}, memTxs{m}, memPromotions{m}, memEvents{m}, balanceservice.New(memBalances{m}))
}

func (m *memStore) addUser(u domain.User) {
	m.users[u.ID] = u
}

// seed appends an already committed ledger row and keeps the counter in step.
func (m *memStore) seed(tx domain.Transaction) domain.Transaction {
	tx.ID = len(m.txs) + 1
	m.txs = append(m.txs, tx)
	if tx.Credited() {
		u := m.users[tx.UserID]
		u.Points += tx.Amount
		m.users[tx.UserID] = u
	}
	return tx
}

func (m *memStore) points(userID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].Points
}

func (m *memStore) creditedFromLedger(userID int) int {
	total := 0
	for _, tx := range m.txs {
		if tx.UserID == userID && tx.Credited() {
			total += tx.Amount
		}
	}
	return total
}

type memUsers struct{ *memStore }

func (s memUsers) FindByID(ctx context.Context, id int) (*domain.User, error) {
	defer s.guard(ctx)()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s memUsers) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return s.FindByID(ctx, id)
}

func (s memUsers) AddPoints(ctx context.Context, userID int, delta int) (int, error) {
	defer s.guard(ctx)()
	if err := s.failAddPoints[userID]; err != nil {
		return 0, err
	}
	u, ok := s.users[userID]
	if !ok {
		return 0, domain.NotFound("user", userID)
	}
	if u.Points+delta < 0 {
		return 0, errPointsCheck
	}
	u.Points += delta
	s.users[userID] = u
	return u.Points, nil
}

type memTxs struct{ *memStore }

func (s memTxs) Create(ctx context.Context, tx *domain.Transaction) error {
	defer s.guard(ctx)()
	tx.ID = len(s.txs) + 1
	s.txs = append(s.txs, *tx)
	return nil
}

func (s memTxs) CreateBatch(ctx context.Context, txs []domain.Transaction) error {
	defer s.guard(ctx)()
	for i := range txs {
		txs[i].ID = len(s.txs) + 1
		s.txs = append(s.txs, txs[i])
	}
	return nil
}

func (s memTxs) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	defer s.guard(ctx)()
	if id <= 0 || id > len(s.txs) {
		return nil, nil
	}
	tx := s.txs[id-1]
	return &tx, nil
}

func (s memTxs) FindByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	return s.FindByID(ctx, id)
}

func (s memTxs) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	defer s.guard(ctx)()
	var txs []domain.Transaction
	for i := len(s.txs) - 1; i >= 0; i-- {
		if s.txs[i].UserID == userID {
			txs = append(txs, s.txs[i])
		}
	}
	return txs, nil
}

func (s memTxs) MarkProcessed(ctx context.Context, id int, processedBy int) error {
	defer s.guard(ctx)()
	tx := &s.txs[id-1]
	if tx.Kind != domain.KindRedemption || tx.ProcessedBy != nil {
		return domain.ErrAlreadyProcessed
	}
	tx.ProcessedBy = &processedBy
	return nil
}

func (s memTxs) SetSuspicious(ctx context.Context, id int, value bool) error {
	defer s.guard(ctx)()
	if id <= 0 || id > len(s.txs) {
		return domain.NotFound("transaction", id)
	}
	s.txs[id-1].Suspicious = value
	return nil
}

type memPromotions struct{ *memStore }

func (s memPromotions) FindByIDs(ctx context.Context, ids []int) ([]domain.Promotion, error) {
	defer s.guard(ctx)()
	var found []domain.Promotion
	for _, id := range ids {
		if p, ok := s.promotions[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (s memPromotions) UsedByUser(ctx context.Context, userID int, ids []int) (map[int]bool, error) {
	defer s.guard(ctx)()
	used := make(map[int]bool)
	for _, id := range ids {
		if _, ok := s.usages[[2]int{userID, id}]; ok {
			used[id] = true
		}
	}
	return used, nil
}

func (s memPromotions) RecordUsage(ctx context.Context, usage domain.PromotionUsage) error {
	defer s.guard(ctx)()
	key := [2]int{usage.UserID, usage.PromotionID}
	if _, ok := s.usages[key]; ok {
		return &promotion.Error{Err: domain.ErrAlreadyUsed, PromotionID: usage.PromotionID}
	}
	s.usages[key] = usage
	return nil
}

type memEvents struct{ *memStore }

func (s memEvents) FindByIDForUpdate(ctx context.Context, id int) (*domain.Event, error) {
	defer s.guard(ctx)()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s memEvents) IsOrganizer(ctx context.Context, eventID, userID int) (bool, error) {
	defer s.guard(ctx)()
	return s.organizers[[2]int{eventID, userID}], nil
}

func (s memEvents) FindGuest(ctx context.Context, eventID, userID int) (*domain.EventGuest, error) {
	defer s.guard(ctx)()
	g, ok := s.guests[[2]int{eventID, userID}]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (s memEvents) CheckedInGuests(ctx context.Context, eventID int) ([]int, error) {
	defer s.guard(ctx)()
	var ids []int
	for key, g := range s.guests {
		if key[0] == eventID && g.CheckedIn {
			ids = append(ids, g.UserID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (s memEvents) SpendPoints(ctx context.Context, eventID, total int) (*domain.Event, error) {
	defer s.guard(ctx)()
	e := s.events[eventID]
	if e.PointsRemain < total {
		return nil, &domain.InsufficientFundsError{Requested: total}
	}
	e.PointsRemain -= total
	e.PointsAwarded += total
	s.events[eventID] = e
	return &e, nil
}

type memBalances struct{ *memStore }

func (s memBalances) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	defer s.guard(ctx)()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	pending := s.pending(userID)
	return &domain.Balance{
		UserID:            userID,
		Credited:          u.Points,
		PendingRedemption: pending,
		Available:         u.Points - pending,
	}, nil
}

func (s memBalances) GetPendingRedemption(ctx context.Context, userID int) (int, error) {
	defer s.guard(ctx)()
	return s.pending(userID), nil
}

func (s memBalances) GetLedgerCheck(ctx context.Context, userID int) (int, int, error) {
	defer s.guard(ctx)()
	u, ok := s.users[userID]
	if !ok {
		return 0, 0, domain.NotFound("user", userID)
	}
	return u.Points, s.creditedFromLedger(userID), nil
}

func (s memBalances) pending(userID int) int {
	total := 0
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Kind == domain.KindRedemption && tx.ProcessedBy == nil {
			total += tx.Redeemed
		}
	}
	return total
}
