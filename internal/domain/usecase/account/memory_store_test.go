package account

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// memoryStore is an in-memory UnitOfWork whose transactions restore a
// snapshot when fn fails. One global mutex stands in for row locks.
type memoryStore struct {
	mu       sync.Mutex
	nextID   uint64
	users    map[uint64]*entity.User
	accounts map[uint64]*entity.Account
	ledger   []*entity.LedgerEntry

	// failLedger makes the next ledger append fail
	failLedger error
}

func newMemoryStore(userIDs ...uint64) *memoryStore {
	s := &memoryStore{
		users:    map[uint64]*entity.User{},
		accounts: map[uint64]*entity.Account{},
	}
	for _, id := range userIDs {
		s.users[id] = &entity.User{ID: id}
	}
	return s
}

type memorySnapshot struct {
	nextID   uint64
	users    map[uint64]entity.User
	accounts map[uint64]entity.Account
	ledger   int
}

func (s *memoryStore) snapshot() memorySnapshot {
	snap := memorySnapshot{
		nextID:   s.nextID,
		users:    map[uint64]entity.User{},
		accounts: map[uint64]entity.Account{},
		ledger:   len(s.ledger),
	}
	for id, u := range s.users {
		cp := *u
		cp.Accounts = append([]string(nil), u.Accounts...)
		snap.users[id] = cp
	}
	for id, a := range s.accounts {
		snap.accounts[id] = *a
	}
	return snap
}

func (s *memoryStore) restore(snap memorySnapshot) {
	s.nextID = snap.nextID
	s.users = map[uint64]*entity.User{}
	for id, u := range snap.users {
		cp := u
		s.users[id] = &cp
	}
	s.accounts = map[uint64]*entity.Account{}
	for id, a := range snap.accounts {
		cp := a
		s.accounts[id] = &cp
	}
	s.ledger = s.ledger[:snap.ledger]
}

func (s *memoryStore) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memoryStore) GetAccountRepository(context.Context) persistence.AccountRepository {
	return memoryAccounts{s}
}

func (s *memoryStore) GetUserRepository(context.Context) persistence.UserRepository {
	return memoryUsers{s}
}

func (s *memoryStore) GetLedgerRepository(context.Context) persistence.LedgerRepository {
	return memoryLedger{s}
}

func (s *memoryStore) ledgerFor(userID uint64) []*entity.LedgerEntry {
	var out []*entity.LedgerEntry
	for _, e := range s.ledger {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

type memoryAccounts struct{ s *memoryStore }

func (r memoryAccounts) owned(userID uint64) []*entity.Account {
	var out []*entity.Account
	for _, a := range r.s.accounts {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memoryAccounts) ListByUserID(_ context.Context, userID uint64) ([]*entity.Account, error) {
	return r.owned(userID), nil
}

func (r memoryAccounts) ListNamesByUserID(_ context.Context, userID uint64) ([]string, error) {
	var names []string
	for _, a := range r.owned(userID) {
		names = append(names, a.AccountName)
	}
	return names, nil
}

func (r memoryAccounts) ExistsByName(_ context.Context, userID uint64, name string) (bool, error) {
	for _, a := range r.s.accounts {
		if a.UserID == userID && a.AccountName == name {
			return true, nil
		}
	}
	return false, nil
}

func (r memoryAccounts) Create(_ context.Context, account *entity.Account) error {
	r.s.nextID++
	account.ID = r.s.nextID
	cp := *account
	r.s.accounts[cp.ID] = &cp
	return nil
}

func (r memoryAccounts) Credit(_ context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error) {
	a, ok := r.s.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, errs.ErrAccountNotFound
	}
	a.AccountBalance = a.AccountBalance.Add(amount)
	cp := *a
	return &cp, nil
}

func (r memoryAccounts) Debit(_ context.Context, userID, accountID uint64, amount decimal.Decimal, allowNegative bool) (*entity.Account, error) {
	a, ok := r.s.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, errs.ErrAccountNotFound
	}
	if !allowNegative && !a.CanDebit(amount) {
		return nil, errs.NewInsufficientBalanceError(accountID, entity.FormatAmount(amount), a.GetBalance())
	}
	a.AccountBalance = a.AccountBalance.Sub(amount)
	cp := *a
	return &cp, nil
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) LockByID(_ context.Context, userID uint64) (*entity.User, error) {
	u, ok := r.s.users[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	cp.Accounts = append([]string(nil), u.Accounts...)
	return &cp, nil
}

func (r memoryUsers) AppendAccountName(_ context.Context, userID uint64, name string) error {
	u, ok := r.s.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.Accounts = append(u.Accounts, name)
	return nil
}

func (r memoryUsers) ReplaceAccountNames(_ context.Context, userID uint64, names []string) error {
	u, ok := r.s.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.Accounts = append([]string(nil), names...)
	return nil
}

func (r memoryUsers) Create(_ context.Context, user *entity.User) error {
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r memoryUsers) Exists(_ context.Context, userID uint64) (bool, error) {
	_, ok := r.s.users[userID]
	return ok, nil
}

type memoryLedger struct{ s *memoryStore }

func (r memoryLedger) Append(_ context.Context, entry *entity.LedgerEntry) error {
	if r.s.failLedger != nil {
		err := r.s.failLedger
		r.s.failLedger = nil
		return err
	}
	cp := *entry
	cp.ID = uint64(len(r.s.ledger) + 1)
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}
