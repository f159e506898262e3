package ledger

import "context"

type StubLedgerRepo struct {
	incomes  map[string][]Entry
	expenses map[string][]Entry
	failWith error
}

func NewStubLedgerRepo() *StubLedgerRepo {
	return &StubLedgerRepo{
		incomes:  map[string][]Entry{},
		expenses: map[string][]Entry{},
	}
}

func (s *StubLedgerRepo) AppendIncome(ctx context.Context, sessionId string, entry Entry) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.incomes[sessionId] = append(s.incomes[sessionId], entry)
	return nil
}

func (s *StubLedgerRepo) AppendExpense(ctx context.Context, sessionId string, entry Entry) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.expenses[sessionId] = append(s.expenses[sessionId], entry)
	return nil
}

func (s *StubLedgerRepo) Incomes(ctx context.Context, sessionId string) ([]Entry, error) {
	return s.incomes[sessionId], nil
}

func (s *StubLedgerRepo) Expenses(ctx context.Context, sessionId string) ([]Entry, error) {
	return s.expenses[sessionId], nil
}

func (s *StubLedgerRepo) FailWith(err error) {
	s.failWith = err
}

func (s *StubLedgerRepo) Cleanup() {
	s.incomes = map[string][]Entry{}
	s.expenses = map[string][]Entry{}
	s.failWith = nil
}
