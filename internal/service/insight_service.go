package service

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-coach/internal/advice"
	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/chat"
	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/logging"
	"github.com/carson-networks/budget-coach/internal/storage"
)

// Advice is everything the suggestions panel shows.
type Advice struct {
	Suggestions []advice.Suggestion
	BudgetPlan  []advice.BudgetLine
	QuickTips   []string
	// HasProfile is false when the advice was computed without questionnaire
	// answers.
	HasProfile bool
}

// InsightService derives reports, advice and chat replies from the stored
// transactions and profile. Nothing it computes is persisted.
type InsightService struct {
	storage   *storage.Storage
	selector  *advice.Selector
	responder *chat.Responder
}

func NewInsightService(store *storage.Storage, currencySymbol string) *InsightService {
	return &InsightService{
		storage:   store,
		selector:  advice.NewSelector(currencySymbol),
		responder: chat.NewResponder(currencySymbol),
	}
}

// load returns the stored transactions and the profile, which is nil before
// the questionnaire has been answered.
func (s *InsightService) load(ctx context.Context) ([]finance.Transaction, *finance.UserProfile, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		defer logData.AddTiming("loadMs")()
	}

	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	var p *finance.UserProfile
	row, err := s.storage.Profiles.Get(ctx)
	switch {
	case err == nil:
		converted := row.ToFinance()
		p = &converted
	case !errors.Is(err, ErrProfileNotFound):
		return nil, nil, err
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rows))
	}
	return toFinance(rows), p, nil
}

func report(txs []finance.Transaction, p *finance.UserProfile) aggregate.Report {
	target := decimal.Zero
	if p != nil {
		target = p.SavingsTarget
	}
	return aggregate.Build(txs, target)
}

// Summary aggregates every stored transaction.
func (s *InsightService) Summary(ctx context.Context) (aggregate.Report, error) {
	txs, p, err := s.load(ctx)
	if err != nil {
		return aggregate.Report{}, err
	}
	return report(txs, p), nil
}

// Advice runs the suggestion rules. Without a profile the rules see zero
// income and no targets, so only transaction-driven advice appears.
func (s *InsightService) Advice(ctx context.Context) (*Advice, error) {
	txs, p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	r := report(txs, p)

	var answers finance.UserProfile
	if p != nil {
		answers = *p
	}
	return &Advice{
		Suggestions: s.selector.Select(r, answers),
		BudgetPlan:  s.selector.BudgetPlan(r, answers),
		QuickTips:   s.selector.QuickTips(r, answers),
		HasProfile:  p != nil,
	}, nil
}

// Chat answers one question against the current numbers.
func (s *InsightService) Chat(ctx context.Context, question string) (chat.Reply, error) {
	txs, p, err := s.load(ctx)
	if err != nil {
		return chat.Reply{}, err
	}
	return s.responder.Respond(question, report(txs, p), p), nil
}

// SuggestedQuestions offers follow-up questions for the chat box.
func (s *InsightService) SuggestedQuestions(ctx context.Context) ([]string, error) {
	txs, p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.responder.SuggestedQuestions(report(txs, p), p), nil
}

// ExportXLSX writes the transactions and their report as a workbook.
func (s *InsightService) ExportXLSX(ctx context.Context, w io.Writer) error {
	txs, p, err := s.load(ctx)
	if err != nil {
		return err
	}
	return ingest.WriteXLSX(w, txs, report(txs, p))
}
