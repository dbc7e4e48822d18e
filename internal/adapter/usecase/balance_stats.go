package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port"
)

// BalanceStatsService is the read path behind the balance endpoints. It
// resolves the requested orgs through the directory, then fans out to
// the ledger and the outstanding-budget calculator concurrently and
// merges the results by org id. The two reads are not isolated from each
// other; results are advisory.
type BalanceStatsService struct {
	ledger      port.LedgerRepository
	outstanding *OutstandingBudgetCalculator
	directory   port.Directory
}

// NewBalanceStatsService wires the service.
func NewBalanceStatsService(ledger port.LedgerRepository, outstanding *OutstandingBudgetCalculator, directory port.Directory) *BalanceStatsService {
	return &BalanceStatsService{ledger: ledger, outstanding: outstanding, directory: directory}
}

// Balance returns the stats for a single org, defaulting to the
// requester's own org. An org that does not resolve under the
// requester's scope is a not-found condition.
func (s *BalanceStatsService) Balance(ctx context.Context, requester domain.Requester, orgID string) (domain.OrgBalance, error) {
	if orgID == "" {
		orgID = requester.OrgID
	}
	if orgID == "" {
		return domain.OrgBalance{}, fmt.Errorf("%w: missing org id", port.ErrValidation)
	}

	visible, err := s.directory.FetchOrgs(ctx, requester, []string{orgID})
	if err != nil {
		return domain.OrgBalance{}, fmt.Errorf("resolve org: %w", err)
	}
	if len(visible) == 0 {
		return domain.OrgBalance{}, fmt.Errorf("%w: %s", port.ErrOrgNotFound, orgID)
	}

	stats, err := s.statsFor(ctx, []string{orgID})
	if err != nil {
		return domain.OrgBalance{}, err
	}
	return stats[orgID], nil
}

// Balances returns stats for several orgs. Orgs that do not resolve
// become nil entries; they never fail the others in the same request.
func (s *BalanceStatsService) Balances(ctx context.Context, requester domain.Requester, orgIDs []string) (map[string]*domain.OrgBalance, error) {
	requested := make([]string, 0, len(orgIDs))
	for _, id := range orgIDs {
		if id != "" {
			requested = append(requested, id)
		}
	}
	if len(requested) == 0 {
		if requester.OrgID == "" {
			return nil, fmt.Errorf("%w: missing org ids", port.ErrValidation)
		}
		requested = []string{requester.OrgID}
	}

	orgs, err := s.directory.FetchOrgs(ctx, requester, requested)
	if err != nil {
		return nil, fmt.Errorf("resolve orgs: %w", err)
	}
	visible := make(map[string]struct{}, len(orgs))
	visibleIDs := make([]string, 0, len(orgs))
	for _, org := range orgs {
		if _, ok := visible[org.ID]; ok {
			continue
		}
		visible[org.ID] = struct{}{}
		visibleIDs = append(visibleIDs, org.ID)
	}

	stats, err := s.statsFor(ctx, visibleIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*domain.OrgBalance, len(requested))
	for _, id := range requested {
		if _, ok := visible[id]; !ok {
			result[id] = nil
			continue
		}
		merged := stats[id]
		result[id] = &merged
	}
	return result, nil
}

// statsFor runs the ledger and outstanding-budget reads concurrently and
// joins them by org id. Either failure aborts the whole request.
func (s *BalanceStatsService) statsFor(ctx context.Context, orgIDs []string) (map[string]domain.OrgBalance, error) {
	if len(orgIDs) == 0 {
		return map[string]domain.OrgBalance{}, nil
	}

	var (
		reports     map[string]domain.BalanceReport
		outstanding map[string]*decimal.Decimal
	)
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		reports, err = s.ledger.BalanceAndSpend(grpCtx, orgIDs)
		return err
	})
	grp.Go(func() error {
		var err error
		outstanding, err = s.outstanding.OutstandingBudget(grpCtx, orgIDs)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]domain.OrgBalance, len(orgIDs))
	for _, org := range orgIDs {
		stat := domain.OrgBalance{}
		if report, ok := reports[org]; ok {
			stat.Balance = report.Balance
			stat.TotalSpend = report.TotalSpend
		}
		if out := outstanding[org]; out != nil {
			stat.OutstandingBudget = *out
		}
		merged[org] = stat
	}
	return merged, nil
}
