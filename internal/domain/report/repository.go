package report

import "context"

// ReportRepository defines the aggregate read projections the report
// service serves. Pure reads over payroll details; no invariants of its own.
type ReportRepository interface {
	// PeriodSummaryTotals sums hour and money buckets over every detail in
	// a period
	PeriodSummaryTotals(ctx context.Context, periodID int64) (SummaryTotals, error)
}
