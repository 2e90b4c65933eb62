package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalogue and lending counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := adminContext(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := current.ledger.Statistics(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "books\t%d\n", stats.Books)
			fmt.Fprintf(w, "members\t%d\n", stats.Members)
			fmt.Fprintf(w, "open loans\t%d\n", stats.OpenLoans)
			fmt.Fprintf(w, "overdue loans\t%d\n", stats.OverdueLoans)
			return w.Flush()
		},
	}
}

func newLoansCmd() *cobra.Command {
	var (
		state  string
		member string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List borrow records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := adminContext(cmd.Context())
			if err != nil {
				return err
			}

			input := ledger.ListLoansInput{Limit: limit}
			if state != "" {
				s := domain.LoanState(state)
				input.State = &s
			}
			if member != "" {
				id, err := uuid.Parse(member)
				if err != nil {
					return fmt.Errorf("--member: %w", err)
				}
				input.MemberID = &id
			}

			records, total, err := current.ledger.ListLoans(ctx, input)
			if err != nil {
				return err
			}

			now := time.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LOAN\tBOOK\tMEMBER\tDUE\tSTATE")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.BookID, r.MemberID, r.DueAt.Format(time.DateOnly), loanState(&r, now))
			}
			fmt.Fprintf(w, "\n%d of %d\n", len(records), total)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "open, returned or overdue")
	cmd.Flags().StringVar(&member, "member", "", "only loans of this member id")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows to show")

	return cmd
}

func loanState(r *domain.BorrowRecord, now time.Time) domain.LoanState {
	switch {
	case !r.IsOpen():
		return domain.LoanStateReturned
	case r.IsOverdue(now):
		return domain.LoanStateOverdue
	default:
		return domain.LoanStateOpen
	}
}
