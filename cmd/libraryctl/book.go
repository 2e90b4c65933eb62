package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
)

func newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage catalogue rows",
	}
	cmd.AddCommand(newBookAddCmd(), newBookListCmd())
	return cmd
}

func newBookAddCmd() *cobra.Command {
	var (
		input ledger.AddBookInput
		year  int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalogue row with every copy on the shelf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := adminContext(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				input.PublishYear = &year
			}

			book, err := current.ledger.AddOrReplaceBook(ctx, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s %q (%d copies)\n", book.ID, book.Title, book.Total)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&input.Title, "title", "", "book title")
	f.StringVar(&input.Author, "author", "", "book author")
	f.StringVar(&input.Category, "category", "", "catalogue category")
	f.StringVar(&input.ISBN, "isbn", "", "ISBN")
	f.StringVar(&input.Publisher, "publisher", "", "publisher")
	f.IntVar(&year, "year", 0, "publication year")
	f.StringVar(&input.Location, "location", "", "shelf location")
	f.StringVar(&input.Introduction, "intro", "", "short introduction")
	f.IntVar(&input.Total, "total", 1, "number of copies")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}

func newBookListCmd() *cobra.Command {
	var (
		category string
		status   string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue rows, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := ledger.ListBooksInput{Limit: limit, Offset: offset}
			if category != "" {
				input.Category = &category
			}
			if status != "" {
				s := domain.BookStatus(status)
				input.Status = &s
			}

			books, err := current.ledger.ListBooks(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCATEGORY\tAVAILABLE\tSTATUS")
			for _, b := range books {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
					b.ID, b.Title, b.Author, b.Category, b.Available, b.Total, b.Status())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only this category")
	cmd.Flags().StringVar(&status, "status", "", "AVAILABLE or BORROWED")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")

	return cmd
}
