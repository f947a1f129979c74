// Package expensecmd handles business expense tracking commands
package expensecmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/phoneman1224/ebay-reseller-manager/cmd/root"
	"github.com/phoneman1224/ebay-reseller-manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	amount     string
	date       string
	category   string
	note       string
	deductible bool
)

// Cmd represents the expense command
var Cmd = &cobra.Command{
	Use:   "expense",
	Short: "Track business expenses",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a business expense",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	Run:   listFunc,
}

func init() {
	addCmd.Flags().StringVar(&amount, "amount", "", "Expense amount in dollars")
	addCmd.Flags().StringVar(&date, "date", "", "Expense date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&category, "category", "", "Expense category")
	addCmd.Flags().StringVar(&note, "note", "", "Free-form note")
	addCmd.Flags().BoolVar(&deductible, "deductible", true, "Whether the expense is tax deductible")
	_ = addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amount, err)
	}

	when := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		when, err = time.Parse("2006-01-02", date)
		if err != nil {
			root.Log.Fatalf("Invalid date %q, expected YYYY-MM-DD: %v", date, err)
		}
	}

	store := root.OpenStore()
	defer store.Close()

	id, err := store.AddExpense(models.Expense{
		Date:          when,
		Amount:        amt,
		Category:      category,
		Note:          note,
		TaxDeductible: deductible,
	})
	if err != nil {
		root.Log.Fatalf("Failed to record expense: %v", err)
	}
	fmt.Printf("Recorded expense #%d: $%s\n", id, amt.StringFixed(2))
}

func listFunc(cmd *cobra.Command, args []string) {
	store := root.OpenStore()
	defer store.Close()

	expenses, err := store.ListExpenses()
	if err != nil {
		root.Log.Fatalf("Failed to list expenses: %v", err)
	}

	total := decimal.Zero
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCATEGORY\tNOTE")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t$%s\t%s\t%s\n",
			e.ID, e.Date.Format("2006-01-02"), e.Amount.StringFixed(2), e.Category, e.Note)
		total = total.Add(e.Amount)
	}
	w.Flush()
	fmt.Printf("%d expense(s), $%s total\n", len(expenses), total.StringFixed(2))
}
