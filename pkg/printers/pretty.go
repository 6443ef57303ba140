// Package printers renders one-shot CLI listings of transactions.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ledger/pkg/ledger"
)

// PrettyPrint writes grouped transaction listings to stdout.
type PrettyPrint struct {
	ShowID bool
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Summary prints the page position line under a listing.
func (pp *PrettyPrint) Summary(page, totalPages, total int) {
	c := color.New(color.Faint)
	switch total {
	case 1:
		_, _ = c.Printf("page %d/%d - 1 record\n", page+1, totalPages)
	default:
		_, _ = c.Printf("page %d/%d - %d records\n", page+1, totalPages, total)
	}
}

// Groups prints day sections most recent first, the way the list view groups
// them.
func (pp *PrettyPrint) Groups(groups []ledger.DayGroup) {
	if len(groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, g := range groups {
		pp.day(g.Day.Format("Mon, 02 Jan 2006"))
		pp.Transactions(g.Items...)
	}
}

func (pp *PrettyPrint) day(label string) {
	d := color.New(color.Bold)
	_, _ = d.Println(label)
}

// Transactions prints a table of entities.
func (pp *PrettyPrint) Transactions(items ...ledger.Transaction) {
	if len(items) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range items {
		amount := t.Amount.StringFixed(2)
		if t.Kind == ledger.Expense {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		label := t.Category
		if t.Planned {
			label += " (planned)"
		}
		note := strings.TrimSpace(t.Note)
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Icon, label, amount, note)
		} else {
			tbl.AddRow(t.Icon, label, amount, note)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
