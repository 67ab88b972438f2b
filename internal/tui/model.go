// Package tui implements the interactive transaction history browser.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/ledger"
	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/service"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the bubbletea model for the history browser.
type Model struct {
	ctx     context.Context
	store   service.Storage
	err     error
	status  string
	listing []model.TransactionWithCategory
	table   table.Model
	keys    KeyMap
}

// NewModel creates a history browser over the given store.
func NewModel(ctx context.Context, store service.Storage) Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 11},
		{Title: "Kind", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 16},
		{Title: "Note", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(cli.PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{
		ctx:   ctx,
		store: store,
		table: t,
		keys:  DefaultKeyMap(),
	}
}

// Init starts the initial data load.
func (m Model) Init() tea.Cmd {
	return m.loadTransactions()
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.listing = msg.transactions
		m.table.SetRows(m.rows())
		return m, nil

	case transactionDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted transaction %d", msg.id)
		// The listing is stale after a write; re-query the store
		return m, m.loadTransactions()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			return m, m.loadTransactions()
		case key.Matches(msg, m.keys.Delete):
			if twc, ok := m.selected(); ok {
				return m, m.deleteTransaction(twc.Transaction.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	title := cli.FormatTitle("Transaction History")

	var footer string
	switch {
	case m.err != nil:
		footer = cli.FormatError(m.err.Error())
	case m.status != "":
		footer = cli.FormatSuccess(m.status)
	default:
		summary := ledger.Summarize(ledger.Bare(m.listing))
		footer = cli.SubtleStyle.Render(fmt.Sprintf(
			"%d entries · income %s · expense %s · balance %s",
			len(m.listing),
			cli.FormatAmount(summary.TotalIncome),
			cli.FormatAmount(summary.TotalExpense),
			cli.FormatAmount(summary.Balance),
		))
	}

	help := cli.SubtleStyle.Render("↑/↓ move · d delete · r refresh · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		footer,
		help,
	)
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.listing))
	for _, twc := range m.listing {
		category := "(missing)"
		if cat, ok := twc.Category.Category(); ok {
			category = cat.Name
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(twc.Transaction.ID, 10),
			cli.FormatDate(twc.Transaction.OccurredAt),
			string(twc.Transaction.Kind),
			cli.FormatAmount(twc.Transaction.Amount),
			category,
			twc.Transaction.Note,
		})
	}
	return rows
}

func (m Model) selected() (model.TransactionWithCategory, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.listing) {
		return model.TransactionWithCategory{}, false
	}
	return m.listing[idx], true
}

func (m Model) loadTransactions() tea.Cmd {
	return func() tea.Msg {
		listing, err := m.store.ListTransactions(m.ctx)
		return transactionsLoadedMsg{transactions: listing, err: err}
	}
}

func (m Model) deleteTransaction(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.store.DeleteTransaction(m.ctx, id)
		return transactionDeletedMsg{id: id, err: err}
	}
}

// Run starts the history browser and blocks until the user quits.
func Run(ctx context.Context, store service.Storage) error {
	p := tea.NewProgram(NewModel(ctx, store))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("history browser failed: %w", err)
	}
	return nil
}
