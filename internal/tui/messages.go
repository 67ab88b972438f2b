package tui

import "github.com/afonsocarlos/cofre/internal/model"

// Data loading messages.
type transactionsLoadedMsg struct {
	err          error
	transactions []model.TransactionWithCategory
}

type transactionDeletedMsg struct {
	err error
	id  int64
}
