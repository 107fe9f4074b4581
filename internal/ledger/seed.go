package ledger

const (
	loginBalance        = 1250
	loginTotalEarned    = 5680
	loginTotalWithdrawn = 4430

	signupBonus = 100
)

func loginTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: TxReward, Amount: 50, Status: StatusCompleted, Description: "Daily Login Bonus", Date: "2026-01-11"},
		{ID: "2", Type: TxTask, Amount: 25, Status: StatusCompleted, Description: "Telegram Task Completed", Date: "2026-01-10"},
		{ID: "3", Type: TxLifafa, Amount: 100, Status: StatusCompleted, Description: "Claimed Lifafa Gift", Date: "2026-01-09"},
		{ID: "4", Type: TxWithdraw, Amount: -200, Status: StatusCompleted, Description: "UPI Withdrawal", Date: "2026-01-08"},
		{ID: "5", Type: TxDeposit, Amount: 500, Status: StatusCompleted, Description: "Wallet Recharge", Date: "2026-01-07"},
	}
}

func loginLifafaHistory() []LifafaEntry {
	return []LifafaEntry{
		{ID: "1", Direction: LifafaClaimed, Amount: 100, Code: "GIFT2026", Date: "2026-01-09"},
		{ID: "2", Direction: LifafaCreated, Amount: 200, Code: "MYLIFAFA", Date: "2026-01-05"},
	}
}

func (s *Store) seedLogin(mobile string) User {
	return User{
		ID:             s.ids.UserID(),
		Mobile:         mobile,
		Name:           "User",
		Balance:        loginBalance,
		TotalEarned:    loginTotalEarned,
		TotalWithdrawn: loginTotalWithdrawn,
		Transactions:   loginTransactions(),
		LifafaHistory:  loginLifafaHistory(),
	}
}

func (s *Store) seedSignup(mobile, name string) User {
	return User{
		ID:             s.ids.UserID(),
		Mobile:         mobile,
		Name:           name,
		Balance:        signupBonus,
		TotalEarned:    signupBonus,
		TotalWithdrawn: 0,
		Transactions: []Transaction{
			{
				ID:          s.ids.TxID(),
				Type:        TxReward,
				Amount:      signupBonus,
				Status:      StatusCompleted,
				Description: "Welcome Bonus",
				Date:        s.today(),
			},
		},
		LifafaHistory: []LifafaEntry{},
	}
}
