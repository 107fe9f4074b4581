package apiclient

type User struct {
	ID             string `json:"id"`
	Mobile         string `json:"mobile"`
	Name           string `json:"name"`
	Balance        int64  `json:"balance"`
	TotalEarned    int64  `json:"totalEarned"`
	TotalWithdrawn int64  `json:"totalWithdrawn"`
}

type session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Transaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Receipt struct {
	Transaction Transaction `json:"transaction"`
	Balance     int64       `json:"balance"`
}

type LifafaReceipt struct {
	Receipt
	Code string `json:"code"`
}

type ClaimReceipt struct {
	Receipt
	Reward int64 `json:"reward"`
}

type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reward int64  `json:"reward"`
	Status string `json:"status"`
}

type Payout struct {
	User   string `json:"user"`
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	When   string `json:"when"`
}

type PayoutFeed struct {
	TotalPaid int64    `json:"totalPaid"`
	Count     int      `json:"count"`
	Payouts   []Payout `json:"payouts"`
}
