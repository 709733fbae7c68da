package trip

import (
	"math"
	"sort"
	"strings"
)

// PayerTotal is the amount one companion has paid so far.
type PayerTotal struct {
	Payer  string
	Amount float64
}

// Transfer is a payment that settles part of the shared bill.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// AddExpense appends e to the ledger. An empty payer defaults to the first
// companion.
func (t *Trip) AddExpense(e Expense) {
	if e.Payer == "" && len(t.Companions) > 0 {
		e.Payer = t.Companions[0]
	}
	next := make([]Expense, 0, len(t.Expenses)+1)
	next = append(next, t.Expenses...)
	t.Expenses = append(next, e)
}

// Total is the sum of all expenses in the trip currency.
func (t *Trip) Total() float64 {
	var sum float64
	for _, e := range t.Expenses {
		sum += e.Amount
	}
	return sum
}

// TotalHome converts Total into the home currency using ExchangeRate.
// A zero rate means no conversion is configured.
func (t *Trip) TotalHome() float64 {
	if t.ExchangeRate == 0 {
		return t.Total()
	}
	return t.Total() * t.ExchangeRate
}

// TotalsByPayer groups spending by payer, sorted by payer name.
func (t *Trip) TotalsByPayer() []PayerTotal {
	sums := make(map[string]float64)
	for _, e := range t.Expenses {
		sums[e.Payer] += e.Amount
	}
	out := make([]PayerTotal, 0, len(sums))
	for payer, amount := range sums {
		out = append(out, PayerTotal{Payer: payer, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Payer < out[j].Payer })
	return out
}

// Settle splits the bill equally among companions and returns the
// transfers that even everyone out. Amounts are in cents-rounded trip
// currency. Payers who are not companions are only ever paid back.
func (t *Trip) Settle() []Transfer {
	if len(t.Companions) == 0 || len(t.Expenses) == 0 {
		return nil
	}

	balance := make(map[string]int64) // cents; positive means owed money
	var total int64
	for _, e := range t.Expenses {
		c := toCents(e.Amount)
		balance[e.Payer] += c
		total += c
	}

	members := append([]string(nil), t.Companions...)
	sort.Strings(members)
	n := int64(len(members))
	share, rem := total/n, total%n
	for i, m := range members {
		owe := share
		if int64(i) < rem {
			owe++
		}
		balance[m] -= owe
	}

	type party struct {
		name  string
		cents int64
	}
	var debtors, creditors []party
	for name, c := range balance {
		switch {
		case c < 0:
			debtors = append(debtors, party{name, -c})
		case c > 0:
			creditors = append(creditors, party{name, c})
		}
	}
	byAmount := func(ps []party) {
		sort.Slice(ps, func(i, j int) bool {
			if ps[i].cents != ps[j].cents {
				return ps[i].cents > ps[j].cents
			}
			return ps[i].name < ps[j].name
		})
	}
	byAmount(debtors)
	byAmount(creditors)

	var out []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amt := min(debtors[i].cents, creditors[j].cents)
		out = append(out, Transfer{From: debtors[i].name, To: creditors[j].name, Amount: float64(amt) / 100})
		debtors[i].cents -= amt
		creditors[j].cents -= amt
		if debtors[i].cents == 0 {
			i++
		}
		if creditors[j].cents == 0 {
			j++
		}
	}
	return out
}

// AddCompanion adds a person to the bill split.
func (t *Trip) AddCompanion(name string) error {
	name = strings.TrimSpace(name)
	for _, c := range t.Companions {
		if c == name {
			return ErrCompanionExists
		}
	}
	next := make([]string, 0, len(t.Companions)+1)
	next = append(next, t.Companions...)
	t.Companions = append(next, name)
	return nil
}

// RemoveCompanion drops a person from the bill split. Their past expenses
// stay in the ledger.
func (t *Trip) RemoveCompanion(name string) error {
	next := make([]string, 0, len(t.Companions))
	found := false
	for _, c := range t.Companions {
		if c == name {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return ErrCompanionNotFound
	}
	t.Companions = next
	return nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
