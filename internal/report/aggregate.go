// Package report rolls order history up into per-period sales rows.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/furnihome/internal/models"
)

type Granularity string

const (
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

var ErrGranularity = errors.New("unknown report granularity")

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return Monthly, nil
	case Monthly, Yearly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrGranularity, s)
}

type Row struct {
	Period string          `json:"period"`
	Count  int             `json:"count"`
	Sales  decimal.Decimal `json:"sales"`

	year, month int
}

// Aggregate groups orders by the UTC year ("2024") or year-month ("2024-3",
// month not zero-padded) of their placement date. Rows come back newest
// period first, compared numerically so "2024-10" precedes "2024-9".
// Every order counts regardless of status.
func Aggregate(orders []models.Order, g Granularity) ([]Row, error) {
	if g != Monthly && g != Yearly {
		return nil, fmt.Errorf("%w: %q", ErrGranularity, g)
	}

	byKey := make(map[string]*Row)
	for _, o := range orders {
		placed := o.PlacedAt.UTC()
		year := placed.Year()
		month := 0
		key := strconv.Itoa(year)
		if g == Monthly {
			month = int(placed.Month())
			key = fmt.Sprintf("%d-%d", year, month)
		}

		row, ok := byKey[key]
		if !ok {
			row = &Row{Period: key, Sales: decimal.Zero, year: year, month: month}
			byKey[key] = row
		}
		row.Count++
		row.Sales = row.Sales.Add(o.Total)
	}

	rows := make([]Row, 0, len(byKey))
	for _, r := range byKey {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].year != rows[j].year {
			return rows[i].year > rows[j].year
		}
		return rows[i].month > rows[j].month
	})
	return rows, nil
}

// Summary is the dashboard headline: revenue and order count over all orders.
type Summary struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	OrderCount   int             `json:"orderCount"`
	ProductCount int64           `json:"productCount"`
}

func Summarize(orders []models.Order) Summary {
	s := Summary{TotalSales: decimal.Zero}
	for _, o := range orders {
		s.TotalSales = s.TotalSales.Add(o.Total)
		s.OrderCount++
	}
	return s
}
