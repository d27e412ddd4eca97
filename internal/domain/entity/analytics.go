package entity

import "github.com/shopspring/decimal"

// MonthlyCategoryAmount is an amount grouped by month and category name.
type MonthlyCategoryAmount struct {
	Month        int
	CategoryName string
	Amount       decimal.Decimal
}

// MonthlyAmount is an amount grouped by month.
type MonthlyAmount struct {
	Month  int
	Amount decimal.Decimal
}
