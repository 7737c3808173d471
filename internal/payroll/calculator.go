package payroll

import "github.com/shopspring/decimal"

// Components maps a component name (e.g. houseRent, pf, performance) to
// its amount. A nil map and a missing key both mean zero; partial maps
// are normal, not an error.
type Components map[string]decimal.Decimal

type SalaryTotals struct {
	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal
}

// ComputeSalary derives gross and net pay for one period:
//
//	gross = basic + sum(allowances) + sum(bonuses) + overtime
//	net   = gross - sum(deductions)
//
// Net may be negative when deductions exceed gross; that is a valid
// figure for an approver to act on, not an error. No rounding is applied
// beyond the precision of the inputs; display rounding belongs to the
// presentation layer.
func ComputeSalary(basic decimal.Decimal, allowances, deductions, bonuses Components, overtimeAmount decimal.Decimal) SalaryTotals {
	gross := basic.
		Add(sumComponents(allowances)).
		Add(sumComponents(bonuses)).
		Add(overtimeAmount)

	return SalaryTotals{
		GrossSalary: gross,
		NetSalary:   gross.Sub(sumComponents(deductions)),
	}
}

func sumComponents(c Components) decimal.Decimal {
	total := decimal.Zero
	for _, v := range c {
		total = total.Add(v)
	}
	return total
}
