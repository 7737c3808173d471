package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestComputeSalary(t *testing.T) {
	totals := ComputeSalary(
		d(50000),
		Components{"houseRent": d(5000), "transport": d(2500)},
		Components{"pf": d(6000), "tax": d(2500)},
		Components{"performance": d(5000)},
		d(1000),
	)

	assert.True(t, totals.GrossSalary.Equal(d(63500)), "gross = %s", totals.GrossSalary)
	assert.True(t, totals.NetSalary.Equal(d(55000)), "net = %s", totals.NetSalary)
}

func TestComputeSalary_NilComponents(t *testing.T) {
	totals := ComputeSalary(d(30000), nil, nil, nil, decimal.Zero)

	assert.True(t, totals.GrossSalary.Equal(d(30000)))
	assert.True(t, totals.NetSalary.Equal(d(30000)))
}

func TestComputeSalary_NegativeNet(t *testing.T) {
	totals := ComputeSalary(
		d(1000),
		nil,
		Components{"loanRepayment": d(5000)},
		nil,
		decimal.Zero,
	)

	assert.True(t, totals.GrossSalary.Equal(d(1000)))
	assert.True(t, totals.NetSalary.Equal(d(-4000)), "negative net is a valid figure, got %s", totals.NetSalary)
}

func TestComputeSalary_FractionalAmounts(t *testing.T) {
	totals := ComputeSalary(
		decimal.RequireFromString("1000.50"),
		Components{"meal": decimal.RequireFromString("99.99")},
		Components{"tax": decimal.RequireFromString("0.49")},
		nil,
		decimal.Zero,
	)

	assert.True(t, totals.GrossSalary.Equal(decimal.RequireFromString("1100.49")))
	assert.True(t, totals.NetSalary.Equal(decimal.RequireFromString("1100.00")))
}

func TestComponentMaps_Roundtrip(t *testing.T) {
	rows := []PayrollComponent{
		{ComponentType: ComponentAllowance, ComponentName: "houseRent", Amount: d(5000)},
		{ComponentType: ComponentDeduction, ComponentName: "pf", Amount: d(6000)},
		{ComponentType: ComponentBonus, ComponentName: "performance", Amount: d(5000)},
	}

	allowances, deductions, bonuses := componentMaps(rows)
	assert.True(t, allowances["houseRent"].Equal(d(5000)))
	assert.True(t, deductions["pf"].Equal(d(6000)))
	assert.True(t, bonuses["performance"].Equal(d(5000)))
}

func TestValidStatusTransition(t *testing.T) {
	assert.True(t, validStatusTransition(StatusPending, StatusProcessing))
	assert.True(t, validStatusTransition(StatusProcessing, StatusPaid))
	assert.True(t, validStatusTransition(StatusProcessing, StatusFailed))
	assert.True(t, validStatusTransition(StatusFailed, StatusProcessing))

	assert.False(t, validStatusTransition(StatusPending, StatusPaid))
	assert.False(t, validStatusTransition(StatusPaid, StatusProcessing))
	assert.False(t, validStatusTransition(StatusPaid, StatusPending))
}
