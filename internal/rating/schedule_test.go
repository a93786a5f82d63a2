package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/insrate/insrate/internal/domain"
)

func TestExpandPaymentSchedule(t *testing.T) {
	engine := testEngine(nil)
	annual := decimal.NewFromInt(1000)

	tests := []struct {
		frequency          domain.PaymentFrequency
		wantInstallments   int
		wantTotal          float64
		wantPerInstallment float64
	}{
		{domain.PayAnnual, 1, 1000.00, 1000.00},
		{domain.PaySemiAnnual, 2, 1020.00, 510.00},
		{domain.PayQuarterly, 4, 1030.00, 257.50},
		{domain.PayMonthly, 12, 1050.00, 87.50},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			schedule := engine.ExpandPaymentSchedule(annual, tt.frequency)
			assert.Equal(t, tt.frequency, schedule.Frequency)
			assert.Equal(t, tt.wantInstallments, schedule.Installments)
			assert.True(t, schedule.TotalPayable.Equal(decimal.NewFromFloat(tt.wantTotal)),
				"total: got %s", schedule.TotalPayable)
			assert.True(t, schedule.PerInstallment.Equal(decimal.NewFromFloat(tt.wantPerInstallment)),
				"per installment: got %s", schedule.PerInstallment)
		})
	}
}

func TestExpandPaymentScheduleRoundsInstallments(t *testing.T) {
	engine := testEngine(nil)

	// 1010.88 x 1.05 = 1061.424 -> 1061.42; /12 = 88.452 -> 88.45.
	schedule := engine.ExpandPaymentSchedule(decimal.NewFromFloat(1010.88), domain.PayMonthly)
	assert.True(t, schedule.TotalPayable.Equal(decimal.NewFromFloat(1061.42)),
		"total: got %s", schedule.TotalPayable)
	assert.True(t, schedule.PerInstallment.Equal(decimal.NewFromFloat(88.45)),
		"per installment: got %s", schedule.PerInstallment)
}

func TestExpandPaymentScheduleUnknownFrequency(t *testing.T) {
	engine := testEngine(nil)

	schedule := engine.ExpandPaymentSchedule(decimal.NewFromInt(1000), "fortnightly")
	assert.Equal(t, domain.PayAnnual, schedule.Frequency)
	assert.Equal(t, 1, schedule.Installments)
	assert.True(t, schedule.TotalPayable.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, uint64(1), engine.Stats.UnknownFrequency.Load())
}
