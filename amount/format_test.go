package amount

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	testcases := []struct {
		format string
		amount Amount
		result string
	}{
		{format: "%v", amount: FromRepr(56_000), result: "56"},
		{format: "%s", amount: FromRepr(56_000), result: "56"},
		{format: "%.2v", amount: FromRepr(56_000), result: "56.00"},
		{format: "%.5v", amount: FromRepr(56_000), result: "56.00000"},
		{format: "%05v", amount: FromRepr(56_000), result: "00056"},
		{format: "%05.2v", amount: FromRepr(56_000), result: "56.00"},
		{format: "%05.1v", amount: FromRepr(56_000), result: "056.0"},
		{format: "%.0v", amount: FromRepr(56), result: "0"},
		{format: "%.2v", amount: FromRepr(56), result: "0.06"},
		{format: "%.0v", amount: FromRepr(1_500), result: "2"},
		{format: "%.0v", amount: FromRepr(1_499), result: "1"},
		{format: "%.1v", amount: FromRepr(999), result: "1.0"},
		{format: "%.2v", amount: FromRepr(9_995), result: "10.00"},
		{format: "%.1f", amount: FromRepr(1_250), result: "1.3"},
		{format: "%.3f", amount: FromRepr(1_250), result: "1.250"},
		{format: "%6v", amount: FromRepr(1_500), result: "   1.5"},
		{format: "%-6v|", amount: FromRepr(1_500), result: "1.5   |"},
		{format: "%2v", amount: FromRepr(1_500), result: "1.5"},
		{format: "%+v", amount: FromRepr(30_000), result: "Ͼ 30"},
		{format: "%+.2v", amount: FromRepr(30_000), result: "Ͼ 30.00"},
		{format: "%#v", amount: FromRepr(30_000), result: "amount.FromRepr(30000)"},
		{format: "%d", amount: FromRepr(30_000), result: "30000"},
		{format: "%q", amount: FromRepr(30_500), result: `"30.5"`},
		{format: "%x", amount: FromRepr(30_500), result: "%!x(amount.Amount=30.5)"},
		{format: "%v", amount: Max(), result: "18446744073709551.615"},
		{format: "%.0v", amount: Max(), result: "18446744073709552"},
	}

	for _, c := range testcases {
		t.Run(c.format, func(t *testing.T) {
			assert.Equal(t, c.result, fmt.Sprintf(c.format, c.amount))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.654", FromRepr(1_654).String())
	assert.Equal(t, "1.65", FromRepr(1_650).String())
	assert.Equal(t, "1.6", FromRepr(1_600).String())
	assert.Equal(t, "0.001", FromRepr(1).String())
	assert.Equal(t, "0.01", FromRepr(10).String())
	assert.Equal(t, "2.333", FromRepr(2_333).String())
	assert.Equal(t, "Ͼ 30", fmt.Sprintf("%c %v", Symbol, FromRepr(30_000)))
}

func TestDisplayConfig(t *testing.T) {
	a := FromRepr(1_654)
	assert.Equal(t, "1.654", DisplayConfig{Precision: -1}.FormatAmount(a))
	assert.Equal(t, "1.65", DisplayConfig{Precision: 2}.FormatAmount(a))
	assert.Equal(t, "Ͼ 2", DisplayConfig{Precision: 0, ShowSymbol: true}.FormatAmount(a))
}
