package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$125.50", FormatCurrency(125.5))
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56))
	assert.Equal(t, "($1,234.56)", FormatCurrency(-1234.56))
	assert.Equal(t, "($0.01)", FormatCurrency(-0.01))
}
