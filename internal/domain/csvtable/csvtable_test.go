package csvtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_QuotedFieldWithComma(t *testing.T) {
	table, err := Parse("Manufacturer,Product Type,Warranty Status,Service Call Fee\nNeff,Oven,\"In Warranty\",\"$120, inc GST\"\n")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "Neff", row["Manufacturer"])
	assert.Equal(t, "Oven", row["Product Type"])
	assert.Equal(t, "In Warranty", row["Warranty Status"])
	assert.Equal(t, "$120, inc GST", row["Service Call Fee"])
}

func TestParse_EmptyHeader(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \r\n"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrMalformedInput)
	}
}

func TestParse_RowShapes(t *testing.T) {
	table, err := Parse("\n a , b ,c\r\n1,2\r\n\r\n4,5,6,7\r\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, Row{"a": "1", "b": "2", "c": ""}, table.Rows[0])
	assert.Equal(t, Row{"a": "4", "b": "5", "c": "6"}, table.Rows[1])
}

func TestSplitLine_DoubledQuoteIsTwoToggles(t *testing.T) {
	// The inner "" closes and reopens the quote, so the comma stays quoted.
	assert.Equal(t, []string{"say hi, there", "x"}, SplitLine(`"say ""hi, there""",x`))
	assert.Equal(t, []string{"a", "", "c"}, SplitLine("a,,c"))
}

func TestParse_HeaderOnly(t *testing.T) {
	table, err := Parse("Manufacturer,Product Type")
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}
