package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "रु 0"},
		{500, "रु 500"},
		{1500, "रु 1,500"},
		{150000, "रु 1,50,000"},
		{12345678, "रु 1,23,45,678"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount), "amount %d", tc.amount)
	}
}

func TestFormatWithCode(t *testing.T) {
	assert.Equal(t, "1,50,000 NPR", FormatWithCode(150000))
	assert.Equal(t, "0 NPR", FormatWithCode(0))
}

func TestFormatBare(t *testing.T) {
	assert.Equal(t, "1,50,000", FormatBare(150000))
	assert.Equal(t, "12,34,56,789", FormatBare(123456789))
	assert.Equal(t, "500", FormatBare(500))
	assert.Equal(t, "0", FormatBare(0))
}

func TestFormatDecimals(t *testing.T) {
	assert.Equal(t, "रु 1,500.00", FormatDecimals(1500, 2))
	assert.Equal(t, "रु 1,500.50", FormatDecimals(1500.5, 2))
}

func TestFormatShort(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "रु 0"},
		{999, "रु 999"},
		{1000, "रु 1.0K"},
		{45000, "रु 45.0K"},
		{100000, "रु 1.0L"},
		{230000, "रु 2.3L"},
		{10000000, "रु 1.0Cr"},
		{15000000, "रु 1.5Cr"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatShort(tc.amount), "amount %d", tc.amount)
	}
}

func TestFromUSD(t *testing.T) {
	assert.Equal(t, int64(0), FromUSD(0))
	assert.Equal(t, int64(134), FromUSD(1))       // 133.50 rounds up
	assert.Equal(t, int64(6675), FromUSD(50))     // exact
	assert.Equal(t, int64(2003), FromUSD(15.0))   // 2002.5 rounds up
	assert.Equal(t, int64(13350), FromUSD(100.0))
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"1500", 1500},
		{"रु 1,500", 1500},
		{"रु1500", 1500},
		{"1,50,000 NPR", 150000},
		{"  2500  ", 2500},
		{"1500.75", 1500},
		{"1500/-", 1500},
		{"abc", 0},
		{"रु", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.input), "input %q", tc.input)
	}
}
