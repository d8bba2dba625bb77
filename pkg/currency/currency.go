// Package currency centralizes Nepali Rupee formatting, parsing and USD
// conversion for the SewaLink platform.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Symbol is the Devanagari rupee sign shown before amounts.
	Symbol = "रु"

	// Code is the ISO 4217 currency code.
	Code = "NPR"

	// Name is the display name of the currency.
	Name = "Nepali Rupee"

	// ExchangeRate is the approximate conversion rate: 1 USD = 133.50 NPR.
	// Used only by the one-shot migration and backward-compatible helpers.
	ExchangeRate = 133.50
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

// printer groups digits in the South Asian lakh/crore style. The en-IN
// locale keeps Latin digits; ne-NP would render Devanagari numerals, which
// the web clients do not expect.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as "रु 1,50,000".
func Format(amount int64) string {
	return Symbol + " " + group(amount, 0)
}

// FormatWithCode renders an amount as "1,50,000 NPR".
func FormatWithCode(amount int64) string {
	return group(amount, 0) + " " + Code
}

// FormatBare renders an amount with grouping but no symbol or code, as
// "1,50,000".
func FormatBare(amount int64) string {
	return group(amount, 0)
}

// FormatDecimals renders an amount with a fixed number of fraction digits,
// e.g. FormatDecimals(1500, 2) == "रु 1,500.00".
func FormatDecimals(amount float64, decimals int) string {
	return Symbol + " " + printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// FormatShort abbreviates large amounts the way listing cards do:
// crores ("रु 1.5Cr"), lakhs ("रु 2.3L") and thousands ("रु 45.0K").
func FormatShort(amount int64) string {
	switch {
	case amount >= crore:
		return fmt.Sprintf("%s %.1fCr", Symbol, float64(amount)/crore)
	case amount >= lakh:
		return fmt.Sprintf("%s %.1fL", Symbol, float64(amount)/lakh)
	case amount >= 1000:
		return fmt.Sprintf("%s %.1fK", Symbol, float64(amount)/1000)
	default:
		return fmt.Sprintf("%s %d", Symbol, amount)
	}
}

// FromUSD converts a USD amount to whole rupees, rounding to the nearest
// rupee.
func FromUSD(usd float64) int64 {
	if usd == 0 {
		return 0
	}
	return int64(math.Round(usd * ExchangeRate))
}

// Parse extracts a whole-rupee amount from user input, tolerating the symbol,
// the currency code, digit grouping and whitespace. Unparseable input yields
// zero, matching how the web forms treat it.
func Parse(input string) int64 {
	cleaned := strings.NewReplacer(Symbol, "", Code, "", ",", "", " ", "", "\u00a0", "").Replace(input)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	if v, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return v
	}

	// Salvage a leading integer from inputs like "1500.75" or "1500/-".
	end := 0
	for end < len(cleaned) && (cleaned[end] >= '0' && cleaned[end] <= '9' || (end == 0 && cleaned[end] == '-')) {
		end++
	}
	if end == 0 || cleaned[:end] == "-" {
		return 0
	}
	v, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func group(amount int64, decimals int) string {
	return printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}
