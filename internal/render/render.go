package render

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"MarketTerminal/internal/model"
)

// Title is shown above every frame.
const Title = "📊 GLOBAL MARKET TERMINAL"

// Header holds the fixed column names.
var Header = table.Row{"Asset", "Price", "24h Change", "Status"}

// Style is the directional styling of a row.
type Style int

const (
	StyleNegative Style = iota
	StylePositive
)

// StyleFor returns the style for a percent change. Only strictly positive
// changes get the positive style.
func StyleFor(changePercent float64) Style {
	if changePercent > 0 {
		return StylePositive
	}
	return StyleNegative
}

// Glyph is the status arrow for the style.
func (s Style) Glyph() string {
	if s == StylePositive {
		return "▲"
	}
	return "▼"
}

// Colors is the terminal colour for the style.
func (s Style) Colors() text.Colors {
	if s == StylePositive {
		return text.Colors{text.FgGreen}
	}
	return text.Colors{text.FgRed}
}

// Row is one table row before colour is applied.
type Row struct {
	Asset  string
	Price  string
	Change string
	Status string
	Style  Style
}

// Rows formats quotes in order.
func Rows(quotes []model.AssetQuote) []Row {
	rows := make([]Row, 0, len(quotes))
	for _, q := range quotes {
		style := StyleFor(q.ChangePercent)
		rows = append(rows, Row{
			Asset:  q.Name,
			Price:  FormatPrice(q.Price),
			Change: FormatPercent(q.ChangePercent),
			Status: style.Glyph(),
			Style:  style,
		})
	}
	return rows
}

// FormatPrice renders a dollar amount with thousands separators and two
// decimals, rounding half to even on the exact binary value.
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		// NaN and Inf
		return "$" + sign + s
	}
	return "$" + sign + humanize.BigComma(n) + "." + frac
}

// FormatPercent renders a percent change with two decimals.
func FormatPercent(change float64) string {
	return fmt.Sprintf("%.2f%%", change)
}

// Table builds a new table for quotes. It never mutates its input and returns
// a fresh writer on every call; nil or empty input gives a header-only table.
func Table(quotes []model.AssetQuote) table.Writer {
	t := table.NewWriter()
	t.SetTitle(Title)
	t.SetStyle(terminalStyle())
	t.AppendHeader(Header)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.FgWhite}},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 4, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})

	for _, r := range Rows(quotes) {
		colors := r.Style.Colors()
		t.AppendRow(table.Row{r.Asset, r.Price, colors.Sprint(r.Change), colors.Sprint(r.Status)})
	}
	return t
}

func terminalStyle() table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Color.Header = text.Colors{text.Bold, text.FgCyan}
	style.Color.Border = text.Colors{text.Bold, text.FgBlue}
	style.Color.Separator = text.Colors{text.Bold, text.FgBlue}
	style.Title.Colors = text.Colors{text.Bold, text.FgBlue}
	style.Title.Align = text.AlignCenter
	return style
}
