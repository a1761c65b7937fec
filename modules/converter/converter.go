// Package converter serves the currency converter: euro amounts converted
// into the fixed pre-euro currencies.
package converter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/parse"
	"github.com/omniweb-dev/omniweb/web"
)

// currency is one pre-euro currency with its fixed conversion rate.
type currency struct {
	Name   string
	Symbol string
	Rate   float64 // units per euro
}

// The official fixed rates from the euro introduction.
var currencies = []currency{
	{Name: "Deutsche Mark", Symbol: "DM", Rate: 1.95583},
	{Name: "Österreichischer Schilling", Symbol: "öS", Rate: 13.7603},
	{Name: "Französischer Franc", Symbol: "F", Rate: 6.55957},
	{Name: "Italienische Lira", Symbol: "₤", Rate: 1936.27},
}

// Row is one converted amount for display.
type Row struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Convert renders the euro amount in every supported currency.
func Convert(euro float64) []Row {
	rows := make([]Row, 0, len(currencies))
	for _, c := range currencies {
		rows = append(rows, Row{
			Name:   c.Name,
			Amount: formatAmount(euro*c.Rate) + " " + c.Symbol,
		})
	}
	return rows
}

// formatAmount renders an amount with two decimals and a German decimal
// comma.
func formatAmount(amount float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", amount), ".", ",")
}

var argsShape = parse.Object("converter", nil,
	parse.Opt("euro", parse.Float(), 1.0),
)

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Währungsrechner",
			Description: "Ein Rechner für alte europäische Währungen",
			Path:        "/waehrungs-rechner",
			Keywords:    []string{"Währung", "Euro", "D-Mark", "Umrechnung"},
		},
		SubPages: []page.PageInfo{
			{
				Name:        "Währungsrechner-API",
				Description: "Umrechnung als JSON",
				Path:        "/api/waehrungs-rechner",
			},
		},
		Aliases: []string{"/währungs-rechner", "/currency-converter"},
		Handlers: []page.Rule{
			{Pattern: "/waehrungs-rechner", Handler: &htmlHandler{}, Name: "converter"},
			{Pattern: "/api/waehrungs-rechner", Handler: &apiHandler{}, Name: "converter-api"},
		},
	}
}

type converterPage struct {
	EuroStr string
	Rows    []Row
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	args, ok := web.Args(w, r, argsShape)
	if !ok {
		return
	}
	euro := args.Float("euro")
	web.Render(w, r, "waehrungs-rechner", converterPage{
		EuroStr: formatAmount(euro),
		Rows:    Convert(euro),
	})
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	args, ok := web.Args(w, r, argsShape)
	if !ok {
		return
	}
	euro := args.Float("euro")
	web.RespondJSON(w, http.StatusOK, map[string]any{
		"euro":       euro,
		"currencies": Convert(euro),
	})
}
