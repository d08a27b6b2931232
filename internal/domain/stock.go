package domain

import "errors"

var (
	ErrStockNotFound   = errors.New("stock not found")
	ErrInvalidStock    = errors.New("invalid stock")
	ErrDuplicateSymbol = errors.New("stock with same symbol already exists")
)

// Stock is the full catalog record for a single listed company. The symbol
// is the unique key and is always stored uppercase.
type Stock struct {
	Symbol      string          `json:"symbol"`
	Profile     Profile         `json:"profile"`
	Price       PriceInfo       `json:"price"`
	Metrics     KeyMetrics      `json:"metrics"`
	Financials  Financials      `json:"financials"`
	News        []NewsItem      `json:"news"`
	Calendar    []CalendarEvent `json:"calendar"`
	Signals     Signals         `json:"signals"`
	Competitors []string        `json:"competitors"`
	Scores      Scores          `json:"scores"`
	Guide       BeginnerGuide   `json:"beginner_guide"`
}

func (s Stock) IsValid() bool {
	return s.Symbol != "" && s.Profile.Symbol == s.Symbol && s.Profile.Name != ""
}

// Profile carries the static company description shown on the stock page.
// Description fields exist in English and Thai.
type Profile struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	Exchange      string  `json:"exchange"`
	Description   string  `json:"description"`
	DescriptionTH string  `json:"description_th"`
	MarketCap     Decimal `json:"market_cap"`
	LogoURL       string  `json:"logo_url"`
	Website       string  `json:"website"`
}

type PriceInfo struct {
	Current       Decimal      `json:"current"`
	Change        Decimal      `json:"change"`
	ChangePercent Decimal      `json:"change_percent"`
	Open          Decimal      `json:"open"`
	High          Decimal      `json:"high"`
	Low           Decimal      `json:"low"`
	PreviousClose Decimal      `json:"previous_close"`
	Week52High    Decimal      `json:"week_52_high"`
	Week52Low     Decimal      `json:"week_52_low"`
	History       []PricePoint `json:"history"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Close Decimal `json:"close"`
}

type KeyMetrics struct {
	PERatio        Decimal     `json:"pe_ratio"`
	PBRatio        Decimal     `json:"pb_ratio"`
	EPS            Decimal     `json:"eps"`
	DividendYield  Decimal     `json:"dividend_yield"`
	Beta           Decimal     `json:"beta"`
	RevenueHistory []YearValue `json:"revenue_history"`
	EPSHistory     []YearValue `json:"eps_history"`
}

type YearValue struct {
	Year  int     `json:"year"`
	Value Decimal `json:"value"`
}

// Financials groups the statement sections. A nil section means the data is
// not available for that company, which is distinct from a statement whose
// figures happen to be zero.
type Financials struct {
	Income       *IncomeStatement   `json:"income,omitempty"`
	BalanceSheet *BalanceSheet      `json:"balance_sheet,omitempty"`
	CashFlow     *CashFlowStatement `json:"cash_flow,omitempty"`
}

type IncomeStatement struct {
	FiscalYear      int     `json:"fiscal_year"`
	Revenue         Decimal `json:"revenue"`
	GrossProfit     Decimal `json:"gross_profit"`
	OperatingIncome Decimal `json:"operating_income"`
	NetIncome       Decimal `json:"net_income"`
}

type BalanceSheet struct {
	FiscalYear         int     `json:"fiscal_year"`
	TotalAssets        Decimal `json:"total_assets"`
	TotalLiabilities   Decimal `json:"total_liabilities"`
	TotalEquity        Decimal `json:"total_equity"`
	CashAndEquivalents Decimal `json:"cash_and_equivalents"`
}

type CashFlowStatement struct {
	FiscalYear   int     `json:"fiscal_year"`
	Operating    Decimal `json:"operating"`
	Investing    Decimal `json:"investing"`
	Financing    Decimal `json:"financing"`
	FreeCashFlow Decimal `json:"free_cash_flow"`
}

type NewsItem struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Summary     string `json:"summary"`
}

type CalendarEvent struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Signals holds the 0-100 technical and fundamental scores together with a
// plain-language verdict (buy/hold/sell).
type Signals struct {
	TechnicalScore   int    `json:"technical_score"`
	FundamentalScore int    `json:"fundamental_score"`
	Verdict          string `json:"verdict"`
}

type Scores struct {
	Overall   int `json:"overall"`
	Value     int `json:"value"`
	Growth    int `json:"growth"`
	Stability int `json:"stability"`
}

// BeginnerGuide is the bilingual guidance block aimed at first-time
// investors.
type BeginnerGuide struct {
	Summary       string `json:"summary"`
	SummaryTH     string `json:"summary_th"`
	RiskLevel     string `json:"risk_level"`
	SuitableFor   string `json:"suitable_for"`
	SuitableForTH string `json:"suitable_for_th"`
}

// SearchEntry is the lightweight projection used for search and
// autocomplete. It is distinct from the full Stock record.
type SearchEntry struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange"`
	LogoURL  string `json:"logo_url"`
}

// Constituent is one row of the S&P 500 listing. The listing is served by a
// separate source so a future upstream integration can replace the bundled
// snapshot without touching the service layer.
type Constituent struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	MarketCap Decimal `json:"market_cap"`
}
