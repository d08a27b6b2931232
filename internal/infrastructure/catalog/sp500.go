package catalog

import "github.com/finlearn/finlearn-api/internal/domain"

// sp500Constituents is a bundled snapshot of the index used by the
// paginated listing endpoint. The catalog sorts it by symbol at
// construction, so the order here does not matter.
func sp500Constituents() []domain.Constituent {
	return []domain.Constituent{
		{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", MarketCap: dec("3450000000000")},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", MarketCap: dec("3310000000000")},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", MarketCap: dec("3020000000000")},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Communication Services", MarketCap: dec("2120000000000")},
		{Symbol: "AMZN", Name: "Amazon.com, Inc.", Sector: "Consumer Cyclical", MarketCap: dec("1980000000000")},
		{Symbol: "META", Name: "Meta Platforms, Inc.", Sector: "Communication Services", MarketCap: dec("1340000000000")},
		{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc.", Sector: "Financial Services", MarketCap: dec("985000000000")},
		{Symbol: "TSLA", Name: "Tesla, Inc.", Sector: "Consumer Cyclical", MarketCap: dec("702000000000")},
		{Symbol: "LLY", Name: "Eli Lilly and Company", Sector: "Healthcare", MarketCap: dec("865000000000")},
		{Symbol: "AVGO", Name: "Broadcom Inc.", Sector: "Technology", MarketCap: dec("772000000000")},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services", MarketCap: dec("608000000000")},
		{Symbol: "V", Name: "Visa Inc.", Sector: "Financial Services", MarketCap: dec("560000000000")},
		{Symbol: "UNH", Name: "UnitedHealth Group Incorporated", Sector: "Healthcare", MarketCap: dec("531000000000")},
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy", MarketCap: dec("512000000000")},
		{Symbol: "MA", Name: "Mastercard Incorporated", Sector: "Financial Services", MarketCap: dec("450000000000")},
		{Symbol: "PG", Name: "The Procter & Gamble Company", Sector: "Consumer Defensive", MarketCap: dec("401000000000")},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare", MarketCap: dec("389000000000")},
		{Symbol: "COST", Name: "Costco Wholesale Corporation", Sector: "Consumer Defensive", MarketCap: dec("386000000000")},
		{Symbol: "HD", Name: "The Home Depot, Inc.", Sector: "Consumer Cyclical", MarketCap: dec("365000000000")},
		{Symbol: "ORCL", Name: "Oracle Corporation", Sector: "Technology", MarketCap: dec("361000000000")},
		{Symbol: "ABBV", Name: "AbbVie Inc.", Sector: "Healthcare", MarketCap: dec("341000000000")},
		{Symbol: "WMT", Name: "Walmart Inc.", Sector: "Consumer Defensive", MarketCap: dec("614000000000")},
		{Symbol: "NFLX", Name: "Netflix, Inc.", Sector: "Communication Services", MarketCap: dec("294000000000")},
		{Symbol: "KO", Name: "The Coca-Cola Company", Sector: "Consumer Defensive", MarketCap: dec("292000000000")},
		{Symbol: "BAC", Name: "Bank of America Corporation", Sector: "Financial Services", MarketCap: dec("312000000000")},
		{Symbol: "CRM", Name: "Salesforce, Inc.", Sector: "Technology", MarketCap: dec("252000000000")},
		{Symbol: "CVX", Name: "Chevron Corporation", Sector: "Energy", MarketCap: dec("268000000000")},
		{Symbol: "MRK", Name: "Merck & Co., Inc.", Sector: "Healthcare", MarketCap: dec("287000000000")},
		{Symbol: "AMD", Name: "Advanced Micro Devices, Inc.", Sector: "Technology", MarketCap: dec("238000000000")},
		{Symbol: "PEP", Name: "PepsiCo, Inc.", Sector: "Consumer Defensive", MarketCap: dec("231000000000")},
		{Symbol: "LIN", Name: "Linde plc", Sector: "Basic Materials", MarketCap: dec("221000000000")},
		{Symbol: "TMO", Name: "Thermo Fisher Scientific Inc.", Sector: "Healthcare", MarketCap: dec("212000000000")},
		{Symbol: "ADBE", Name: "Adobe Inc.", Sector: "Technology", MarketCap: dec("241000000000")},
		{Symbol: "MCD", Name: "McDonald's Corporation", Sector: "Consumer Cyclical", MarketCap: dec("207000000000")},
		{Symbol: "CSCO", Name: "Cisco Systems, Inc.", Sector: "Technology", MarketCap: dec("200000000000")},
		{Symbol: "ACN", Name: "Accenture plc", Sector: "Technology", MarketCap: dec("211000000000")},
		{Symbol: "ABT", Name: "Abbott Laboratories", Sector: "Healthcare", MarketCap: dec("196000000000")},
		{Symbol: "WFC", Name: "Wells Fargo & Company", Sector: "Financial Services", MarketCap: dec("198000000000")},
		{Symbol: "DHR", Name: "Danaher Corporation", Sector: "Healthcare", MarketCap: dec("185000000000")},
		{Symbol: "INTU", Name: "Intuit Inc.", Sector: "Technology", MarketCap: dec("178000000000")},
		{Symbol: "GE", Name: "GE Aerospace", Sector: "Industrials", MarketCap: dec("180000000000")},
		{Symbol: "QCOM", Name: "QUALCOMM Incorporated", Sector: "Technology", MarketCap: dec("189000000000")},
		{Symbol: "TXN", Name: "Texas Instruments Incorporated", Sector: "Technology", MarketCap: dec("182000000000")},
		{Symbol: "VZ", Name: "Verizon Communications Inc.", Sector: "Communication Services", MarketCap: dec("173000000000")},
		{Symbol: "IBM", Name: "International Business Machines Corporation", Sector: "Technology", MarketCap: dec("176000000000")},
		{Symbol: "CAT", Name: "Caterpillar Inc.", Sector: "Industrials", MarketCap: dec("168000000000")},
		{Symbol: "DIS", Name: "The Walt Disney Company", Sector: "Communication Services", MarketCap: dec("166000000000")},
		{Symbol: "PFE", Name: "Pfizer Inc.", Sector: "Healthcare", MarketCap: dec("162000000000")},
		{Symbol: "AMGN", Name: "Amgen Inc.", Sector: "Healthcare", MarketCap: dec("171000000000")},
		{Symbol: "CMCSA", Name: "Comcast Corporation", Sector: "Communication Services", MarketCap: dec("152000000000")},
		{Symbol: "NOW", Name: "ServiceNow, Inc.", Sector: "Technology", MarketCap: dec("170000000000")},
		{Symbol: "UNP", Name: "Union Pacific Corporation", Sector: "Industrials", MarketCap: dec("148000000000")},
		{Symbol: "NKE", Name: "NIKE, Inc.", Sector: "Consumer Cyclical", MarketCap: dec("119000000000")},
		{Symbol: "RTX", Name: "RTX Corporation", Sector: "Industrials", MarketCap: dec("155000000000")},
		{Symbol: "LOW", Name: "Lowe's Companies, Inc.", Sector: "Consumer Cyclical", MarketCap: dec("139000000000")},
		{Symbol: "SPGI", Name: "S&P Global Inc.", Sector: "Financial Services", MarketCap: dec("151000000000")},
		{Symbol: "T", Name: "AT&T Inc.", Sector: "Communication Services", MarketCap: dec("142000000000")},
		{Symbol: "GS", Name: "The Goldman Sachs Group, Inc.", Sector: "Financial Services", MarketCap: dec("158000000000")},
		{Symbol: "HON", Name: "Honeywell International Inc.", Sector: "Industrials", MarketCap: dec("135000000000")},
		{Symbol: "BA", Name: "The Boeing Company", Sector: "Industrials", MarketCap: dec("107000000000")},
	}
}
