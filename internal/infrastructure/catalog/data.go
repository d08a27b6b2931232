package catalog

import "github.com/finlearn/finlearn-api/internal/domain"

// dec shortens static decimal literals. MustDecimal is safe here because
// every literal is fixed at compile time.
func dec(s string) domain.Decimal { return domain.MustDecimal(s) }

// Default builds the catalog shipped with the app. Figures are a bundled
// snapshot for education, not live market data.
func Default() (*Catalog, error) {
	return New(defaultStocks(), defaultPopular, sp500Constituents())
}

// defaultPopular is the curated landing-page selection. The order here is
// the order clients render.
var defaultPopular = []string{"AAPL", "MSFT", "GOOGL", "NVDA", "TSLA"}

func defaultStocks() []domain.Stock {
	return []domain.Stock{
		{
			Symbol: "AAPL",
			Profile: domain.Profile{
				Symbol:        "AAPL",
				Name:          "Apple Inc.",
				Sector:        "Technology",
				Industry:      "Consumer Electronics",
				Exchange:      "NASDAQ",
				Description:   "Apple designs and sells the iPhone, Mac, iPad and wearables, and runs a growing services business around them.",
				DescriptionTH: "แอปเปิลออกแบบและจำหน่าย iPhone, Mac, iPad และอุปกรณ์สวมใส่ พร้อมธุรกิจบริการที่เติบโตต่อเนื่อง",
				MarketCap:     dec("3450000000000"),
				LogoURL:       "https://logo.finlearn.app/aapl.png",
				Website:       "https://www.apple.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("228.52"),
				Change:        dec("1.73"),
				ChangePercent: dec("0.76"),
				Open:          dec("226.80"),
				High:          dec("229.10"),
				Low:           dec("226.05"),
				PreviousClose: dec("226.79"),
				Week52High:    dec("237.49"),
				Week52Low:     dec("164.08"),
				History: []domain.PricePoint{
					{Date: "2025-08-22", Close: dec("224.90")},
					{Date: "2025-08-25", Close: dec("226.10")},
					{Date: "2025-08-26", Close: dec("225.45")},
					{Date: "2025-08-27", Close: dec("227.30")},
					{Date: "2025-08-28", Close: dec("226.79")},
					{Date: "2025-08-29", Close: dec("228.52")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("34.7"),
				PBRatio:       dec("51.2"),
				EPS:           dec("6.59"),
				DividendYield: dec("0.44"),
				Beta:          dec("1.24"),
				RevenueHistory: []domain.YearValue{
					{Year: 2022, Value: dec("394328000000")},
					{Year: 2023, Value: dec("383285000000")},
					{Year: 2024, Value: dec("391035000000")},
				},
				EPSHistory: []domain.YearValue{
					{Year: 2022, Value: dec("6.11")},
					{Year: 2023, Value: dec("6.13")},
					{Year: 2024, Value: dec("6.59")},
				},
			},
			Financials: domain.Financials{
				Income: &domain.IncomeStatement{
					FiscalYear:      2024,
					Revenue:         dec("391035000000"),
					GrossProfit:     dec("180683000000"),
					OperatingIncome: dec("123216000000"),
					NetIncome:       dec("93736000000"),
				},
				BalanceSheet: &domain.BalanceSheet{
					FiscalYear:         2024,
					TotalAssets:        dec("364980000000"),
					TotalLiabilities:   dec("308030000000"),
					TotalEquity:        dec("56950000000"),
					CashAndEquivalents: dec("29943000000"),
				},
				CashFlow: &domain.CashFlowStatement{
					FiscalYear:   2024,
					Operating:    dec("118254000000"),
					Investing:    dec("2935000000"),
					Financing:    dec("-121983000000"),
					FreeCashFlow: dec("108807000000"),
				},
			},
			News: []domain.NewsItem{
				{
					Title:       "Apple expands services lineup ahead of autumn event",
					Source:      "FinLearn Digest",
					URL:         "https://news.finlearn.app/aapl/services-expansion",
					PublishedAt: "2025-08-27",
					Summary:     "Subscription revenue keeps offsetting slower hardware cycles.",
				},
				{
					Title:       "iPhone demand steady in Asia despite tariff noise",
					Source:      "FinLearn Digest",
					URL:         "https://news.finlearn.app/aapl/asia-demand",
					PublishedAt: "2025-08-20",
					Summary:     "Channel checks point to stable sell-through across the region.",
				},
			},
			Calendar: []domain.CalendarEvent{
				{Date: "2025-10-30", Name: "Q4 FY2025 earnings"},
				{Date: "2025-11-07", Name: "Dividend ex-date"},
			},
			Signals: domain.Signals{
				TechnicalScore:   72,
				FundamentalScore: 84,
				Verdict:          "hold",
			},
			Competitors: []string{"MSFT", "GOOGL", "SSNLF"},
			Scores:      domain.Scores{Overall: 82, Value: 58, Growth: 76, Stability: 91},
			Guide: domain.BeginnerGuide{
				Summary:       "A cash-rich giant with loyal customers. Growth is slower than smaller tech names, but so are the swings.",
				SummaryTH:     "บริษัทยักษ์ใหญ่ที่มีเงินสดมากและลูกค้าภักดี เติบโตช้ากว่าหุ้นเทคขนาดเล็ก แต่ราคาก็ผันผวนน้อยกว่าเช่นกัน",
				RiskLevel:     "moderate",
				SuitableFor:   "First-time investors who want a large, well-known company.",
				SuitableForTH: "นักลงทุนมือใหม่ที่ต้องการบริษัทขนาดใหญ่ที่รู้จักกันดี",
			},
		},
		{
			Symbol: "MSFT",
			Profile: domain.Profile{
				Symbol:        "MSFT",
				Name:          "Microsoft Corporation",
				Sector:        "Technology",
				Industry:      "Software - Infrastructure",
				Exchange:      "NASDAQ",
				Description:   "Microsoft builds Windows, Office and the Azure cloud platform, and is a leading investor in applied AI.",
				DescriptionTH: "ไมโครซอฟท์พัฒนา Windows, Office และแพลตฟอร์มคลาวด์ Azure และเป็นผู้ลงทุนรายใหญ่ด้าน AI",
				MarketCap:     dec("3310000000000"),
				LogoURL:       "https://logo.finlearn.app/msft.png",
				Website:       "https://www.microsoft.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("445.12"),
				Change:        dec("-2.31"),
				ChangePercent: dec("-0.52"),
				Open:          dec("447.90"),
				High:          dec("449.05"),
				Low:           dec("443.60"),
				PreviousClose: dec("447.43"),
				Week52High:    dec("468.35"),
				Week52Low:     dec("362.90"),
				History: []domain.PricePoint{
					{Date: "2025-08-22", Close: dec("441.80")},
					{Date: "2025-08-25", Close: dec("444.25")},
					{Date: "2025-08-26", Close: dec("446.70")},
					{Date: "2025-08-27", Close: dec("448.10")},
					{Date: "2025-08-28", Close: dec("447.43")},
					{Date: "2025-08-29", Close: dec("445.12")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("37.8"),
				PBRatio:       dec("12.4"),
				EPS:           dec("11.80"),
				DividendYield: dec("0.72"),
				Beta:          dec("0.90"),
				RevenueHistory: []domain.YearValue{
					{Year: 2022, Value: dec("198270000000")},
					{Year: 2023, Value: dec("211915000000")},
					{Year: 2024, Value: dec("245122000000")},
				},
				EPSHistory: []domain.YearValue{
					{Year: 2022, Value: dec("9.65")},
					{Year: 2023, Value: dec("9.68")},
					{Year: 2024, Value: dec("11.80")},
				},
			},
			Financials: domain.Financials{
				Income: &domain.IncomeStatement{
					FiscalYear:      2024,
					Revenue:         dec("245122000000"),
					GrossProfit:     dec("171008000000"),
					OperatingIncome: dec("109433000000"),
					NetIncome:       dec("88136000000"),
				},
				BalanceSheet: &domain.BalanceSheet{
					FiscalYear:         2024,
					TotalAssets:        dec("512163000000"),
					TotalLiabilities:   dec("243686000000"),
					TotalEquity:        dec("268477000000"),
					CashAndEquivalents: dec("75543000000"),
				},
				CashFlow: &domain.CashFlowStatement{
					FiscalYear:   2024,
					Operating:    dec("118548000000"),
					Investing:    dec("-96970000000"),
					Financing:    dec("-37757000000"),
					FreeCashFlow: dec("74071000000"),
				},
			},
			News: []domain.NewsItem{
				{
					Title:       "Azure growth reaccelerates on AI workloads",
					Source:      "FinLearn Digest",
					URL:         "https://news.finlearn.app/msft/azure-ai",
					PublishedAt: "2025-08-26",
					Summary:     "Cloud consumption trends remain the key metric for the stock.",
				},
			},
			Calendar: []domain.CalendarEvent{
				{Date: "2025-10-28", Name: "Q1 FY2026 earnings"},
			},
			Signals: domain.Signals{
				TechnicalScore:   65,
				FundamentalScore: 88,
				Verdict:          "buy",
			},
			Competitors: []string{"GOOGL", "AMZN", "ORCL"},
			Scores:      domain.Scores{Overall: 85, Value: 55, Growth: 82, Stability: 93},
			Guide: domain.BeginnerGuide{
				Summary:       "Diversified software and cloud leader. Revenue is mostly recurring, which keeps results predictable.",
				SummaryTH:     "ผู้นำซอฟต์แวร์และคลาวด์ที่หลากหลาย รายได้ส่วนใหญ่เป็นแบบประจำ ทำให้ผลประกอบการคาดการณ์ได้",
				RiskLevel:     "moderate",
				SuitableFor:   "Investors who want tech exposure with steadier earnings.",
				SuitableForTH: "นักลงทุนที่ต้องการหุ้นเทคที่มีกำไรสม่ำเสมอ",
			},
		},
		{
			Symbol: "GOOGL",
			Profile: domain.Profile{
				Symbol:        "GOOGL",
				Name:          "Alphabet Inc.",
				Sector:        "Communication Services",
				Industry:      "Internet Content & Information",
				Exchange:      "NASDAQ",
				Description:   "Alphabet is the parent of Google Search, YouTube, Android and Google Cloud.",
				DescriptionTH: "อัลฟาเบทเป็นบริษัทแม่ของ Google Search, YouTube, Android และ Google Cloud",
				MarketCap:     dec("2120000000000"),
				LogoURL:       "https://logo.finlearn.app/googl.png",
				Website:       "https://abc.xyz",
			},
			Price: domain.PriceInfo{
				Current:       dec("171.30"),
				Change:        dec("0.95"),
				ChangePercent: dec("0.56"),
				Open:          dec("170.60"),
				High:          dec("172.05"),
				Low:           dec("169.80"),
				PreviousClose: dec("170.35"),
				Week52High:    dec("193.31"),
				Week52Low:     dec("130.67"),
				History: []domain.PricePoint{
					{Date: "2025-08-25", Close: dec("169.40")},
					{Date: "2025-08-26", Close: dec("170.10")},
					{Date: "2025-08-27", Close: dec("171.20")},
					{Date: "2025-08-28", Close: dec("170.35")},
					{Date: "2025-08-29", Close: dec("171.30")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("23.5"),
				PBRatio:       dec("6.8"),
				EPS:           dec("7.29"),
				DividendYield: dec("0.47"),
				Beta:          dec("1.03"),
				RevenueHistory: []domain.YearValue{
					{Year: 2023, Value: dec("307394000000")},
					{Year: 2024, Value: dec("350018000000")},
				},
				EPSHistory: []domain.YearValue{
					{Year: 2023, Value: dec("5.80")},
					{Year: 2024, Value: dec("7.29")},
				},
			},
			Financials: domain.Financials{
				Income: &domain.IncomeStatement{
					FiscalYear:      2024,
					Revenue:         dec("350018000000"),
					GrossProfit:     dec("203712000000"),
					OperatingIncome: dec("112390000000"),
					NetIncome:       dec("100118000000"),
				},
			},
			News: []domain.NewsItem{
				{
					Title:       "Search ad pricing holds up against AI rivals",
					Source:      "FinLearn Digest",
					URL:         "https://news.finlearn.app/googl/search-pricing",
					PublishedAt: "2025-08-24",
					Summary:     "Advertisers keep budgets with Google despite new entrants.",
				},
			},
			Calendar: []domain.CalendarEvent{
				{Date: "2025-10-29", Name: "Q3 2025 earnings"},
			},
			Signals: domain.Signals{
				TechnicalScore:   58,
				FundamentalScore: 81,
				Verdict:          "hold",
			},
			Competitors: []string{"MSFT", "META", "AMZN"},
			Scores:      domain.Scores{Overall: 78, Value: 69, Growth: 74, Stability: 84},
			Guide: domain.BeginnerGuide{
				Summary:       "Dominant in search advertising with a cheaper valuation than most big-tech peers.",
				SummaryTH:     "ครองตลาดโฆษณาบนเสิร์ชเอนจิน และมีราคาถูกกว่าหุ้นเทคใหญ่ส่วนมาก",
				RiskLevel:     "moderate",
				SuitableFor:   "Value-minded investors comfortable with regulatory headlines.",
				SuitableForTH: "นักลงทุนสายเน้นคุณค่าที่รับข่าวด้านกฎระเบียบได้",
			},
		},
		{
			Symbol: "AMZN",
			Profile: domain.Profile{
				Symbol:        "AMZN",
				Name:          "Amazon.com, Inc.",
				Sector:        "Consumer Cyclical",
				Industry:      "Internet Retail",
				Exchange:      "NASDAQ",
				Description:   "Amazon runs the world's largest online marketplace and the AWS cloud business.",
				DescriptionTH: "แอมะซอนดำเนินธุรกิจตลาดออนไลน์ที่ใหญ่ที่สุดในโลกและธุรกิจคลาวด์ AWS",
				MarketCap:     dec("1980000000000"),
				LogoURL:       "https://logo.finlearn.app/amzn.png",
				Website:       "https://www.amazon.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("186.40"),
				Change:        dec("2.10"),
				ChangePercent: dec("1.14"),
				Open:          dec("184.50"),
				High:          dec("187.00"),
				Low:           dec("183.95"),
				PreviousClose: dec("184.30"),
				Week52High:    dec("201.20"),
				Week52Low:     dec("139.52"),
				History: []domain.PricePoint{
					{Date: "2025-08-27", Close: dec("183.70")},
					{Date: "2025-08-28", Close: dec("184.30")},
					{Date: "2025-08-29", Close: dec("186.40")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("39.2"),
				PBRatio:       dec("7.9"),
				EPS:           dec("4.76"),
				DividendYield: dec("0"),
				Beta:          dec("1.15"),
			},
			Signals: domain.Signals{
				TechnicalScore:   70,
				FundamentalScore: 75,
				Verdict:          "hold",
			},
			Competitors: []string{"MSFT", "GOOGL", "BABA"},
			Scores:      domain.Scores{Overall: 74, Value: 48, Growth: 85, Stability: 76},
			Guide: domain.BeginnerGuide{
				Summary:       "Retail margins are thin but AWS is highly profitable. Pays no dividend; gains come from growth.",
				SummaryTH:     "กำไรฝั่งค้าปลีกบาง แต่ AWS ทำกำไรสูง ไม่จ่ายปันผล ผลตอบแทนมาจากการเติบโต",
				RiskLevel:     "moderate",
				SuitableFor:   "Growth investors with a multi-year horizon.",
				SuitableForTH: "นักลงทุนสายเติบโตที่ถือยาวได้หลายปี",
			},
		},
		{
			Symbol: "NVDA",
			Profile: domain.Profile{
				Symbol:        "NVDA",
				Name:          "NVIDIA Corporation",
				Sector:        "Technology",
				Industry:      "Semiconductors",
				Exchange:      "NASDAQ",
				Description:   "NVIDIA designs the GPUs powering gaming, data centers and the current wave of AI training.",
				DescriptionTH: "เอ็นวิเดียออกแบบ GPU สำหรับเกม ดาต้าเซ็นเตอร์ และการเทรน AI ยุคปัจจุบัน",
				MarketCap:     dec("3020000000000"),
				LogoURL:       "https://logo.finlearn.app/nvda.png",
				Website:       "https://www.nvidia.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("123.74"),
				Change:        dec("-4.12"),
				ChangePercent: dec("-3.22"),
				Open:          dec("127.20"),
				High:          dec("128.05"),
				Low:           dec("122.90"),
				PreviousClose: dec("127.86"),
				Week52High:    dec("140.76"),
				Week52Low:     dec("39.23"),
				History: []domain.PricePoint{
					{Date: "2025-08-27", Close: dec("128.30")},
					{Date: "2025-08-28", Close: dec("127.86")},
					{Date: "2025-08-29", Close: dec("123.74")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("58.3"),
				PBRatio:       dec("52.1"),
				EPS:           dec("2.13"),
				DividendYield: dec("0.03"),
				Beta:          dec("1.68"),
				RevenueHistory: []domain.YearValue{
					{Year: 2023, Value: dec("26974000000")},
					{Year: 2024, Value: dec("60922000000")},
				},
			},
			Financials: domain.Financials{
				Income: &domain.IncomeStatement{
					FiscalYear:      2024,
					Revenue:         dec("60922000000"),
					GrossProfit:     dec("44301000000"),
					OperatingIncome: dec("32972000000"),
					NetIncome:       dec("29760000000"),
				},
			},
			News: []domain.NewsItem{
				{
					Title:       "Data center orders stretch into next year",
					Source:      "FinLearn Digest",
					URL:         "https://news.finlearn.app/nvda/backlog",
					PublishedAt: "2025-08-28",
					Summary:     "Supply remains the constraint, not demand.",
				},
			},
			Calendar: []domain.CalendarEvent{
				{Date: "2025-11-19", Name: "Q3 FY2026 earnings"},
			},
			Signals: domain.Signals{
				TechnicalScore:   54,
				FundamentalScore: 79,
				Verdict:          "hold",
			},
			Competitors: []string{"AMD", "INTC", "AVGO"},
			Scores:      domain.Scores{Overall: 76, Value: 32, Growth: 96, Stability: 61},
			Guide: domain.BeginnerGuide{
				Summary:       "Extraordinary growth, extraordinary expectations. The price already assumes years of AI spending.",
				SummaryTH:     "เติบโตอย่างก้าวกระโดด แต่ความคาดหวังก็สูงมาก ราคาสะท้อนการลงทุน AI ไปอีกหลายปีแล้ว",
				RiskLevel:     "high",
				SuitableFor:   "Experienced investors who can stomach large drawdowns.",
				SuitableForTH: "นักลงทุนมีประสบการณ์ที่รับการปรับฐานแรง ๆ ได้",
			},
		},
		{
			Symbol: "TSLA",
			Profile: domain.Profile{
				Symbol:        "TSLA",
				Name:          "Tesla, Inc.",
				Sector:        "Consumer Cyclical",
				Industry:      "Auto Manufacturers",
				Exchange:      "NASDAQ",
				Description:   "Tesla makes electric vehicles and energy storage systems, with long-term bets on autonomy.",
				DescriptionTH: "เทสลาผลิตรถยนต์ไฟฟ้าและระบบกักเก็บพลังงาน พร้อมเดิมพันระยะยาวกับรถขับเคลื่อนอัตโนมัติ",
				MarketCap:     dec("702000000000"),
				LogoURL:       "https://logo.finlearn.app/tsla.png",
				Website:       "https://www.tesla.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("219.80"),
				Change:        dec("6.45"),
				ChangePercent: dec("3.02"),
				Open:          dec("214.00"),
				High:          dec("221.30"),
				Low:           dec("212.75"),
				PreviousClose: dec("213.35"),
				Week52High:    dec("278.98"),
				Week52Low:     dec("138.80"),
				History: []domain.PricePoint{
					{Date: "2025-08-27", Close: dec("211.90")},
					{Date: "2025-08-28", Close: dec("213.35")},
					{Date: "2025-08-29", Close: dec("219.80")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("62.1"),
				PBRatio:       dec("10.3"),
				EPS:           dec("3.54"),
				DividendYield: dec("0"),
				Beta:          dec("2.29"),
			},
			Signals: domain.Signals{
				TechnicalScore:   61,
				FundamentalScore: 52,
				Verdict:          "sell",
			},
			Competitors: []string{"BYDDY", "GM", "F"},
			Scores:      domain.Scores{Overall: 58, Value: 25, Growth: 80, Stability: 42},
			Guide: domain.BeginnerGuide{
				Summary:       "One of the most volatile large caps. Results depend heavily on delivery numbers and sentiment.",
				SummaryTH:     "หนึ่งในหุ้นใหญ่ที่ผันผวนที่สุด ผลตอบแทนขึ้นกับยอดส่งมอบรถและอารมณ์ตลาดอย่างมาก",
				RiskLevel:     "high",
				SuitableFor:   "Risk-tolerant investors only; position sizes should be small.",
				SuitableForTH: "เหมาะกับผู้รับความเสี่ยงสูงเท่านั้น และควรลงทุนเป็นสัดส่วนน้อย",
			},
		},
		{
			Symbol: "JPM",
			Profile: domain.Profile{
				Symbol:        "JPM",
				Name:          "JPMorgan Chase & Co.",
				Sector:        "Financial Services",
				Industry:      "Banks - Diversified",
				Exchange:      "NYSE",
				Description:   "JPMorgan is the largest US bank across consumer banking, investment banking and asset management.",
				DescriptionTH: "เจพีมอร์แกนเป็นธนาคารที่ใหญ่ที่สุดของสหรัฐฯ ครอบคลุมธนาคารรายย่อย วาณิชธนกิจ และบริหารสินทรัพย์",
				MarketCap:     dec("608000000000"),
				LogoURL:       "https://logo.finlearn.app/jpm.png",
				Website:       "https://www.jpmorganchase.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("212.45"),
				Change:        dec("0.88"),
				ChangePercent: dec("0.42"),
				Open:          dec("211.20"),
				High:          dec("213.00"),
				Low:           dec("210.85"),
				PreviousClose: dec("211.57"),
				Week52High:    dec("225.48"),
				Week52Low:     dec("135.19"),
				History: []domain.PricePoint{
					{Date: "2025-08-27", Close: dec("210.60")},
					{Date: "2025-08-28", Close: dec("211.57")},
					{Date: "2025-08-29", Close: dec("212.45")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("12.1"),
				PBRatio:       dec("1.9"),
				EPS:           dec("17.56"),
				DividendYield: dec("2.15"),
				Beta:          dec("1.10"),
			},
			Signals: domain.Signals{
				TechnicalScore:   66,
				FundamentalScore: 77,
				Verdict:          "buy",
			},
			Competitors: []string{"BAC", "WFC", "C"},
			Scores:      domain.Scores{Overall: 75, Value: 81, Growth: 55, Stability: 86},
			Guide: domain.BeginnerGuide{
				Summary:       "A conservatively run bank with a meaningful dividend. Earnings track the economy and interest rates.",
				SummaryTH:     "ธนาคารที่บริหารอย่างระมัดระวังพร้อมปันผลน่าสนใจ กำไรขึ้นกับภาวะเศรษฐกิจและดอกเบี้ย",
				RiskLevel:     "low",
				SuitableFor:   "Income-focused investors who want a non-tech anchor.",
				SuitableForTH: "นักลงทุนสายปันผลที่ต้องการหุ้นนอกกลุ่มเทคเป็นหลักพอร์ต",
			},
		},
		{
			Symbol: "KO",
			Profile: domain.Profile{
				Symbol:        "KO",
				Name:          "The Coca-Cola Company",
				Sector:        "Consumer Defensive",
				Industry:      "Beverages - Non-Alcoholic",
				Exchange:      "NYSE",
				Description:   "Coca-Cola sells beverages in virtually every country and has raised its dividend for over 60 years.",
				DescriptionTH: "โคคา-โคล่าขายเครื่องดื่มแทบทุกประเทศทั่วโลก และเพิ่มเงินปันผลต่อเนื่องมากว่า 60 ปี",
				MarketCap:     dec("292000000000"),
				LogoURL:       "https://logo.finlearn.app/ko.png",
				Website:       "https://www.coca-colacompany.com",
			},
			Price: domain.PriceInfo{
				Current:       dec("67.85"),
				Change:        dec("-0.12"),
				ChangePercent: dec("-0.18"),
				Open:          dec("68.00"),
				High:          dec("68.20"),
				Low:           dec("67.60"),
				PreviousClose: dec("67.97"),
				Week52High:    dec("73.53"),
				Week52Low:     dec("57.93"),
				History: []domain.PricePoint{
					{Date: "2025-08-27", Close: dec("68.10")},
					{Date: "2025-08-28", Close: dec("67.97")},
					{Date: "2025-08-29", Close: dec("67.85")},
				},
			},
			Metrics: domain.KeyMetrics{
				PERatio:       dec("25.4"),
				PBRatio:       dec("10.8"),
				EPS:           dec("2.67"),
				DividendYield: dec("2.86"),
				Beta:          dec("0.59"),
			},
			Signals: domain.Signals{
				TechnicalScore:   60,
				FundamentalScore: 71,
				Verdict:          "hold",
			},
			Competitors: []string{"PEP", "KDP", "MNST"},
			Scores:      domain.Scores{Overall: 70, Value: 62, Growth: 38, Stability: 95},
			Guide: domain.BeginnerGuide{
				Summary:       "Slow and steady. A classic defensive stock that tends to fall less when markets drop.",
				SummaryTH:     "ช้าแต่มั่นคง หุ้นเชิงรับคลาสสิกที่มักปรับลงน้อยกว่าตลาดในช่วงขาลง",
				RiskLevel:     "low",
				SuitableFor:   "Very conservative investors and dividend collectors.",
				SuitableForTH: "นักลงทุนที่เน้นความปลอดภัยสูงและชอบสะสมปันผล",
			},
		},
	}
}
