package catalog

import "github.com/finlearn/finlearn-api/internal/domain"

// DefaultLibrary builds the bundled bilingual lesson set.
func DefaultLibrary() (*Library, error) {
	return NewLibrary(defaultLessons(), defaultCategories())
}

func defaultCategories() []domain.LessonCategory {
	return []domain.LessonCategory{
		{ID: "basics", Name: "พื้นฐานการลงทุน", Icon: "book"},
		{ID: "stocks", Name: "เริ่มต้นกับหุ้น", Icon: "trending-up"},
		{ID: "analysis", Name: "การวิเคราะห์หุ้น", Icon: "bar-chart"},
		{ID: "risk", Name: "ความเสี่ยงและพอร์ต", Icon: "shield"},
	}
}

func defaultLessons() []domain.Lesson {
	return []domain.Lesson{
		{
			ID:          "invest-101",
			Title:       "การลงทุนคืออะไร",
			TitleEN:     "What is investing?",
			Category:    "basics",
			Difficulty:  domain.DifficultyBeginner,
			DurationMin: 8,
			Sections: []domain.LessonSection{
				{
					Heading: "ออมเงินกับลงทุนต่างกันอย่างไร",
					Body:    "การออมเงินคือการเก็บเงินไว้ในที่ปลอดภัย เช่น บัญชีเงินฝาก ส่วนการลงทุนคือการนำเงินไปซื้อสินทรัพย์ที่มีโอกาสเพิ่มมูลค่า เช่น หุ้นหรือกองทุน แลกกับความเสี่ยงที่มูลค่าอาจลดลงได้",
				},
				{
					Heading: "ทำไมเงินฝากอย่างเดียวไม่พอ",
					Body:    "เงินเฟ้อทำให้ของแพงขึ้นทุกปี ถ้าดอกเบี้ยเงินฝากต่ำกว่าเงินเฟ้อ เงินของเราจะซื้อของได้น้อยลงเรื่อย ๆ การลงทุนช่วยให้เงินเติบโตเร็วกว่าเงินเฟ้อในระยะยาว",
				},
				{
					Heading: "เริ่มจากเป้าหมาย",
					Body:    "ก่อนลงทุนควรรู้ว่าลงทุนเพื่ออะไร ใช้เงินเมื่อไหร่ และรับการขาดทุนชั่วคราวได้แค่ไหน คำตอบเหล่านี้กำหนดว่าสินทรัพย์แบบใดเหมาะกับเรา",
				},
			},
			KeyTakeaways: []string{
				"การลงทุนแลกผลตอบแทนที่สูงขึ้นกับความเสี่ยงที่มากขึ้น",
				"เงินเฟ้อกัดกร่อนค่าของเงินฝาก",
				"เป้าหมายและระยะเวลากำหนดวิธีลงทุน",
			},
			Quiz: &domain.Quiz{
				Question: "ข้อใดอธิบายความแตกต่างระหว่างการออมและการลงทุนได้ถูกต้องที่สุด",
				Options: []string{
					"การออมให้ผลตอบแทนสูงกว่าการลงทุนเสมอ",
					"การลงทุนมีโอกาสได้ผลตอบแทนสูงกว่าแต่มีความเสี่ยงขาดทุน",
					"การลงทุนไม่มีความเสี่ยงถ้าถือครบหนึ่งปี",
					"การออมและการลงทุนคือสิ่งเดียวกัน",
				},
				Answer: 1,
			},
		},
		{
			ID:          "what-is-a-stock",
			Title:       "หุ้นคืออะไร",
			TitleEN:     "What is a stock?",
			Category:    "stocks",
			Difficulty:  domain.DifficultyBeginner,
			DurationMin: 10,
			Sections: []domain.LessonSection{
				{
					Heading: "ส่วนหนึ่งของกิจการ",
					Body:    "หุ้นหนึ่งหน่วยคือความเป็นเจ้าของส่วนเล็ก ๆ ของบริษัท เมื่อบริษัทมีกำไรเติบโต มูลค่าหุ้นมักเติบโตตาม และบางบริษัทแบ่งกำไรคืนผู้ถือหุ้นเป็นเงินปันผล",
				},
				{
					Heading: "ราคาหุ้นมาจากไหน",
					Body:    "ราคาซื้อขายเกิดจากผู้ซื้อและผู้ขายตกลงกันในตลาดหลักทรัพย์ ระยะสั้นราคาขึ้นลงตามข่าวและอารมณ์ตลาด แต่ระยะยาวมักสะท้อนผลประกอบการจริงของบริษัท",
				},
				{
					Heading: "สัญลักษณ์หุ้น",
					Body:    "แต่ละบริษัทมีสัญลักษณ์สั้น ๆ เรียกว่า ticker เช่น AAPL คือ Apple ใช้ค้นหาและส่งคำสั่งซื้อขายได้รวดเร็ว",
				},
			},
			KeyTakeaways: []string{
				"ถือหุ้น = เป็นเจ้าของบริษัทบางส่วน",
				"ราคาระยะสั้นผันผวน ระยะยาวตามผลประกอบการ",
			},
			Quiz: &domain.Quiz{
				Question: "การถือหุ้นของบริษัทหมายความว่าอย่างไร",
				Options: []string{
					"เราให้บริษัทกู้เงินและได้ดอกเบี้ยคงที่",
					"เราเป็นเจ้าของส่วนหนึ่งของบริษัทนั้น",
					"เราได้สิทธิซื้อสินค้าของบริษัทในราคาพิเศษ",
				},
				Answer: 1,
			},
		},
		{
			ID:          "reading-financials",
			Title:       "อ่านงบการเงินเบื้องต้น",
			TitleEN:     "Reading financial statements",
			Category:    "analysis",
			Difficulty:  domain.DifficultyIntermediate,
			DurationMin: 15,
			Sections: []domain.LessonSection{
				{
					Heading: "งบกำไรขาดทุน",
					Body:    "บอกว่าบริษัทขายได้เท่าไร (รายได้) เหลือกำไรเท่าไรหลังหักต้นทุนและค่าใช้จ่าย ดูแนวโน้มหลายปีสำคัญกว่าตัวเลขปีเดียว",
				},
				{
					Heading: "งบแสดงฐานะการเงิน",
					Body:    "สรุปว่าบริษัทมีสินทรัพย์อะไร เป็นหนี้เท่าไร และส่วนของผู้ถือหุ้นเหลือเท่าไร บริษัทที่หนี้สูงเกินไปจะเปราะบางในช่วงเศรษฐกิจแย่",
				},
				{
					Heading: "งบกระแสเงินสด",
					Body:    "กำไรทางบัญชีปลอมแปลงยากขึ้นเมื่อเทียบกับเงินสดจริงที่ไหลเข้าออก ธุรกิจที่ดีควรสร้างเงินสดจากการดำเนินงานได้สม่ำเสมอ",
				},
			},
			KeyTakeaways: []string{
				"ดูทั้งสามงบประกอบกัน อย่าดูกำไรอย่างเดียว",
				"กระแสเงินสดจากการดำเนินงานคือสัญญาณสุขภาพที่ดีที่สุด",
			},
			Quiz: &domain.Quiz{
				Question: "งบใดบอกว่าบริษัทสร้างเงินสดจริงได้มากแค่ไหน",
				Options: []string{
					"งบกำไรขาดทุน",
					"งบแสดงฐานะการเงิน",
					"งบกระแสเงินสด",
				},
				Answer: 2,
			},
		},
		{
			ID:          "pe-ratio",
			Title:       "ค่า P/E บอกอะไร",
			TitleEN:     "Understanding the P/E ratio",
			Category:    "analysis",
			Difficulty:  domain.DifficultyIntermediate,
			DurationMin: 12,
			Sections: []domain.LessonSection{
				{
					Heading: "นิยาม",
					Body:    "P/E คือราคาหุ้นหารด้วยกำไรต่อหุ้น แปลว่าผู้ซื้อยอมจ่ายกี่บาทต่อกำไรหนึ่งบาท P/E 20 เท่าหมายถึงจ่าย 20 บาทต่อกำไรปีละ 1 บาท",
				},
				{
					Heading: "สูงหรือต่ำไม่ได้ดีหรือแย่เสมอไป",
					Body:    "หุ้นเติบโตเร็วมักมี P/E สูงเพราะตลาดคาดกำไรอนาคตจะโตมาก หุ้น P/E ต่ำอาจถูกจริงหรืออาจกำลังมีปัญหา ต้องเทียบกับบริษัทในอุตสาหกรรมเดียวกันและค่าเฉลี่ยในอดีต",
				},
			},
			KeyTakeaways: []string{
				"P/E ใช้เปรียบเทียบภายในอุตสาหกรรมเดียวกัน",
				"P/E ต่ำไม่ได้แปลว่าถูกเสมอไป",
			},
			Quiz: &domain.Quiz{
				Question: "หุ้นราคา 100 บาท กำไรต่อหุ้น 5 บาท มีค่า P/E เท่าไร",
				Options:  []string{"5 เท่า", "20 เท่า", "500 เท่า", "0.05 เท่า"},
				Answer:   1,
			},
		},
		{
			ID:          "diversification",
			Title:       "กระจายความเสี่ยงอย่างไร",
			TitleEN:     "Diversification basics",
			Category:    "risk",
			Difficulty:  domain.DifficultyBeginner,
			DurationMin: 9,
			Sections: []domain.LessonSection{
				{
					Heading: "อย่าใส่ไข่ไว้ตะกร้าเดียว",
					Body:    "การถือหุ้นหลายตัวในหลายอุตสาหกรรมช่วยลดผลกระทบเมื่อบริษัทใดบริษัทหนึ่งมีปัญหา พอร์ตที่กระจายดีจะผันผวนน้อยกว่าการถือหุ้นตัวเดียวมาก",
				},
				{
					Heading: "กระจายมากไปก็มีต้นทุน",
					Body:    "ถือหุ้นหลายสิบตัวจนตามไม่ไหวอาจแย่กว่าถือกองทุนดัชนีที่กระจายให้อัตโนมัติ สำหรับมือใหม่ กองทุนดัชนีคือจุดเริ่มต้นที่ง่ายที่สุด",
				},
			},
			KeyTakeaways: []string{
				"กระจายทั้งจำนวนหุ้นและอุตสาหกรรม",
				"กองทุนดัชนีคือทางลัดของการกระจายความเสี่ยง",
			},
		},
		{
			ID:          "position-sizing",
			Title:       "จัดขนาดการลงทุนและรับมือขาดทุน",
			TitleEN:     "Position sizing and drawdowns",
			Category:    "risk",
			Difficulty:  domain.DifficultyAdvanced,
			DurationMin: 14,
			Sections: []domain.LessonSection{
				{
					Heading: "ขนาดสำคัญกว่าจังหวะ",
					Body:    "นักลงทุนส่วนใหญ่เสียหายหนักไม่ใช่เพราะเลือกหุ้นผิด แต่เพราะใส่เงินมากเกินไปในหุ้นที่ผิด กำหนดเพดานต่อหุ้นหนึ่งตัว เช่น ไม่เกินร้อยละห้าถึงสิบของพอร์ต",
				},
				{
					Heading: "คณิตศาสตร์ของการขาดทุน",
					Body:    "ขาดทุนร้อยละห้าสิบต้องการกำไรร้อยละร้อยจึงจะกลับมาเท่าทุน ยิ่งขาดทุนลึก การฟื้นตัวยิ่งยาก นี่คือเหตุผลที่การจำกัดขาดทุนสำคัญกว่าการไล่ล่ากำไรสูงสุด",
				},
				{
					Heading: "เงินสดคือตำแหน่งหนึ่งของพอร์ต",
					Body:    "การถือเงินสดบางส่วนไม่ใช่ความขี้ขลาด แต่เป็นทางเลือกที่ทำให้เราซื้อของถูกได้เมื่อตลาดตกแรง",
				},
			},
			KeyTakeaways: []string{
				"จำกัดขนาดต่อหุ้นหนึ่งตัวก่อนคิดถึงกำไร",
				"ขาดทุนลึกฟื้นยากแบบทวีคูณ",
				"เงินสดช่วยให้มีโอกาสในช่วงตลาดตก",
			},
			Quiz: &domain.Quiz{
				Question: "ถ้าพอร์ตขาดทุน 50% ต้องได้กำไรกี่เปอร์เซ็นต์จึงกลับมาเท่าทุน",
				Options:  []string{"50%", "75%", "100%", "150%"},
				Answer:   2,
			},
		},
	}
}
