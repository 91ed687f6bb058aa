package content

import "hash/fnv"

// Canned copy used whenever generation fails or the model output does not
// validate. The user still gets a complete report.

// FallbackReport returns a fresh copy of the safe ten-section report.
func FallbackReport() ReportContent {
	return ReportContent{
		Intro:       "Namaste! Welcome to your personalized Vedic Horoscope for 2026. Based on your birth details, this year promises a blend of challenges and opportunities that will shape your destiny. With Jupiter's transit bringing growth and Saturn testing your resilience, 2026 is a year of transformation and achievement. Expect breakthroughs in personal and professional spheres, guided by the stars. Embrace the cosmic energies with positivity, and watch as doors open to abundance and fulfillment. This report is tailored to empower you with insights for a prosperous year ahead.",
		Personality: "Your personality is a unique fusion of strength and intuition. As an Aries Sun, you possess natural leadership qualities, driven by passion and courage. Your Taurus Moon adds a layer of stability and determination, making you reliable and grounded in pursuits. With Leo Rising, you exude charisma and confidence, often inspiring those around you. Traits like ambition, resilience, and creativity define you, but watch for occasional stubbornness. Harness your inner fire to overcome obstacles, and your empathetic side will strengthen relationships. Overall, you are a dynamic individual destined for success through balanced action and reflection.",
		Transits:    "In 2026, planetary transits play a pivotal role in your journey. Jupiter enters Taurus in April, enhancing your financial prospects and bringing wisdom in decision-making. Saturn in Pisces encourages discipline in spiritual and emotional matters, potentially leading to inner growth. Rahu and Ketu's nodes influence unexpected changes, with Rahu in Aquarius sparking innovation in social circles. Mars energizes your career house mid-year, while Venus graces relationships in the latter half. Eclipses in March and September highlight key turning points. Navigate these influences with awareness, as they align to support your long-term goals and personal evolution.",
		Career:      "Career-wise, 2026 is a year of steady advancement and new horizons. Early months focus on consolidation, with opportunities for skill enhancement. Jupiter's shift in April opens doors to promotions or job changes, especially in creative or leadership roles. Saturn demands hard work, rewarding persistence with recognition by mid-year. Avoid impulsive decisions during Mercury retrogrades. Networking peaks in July-September, potentially leading to collaborations. Challenges in Q4 test adaptability, but overall, expect growth in income and status. Stay focused on goals, and leverage your natural drive for professional success.",
		Finance:     "Financial stability strengthens in 2026, with prudent planning yielding rewards. Jupiter's transit boosts earnings from investments or unexpected sources post-April. Early year calls for budgeting to handle minor expenses influenced by Rahu. Saturn teaches financial discipline, encouraging savings and long-term planning. Favorable periods for wealth accumulation are May-August. Avoid speculative risks during eclipses. By year-end, improved cash flow supports major purchases. Focus on diversified income streams, and your strategic approach will lead to prosperity and security.",
		Health:      "Health remains robust in 2026, with emphasis on balance and prevention. Saturn's influence may bring minor fatigue, so prioritize rest and nutrition. Jupiter enhances vitality mid-year, ideal for starting wellness routines like yoga. Watch for stress-related issues in Q2, where meditation helps. Favorable transits support recovery from any ailments. Maintain a balanced diet and exercise to boost immunity. Overall, proactive care ensures a vibrant year, allowing you to pursue ambitions with full energy.",
		Love:        "Love and relationships flourish in 2026, with deeper connections forming. Venus transits foster romance, especially for singles in May-June. Couples experience harmony, though communication is key during retrogrades. Rahu may introduce exciting encounters, but discernment is advised. Family bonds strengthen post-September. For marriage prospects, mid-year is auspicious. Embrace vulnerability to nurture ties, and your year will be filled with affection and mutual growth.",
		Lucky:       "Lucky Dates: 5th, 14th, 23rd of each month. Lucky Numbers: 1, 9, 18. Lucky Colors: Red for energy, Gold for prosperity. Directions: East for new beginnings. Gemstones: Ruby for strength. These elements align with your chart to amplify positive energies throughout 2026.",
		Kundli:      "Your Kundli shows Aries Lagna with Sun in the 1st house, indicating strong self-identity and leadership. Moon in Taurus (2nd house) supports financial stability. Key planets: Jupiter in 9th for luck, Saturn in 12th for introspection. Overall, a balanced chart with emphasis on action and growth.",
		Conclusion:  "As 2026 unfolds, trust in the cosmic plan tailored for you. With determination and positivity, you'll navigate challenges and celebrate victories. Remember, the stars guide, but your actions shape destiny. Wishing you a year of abundance and joy. For more insights, explore our Tarot add-on.",
	}
}

var fallbackSectionLines = []string{
	"A beautiful journey awaits you in 2026.",
	"The stars favor your patience and your courage this year.",
	"Positive growth and harmony are ahead in 2026.",
	"Your efforts will be rewarded as the year unfolds.",
}

// FallbackSection picks a canned line for a section. The pick is
// deterministic per section name so retries render the same text.
func FallbackSection(section string) string {
	h := fnv.New32a()
	h.Write([]byte(section))
	return fallbackSectionLines[int(h.Sum32())%len(fallbackSectionLines)]
}

// FallbackTarot is the spread returned when the reading cannot be generated.
func FallbackTarot(question string) TarotReading {
	return TarotReading{
		Question: question,
		Cards:    []string{"The Star", "The Sun", "The World"},
		Analysis: "The universe is aligning for your success in 2026.",
		Fallback: true,
	}
}
