package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Sign is a tropical zodiac sign name.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// moonOrder is the fixed mapping of lunar-cycle bins to signs.
var moonOrder = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// sunCutoffs[m] holds the last day of the sign that ends in month m.
var sunCutoffs = [13]struct {
	day  int
	name Sign
}{
	1:  {19, Capricorn},
	2:  {18, Aquarius},
	3:  {20, Pisces},
	4:  {19, Aries},
	5:  {20, Taurus},
	6:  {20, Gemini},
	7:  {22, Cancer},
	8:  {22, Leo},
	9:  {22, Virgo},
	10: {22, Libra},
	11: {21, Scorpio},
	12: {21, Sagittarius},
}

const (
	defaultSunSign  = Aries
	defaultMoonSign = Cancer

	// The moon traverses all 12 signs in roughly 27.32 days.
	lunarCycleDays = 27.32
)

var lunarEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// SunSign maps a YYYY-MM-DD birth date onto the tropical zodiac.
// Unparseable input yields the default sign; it never fails.
func SunSign(dob string) Sign {
	_, month, day, ok := parseDOB(dob)
	if !ok {
		return defaultSunSign
	}

	// Year-end wraparound: Capricorn starts December 22.
	if month == 12 && day >= 22 {
		return Capricorn
	}

	cutoff := sunCutoffs[month]
	if day <= cutoff.day {
		return cutoff.name
	}
	next := month%12 + 1
	return sunCutoffs[next].name
}

// MoonSign approximates the moon's sign from the birth date alone: the
// day-count distance from a fixed epoch, reduced modulo the lunar cycle
// and mapped onto 12 equal bins. It is deterministic, not an ephemeris.
func MoonSign(dob string) Sign {
	year, month, day, ok := parseDOB(dob)
	if !ok {
		return defaultMoonSign
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	diffDays := math.Ceil(math.Abs(birth.Sub(lunarEpoch).Hours()) / 24)

	position := math.Mod(diffDays, lunarCycleDays)
	index := int(position / lunarCycleDays * 12)
	if index < 0 || index > 11 {
		return Leo
	}
	return moonOrder[index]
}

var signTraits = map[Sign]string{
	Aries:       "bold leadership",
	Taurus:      "grounded strength",
	Gemini:      "social wit",
	Cancer:      "emotional depth",
	Leo:         "magnetic charm",
	Virgo:       "analytical brilliance",
	Libra:       "harmonious grace",
	Scorpio:     "intense intuition",
	Sagittarius: "adventurous spirit",
	Capricorn:   "ambitious drive",
	Aquarius:    "visionary ideas",
	Pisces:      "creative empathy",
}

// Trait returns the short trait phrase for a sign.
func Trait(sign Sign) string {
	if trait, ok := signTraits[sign]; ok {
		return trait
	}
	return "unique energy"
}

// Teaser composes the free preview paragraph. Template selection keys off
// the day of month, so identical input always yields identical output.
func Teaser(sun, moon Sign, dob string) string {
	sunTrait := Trait(sun)
	moonTrait := signTraits[moon]
	if moonTrait == "" {
		moonTrait = "inner instincts"
	}

	_, _, day, ok := parseDOB(dob)
	if !ok {
		day = 0
	}

	storyBases := []string{
		fmt.Sprintf("You carry a rare cosmic blueprint: the %s of a %s Sun combined with the %s of a %s Moon. This makes your personality both powerful and deeply intuitive.", sunTrait, sun, moonTrait, moon),
		fmt.Sprintf("While your %s Sun gives you %s, it is your %s Moon that governs your secret desires. In 2026, these two forces will finally align for a major breakthrough.", sun, sunTrait, moon),
		fmt.Sprintf("As a %s with a %s Moon, you often feel a tug-of-war between your logic and your heart. 2026 is the year this internal conflict resolves into massive external success.", sun, moon),
	}

	cliffhangers := []string{
		"However, the 'Saturn Return' energy in your chart suggests a major relationship test is coming this July. Will you be ready?",
		"I see a golden window for wealth between March and April - but only if you follow the specific lunar guidance in your full report.",
		"A karmic debt from 2019 is finally being cleared this year, opening a door you thought was closed forever.",
		"Your Moon sign suggests an unexpected travel opportunity in late 2026 that will redefine your career path.",
	}

	base := storyBases[day%len(storyBases)]
	cliff := cliffhangers[day%len(cliffhangers)]
	return base + " " + cliff
}

// DefaultTeaser is the static personality text served when input is unusable.
const DefaultTeaser = "Your cosmic journey for 2026 is written in the stars. Your unique combination of Sun and Moon signs points toward a year of unprecedented growth."

func parseDOB(dob string) (year, month, day int, ok bool) {
	parts := strings.Split(strings.TrimSpace(dob), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return 0, 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}
