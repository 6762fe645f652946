package astro

// Sign is a zodiac sign index, 0 = Aries through 11 = Pisces.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// SignOf returns the zodiac sign containing a longitude.
func SignOf(lon float64) Sign {
	return Sign(int(Norm360(lon) / 30))
}

// SignPos splits a longitude into its sign and the degree within that sign.
func SignPos(lon float64) (Sign, float64) {
	lon = Norm360(lon)
	idx := int(lon / 30)
	return Sign(idx), lon - float64(idx)*30
}
