package identity

import (
	"math/rand/v2"
	"strings"

	"github.com/go-faker/faker/v4"
)

// Generator supplies stand-in requester details when a booking leaves them blank.
type Generator interface {
	Name() string
	Phone() string
}

// mainland mobile network prefixes
var mobilePrefixes = []string{
	"130", "131", "132", "133", "135", "136", "137", "138", "139",
	"150", "151", "152", "155", "156", "157", "158", "159",
	"170", "176", "177", "178",
	"180", "181", "182", "183", "185", "186", "187", "188", "189",
	"198", "199",
}

type FakerGenerator struct {
	rnd *rand.Rand
}

// NewFakerGenerator draws phone digits from rnd; nil uses the global source.
func NewFakerGenerator(rnd *rand.Rand) *FakerGenerator {
	return &FakerGenerator{rnd: rnd}
}

func (g *FakerGenerator) Name() string {
	return faker.ChineseName()
}

// Phone returns an 11-digit mainland mobile number.
func (g *FakerGenerator) Phone() string {
	var b strings.Builder
	b.Grow(11)
	b.WriteString(mobilePrefixes[g.intN(len(mobilePrefixes))])
	for b.Len() < 11 {
		b.WriteByte(byte('0' + g.intN(10)))
	}
	return b.String()
}

func (g *FakerGenerator) intN(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}
	return g.rnd.IntN(n)
}

// Fill replaces a blank name or phone with a generated one. Non-blank values are kept.
func Fill(gen Generator, name, phone string) (string, string) {
	if strings.TrimSpace(name) == "" {
		name = gen.Name()
	}
	if strings.TrimSpace(phone) == "" {
		phone = gen.Phone()
	}
	return name, phone
}
