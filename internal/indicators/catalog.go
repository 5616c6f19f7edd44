package indicators

import (
	"hash/adler32"
	"math/rand"
	"strings"
)

// MAChoice names one of the fixed moving-average implementations a
// chromosome gene can select. Tag is the Adler-32 checksum of the lowercase
// name, letting a chromosome encode the choice as a plain uint32 gene
// instead of a sum type.
type MAChoice struct {
	Tag  uint32
	Name string
	New  func(period int) Indicator
}

func (c MAChoice) MarshalText() ([]byte, error) { return []byte(c.Name), nil }

func tag(name string) uint32 { return adler32.Checksum([]byte(strings.ToLower(name))) }

// MAChoices is the fixed, versioned catalog of selectable moving averages.
// Appending to this list changes the chromosome search space and must be
// treated as a versioned decision (spec design note 9.1).
var MAChoices = []MAChoice{
	{tag("sma"), "sma", func(p int) Indicator { return NewSMA(p) }},
	{tag("ema"), "ema", func(p int) Indicator { return NewEMA(p) }},
	{tag("ema2"), "ema2", func(p int) Indicator { return NewEMA2(p) }},
	{tag("dema"), "dema", func(p int) Indicator { return NewDEMA(p) }},
	{tag("smma"), "smma", func(p int) Indicator { return NewSMMA(p) }},
	{tag("alma"), "alma", func(p int) Indicator { return NewALMA(p) }},
	{tag("kama"), "kama", func(p int) Indicator { return NewKAMA(p) }},
}

// MAByTag looks up a catalog entry by its Adler-32 tag. The second return
// value is false when the tag is not in MAChoices — callers treat that as
// an InvalidParams error, since a chromosome gene should never carry a tag
// outside the catalog it was generated from.
func MAByTag(tag uint32) (MAChoice, bool) {
	for _, c := range MAChoices {
		if c.Tag == tag {
			return c, true
		}
	}
	return MAChoice{}, false
}

// GenMA draws uniformly from MAChoices.
func GenMA(rng *rand.Rand) MAChoice {
	return MAChoices[rng.Intn(len(MAChoices))]
}
