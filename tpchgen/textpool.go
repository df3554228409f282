package tpchgen

import (
	"fmt"
	"strings"
	"sync"
)

// Comment columns are random substrings of a pregenerated text pool,
// as in dbgen. The pool is built once from the sentence grammar with
// its own stream, so its content is independent of any table stream.
const (
	textPoolSeed = 933588178
	textPoolSize = 32 << 20
)

var (
	textPoolOnce sync.Once
	textPoolData []byte
)

func textPool() []byte {
	textPoolOnce.Do(func() {
		s := newRandStream(textPoolSeed, 0)
		var b strings.Builder
		b.Grow(textPoolSize + 256)
		for b.Len() < textPoolSize {
			writeSentence(&b, &s)
			b.WriteByte(' ')
		}
		textPoolData = []byte(b.String()[:textPoolSize])
	})
	return textPoolData
}

func writeSentence(b *strings.Builder, s *randStream) {
	tokens := textGrammar.pick(s)
	for i, tok := range strings.Fields(tokens) {
		switch tok {
		case "N":
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNounPhrase(b, s)
		case "V":
			b.WriteByte(' ')
			writeVerbPhrase(b, s)
		case "P":
			b.WriteByte(' ')
			b.WriteString(textPrepositions.pick(s))
			b.WriteString(" the ")
			writeNounPhrase(b, s)
		case "T":
			b.WriteString(textTerminators.pick(s))
		}
	}
}

func writeNounPhrase(b *strings.Builder, s *randStream) {
	switch nounPhraseGrammar.pick(s) {
	case "N":
		b.WriteString(textNouns.pick(s))
	case "J N":
		b.WriteString(textAdjectives.pick(s))
		b.WriteByte(' ')
		b.WriteString(textNouns.pick(s))
	case "J, J N":
		b.WriteString(textAdjectives.pick(s))
		b.WriteString(", ")
		b.WriteString(textAdjectives.pick(s))
		b.WriteByte(' ')
		b.WriteString(textNouns.pick(s))
	default: // "D J N"
		b.WriteString(textAdverbs.pick(s))
		b.WriteByte(' ')
		b.WriteString(textAdjectives.pick(s))
		b.WriteByte(' ')
		b.WriteString(textNouns.pick(s))
	}
}

func writeVerbPhrase(b *strings.Builder, s *randStream) {
	switch verbPhraseGrammar.pick(s) {
	case "V":
		b.WriteString(textVerbs.pick(s))
	case "X V":
		b.WriteString(textAuxiliaries.pick(s))
		b.WriteByte(' ')
		b.WriteString(textVerbs.pick(s))
	case "V D":
		b.WriteString(textVerbs.pick(s))
		b.WriteByte(' ')
		b.WriteString(textAdverbs.pick(s))
	default: // "X V D"
		b.WriteString(textAuxiliaries.pick(s))
		b.WriteByte(' ')
		b.WriteString(textVerbs.pick(s))
		b.WriteByte(' ')
		b.WriteString(textAdverbs.pick(s))
	}
}

// randomText draws a pool substring whose length varies between 40% and
// 160% of the average, consuming exactly two stream values.
func randomText(s *randStream, avg int64) string {
	pool := textPool()
	length := s.boundedInt(avg*2/5, avg*8/5)
	offset := s.boundedInt(0, int64(len(pool))-length)
	return string(pool[offset : offset+length])
}

// textUses is the per-row stream budget of one randomText call.
const textUses = 2

const alphaNumericChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ,."

// randomAlphaNumeric generates an address-style string, packing five
// characters per stream value.
func randomAlphaNumeric(s *randStream, avg int64) string {
	length := s.boundedInt(avg*2/5, avg*8/5)
	b := make([]byte, length)
	var value int64
	for i := int64(0); i < length; i++ {
		if i%5 == 0 {
			value = s.next()
		}
		b[i] = alphaNumericChars[value%int64(len(alphaNumericChars))]
		value /= int64(len(alphaNumericChars))
	}
	return string(b)
}

// alphaNumericUses returns the per-row stream budget of one
// randomAlphaNumeric call at a given average length.
func alphaNumericUses(avg int64) int64 {
	maxLen := avg * 8 / 5
	return 1 + (maxLen+4)/5
}

// randomPhone formats a phone number whose country code is derived
// from the nation key, consuming three stream values.
func randomPhone(s *randStream, nationKey int64) string {
	local1 := s.boundedInt(100, 999)
	local2 := s.boundedInt(100, 999)
	local3 := s.boundedInt(1000, 9999)
	return fmt.Sprintf("%02d-%03d-%03d-%04d", 10+nationKey, local1, local2, local3)
}

const phoneUses = 3
