package tpchgen

import "strings"

// Weighted value distributions in the spirit of dbgen's dists.dss.

type distribution struct {
	members []string
	weights []int
	total   int64
}

func newDistribution(pairs ...any) *distribution {
	d := &distribution{}
	for i := 0; i < len(pairs); i += 2 {
		d.members = append(d.members, pairs[i].(string))
		w := pairs[i+1].(int)
		d.weights = append(d.weights, w)
		d.total += int64(w)
	}
	return d
}

func uniform(members ...string) *distribution {
	d := &distribution{members: members, total: int64(len(members))}
	d.weights = make([]int, len(members))
	for i := range d.weights {
		d.weights[i] = 1
	}
	return d
}

// pick draws one member, consuming exactly one value from the stream.
func (d *distribution) pick(s *randStream) string {
	return d.members[d.pickIndex(s)]
}

func (d *distribution) pickIndex(s *randStream) int {
	target := s.boundedInt(1, d.total)
	for i, w := range d.weights {
		target -= int64(w)
		if target <= 0 {
			return i
		}
	}
	return len(d.members) - 1
}

func (d *distribution) size() int { return len(d.members) }

func (d *distribution) at(i int) string { return d.members[i] }

var nations = uniform(
	"ALGERIA", "ARGENTINA", "BRAZIL", "CANADA", "EGYPT",
	"ETHIOPIA", "FRANCE", "GERMANY", "INDIA", "INDONESIA",
	"IRAN", "IRAQ", "JAPAN", "JORDAN", "KENYA",
	"MOROCCO", "MOZAMBIQUE", "PERU", "CHINA", "ROMANIA",
	"SAUDI ARABIA", "VIETNAM", "RUSSIA", "UNITED KINGDOM", "UNITED STATES",
)

// nationRegions maps each nation (by key) to its region key.
var nationRegions = []int64{
	0, 1, 1, 1, 4,
	0, 3, 3, 2, 2,
	4, 4, 2, 4, 0,
	0, 0, 1, 2, 3,
	4, 2, 3, 3, 1,
}

var regions = uniform("AFRICA", "AMERICA", "ASIA", "EUROPE", "MIDDLE EAST")

var marketSegments = uniform("AUTOMOBILE", "BUILDING", "FURNITURE", "MACHINERY", "HOUSEHOLD")

var orderPriorities = uniform("1-URGENT", "2-HIGH", "3-MEDIUM", "4-NOT SPECIFIED", "5-LOW")

var shipInstructions = uniform("DELIVER IN PERSON", "COLLECT COD", "NONE", "TAKE BACK RETURN")

var shipModes = uniform("REG AIR", "AIR", "RAIL", "SHIP", "TRUCK", "MAIL", "FOB")

var returnFlags = uniform("R", "A")

var (
	typeSyllable1 = uniform("STANDARD", "SMALL", "MEDIUM", "LARGE", "ECONOMY", "ANODIZED")
	typeSyllable2 = uniform("ANODIZED", "BURNISHED", "PLATED", "POLISHED", "BRUSHED")
	typeSyllable3 = uniform("TIN", "NICKEL", "BRASS", "STEEL", "COPPER")

	containerSyllable1 = uniform("SM", "LG", "MED", "JUMBO", "WRAP")
	containerSyllable2 = uniform("CASE", "BOX", "BAG", "JAR", "PKG", "PACK", "CAN", "DRUM")
)

// partType draws a three-syllable part type, one stream use per syllable.
func partType(s *randStream) string {
	return typeSyllable1.pick(s) + " " + typeSyllable2.pick(s) + " " + typeSyllable3.pick(s)
}

func partContainer(s *randStream) string {
	return containerSyllable1.pick(s) + " " + containerSyllable2.pick(s)
}

// colors feed part names: five distinct words per part.
var colors = uniform(
	"almond", "antique", "aquamarine", "azure", "beige", "bisque", "black",
	"blanched", "blue", "blush", "brown", "burlywood", "burnished",
	"chartreuse", "chiffon", "chocolate", "coral", "cornflower", "cornsilk",
	"cream", "cyan", "dark", "deep", "dim", "dodger", "drab", "firebrick",
	"floral", "forest", "frosted", "gainsboro", "ghost", "goldenrod",
	"green", "grey", "honeydew", "hot", "indian", "ivory", "khaki",
	"lavender", "lawn", "lemon", "light", "lime", "linen", "magenta",
	"maroon", "medium", "metallic", "midnight", "mint", "misty", "moccasin",
	"navajo", "navy", "olive", "orange", "orchid", "pale", "papaya",
	"peach", "peru", "pink", "plum", "powder", "puff", "purple", "red",
	"rose", "rosy", "royal", "saddle", "salmon", "sandy", "seashell",
	"sienna", "sky", "slate", "smoke", "snow", "spring", "steel", "tan",
	"thistle", "tomato", "turquoise", "violet", "wheat", "white", "yellow",
)

// partName draws five color words. Repeats are possible and harmless,
// matching the uniqueness guarantees of the reference generator (none).
func partName(s *randStream) string {
	words := make([]string, 5)
	for i := range words {
		words[i] = colors.pick(s)
	}
	return strings.Join(words, " ")
}

// Grammar word lists for comment text.
var (
	textNouns = newDistribution(
		"packages", 40, "requests", 40, "accounts", 40, "deposits", 40,
		"foxes", 20, "ideas", 20, "theodolites", 20, "pinto beans", 20,
		"instructions", 20, "dependencies", 20, "excuses", 20, "platelets", 20,
		"asymptotes", 10, "courts", 10, "dolphins", 10, "multipliers", 10,
		"sauternes", 10, "warthogs", 10, "frets", 10, "dinos", 10,
		"attainments", 5, "somas", 5, "patterns", 5, "forges", 5,
		"braids", 5, "frays", 5, "warhorses", 5, "dugouts", 5,
		"notornis", 1, "epitaphs", 1, "pearls", 1, "tithes", 1,
		"waters", 1, "orbits", 1, "gifts", 1, "sheaves", 1,
		"depths", 1, "sentiments", 1, "decoys", 1, "realms", 1,
		"pains", 1, "grouches", 1, "escapades", 1, "hockey players", 1,
	)
	textVerbs = newDistribution(
		"sleep", 20, "wake", 20, "are", 20, "cajole", 20,
		"haggle", 20, "nag", 10, "use", 10, "boost", 10,
		"affix", 5, "detect", 5, "integrate", 5, "maintain", 5,
		"nod", 5, "was", 5, "lose", 5, "sublate", 5,
		"solve", 3, "thrash", 3, "promise", 3, "engage", 3,
		"hinder", 3, "print", 3, "x-ray", 3, "breach", 3,
		"eat", 1, "grow", 1, "impress", 1, "mold", 1,
		"poach", 1, "serve", 1, "run", 1, "dazzle", 1,
		"snooze", 1, "doze", 1, "unwind", 1, "kindle", 1,
		"play", 1, "hang", 1, "believe", 1, "doubt", 1,
	)
	textAdjectives = newDistribution(
		"special", 20, "pending", 20, "unusual", 20, "express", 20,
		"furious", 1, "sly", 1, "careful", 1, "blithe", 1,
		"quick", 1, "fluffy", 1, "slow", 1, "quiet", 1,
		"ruthless", 1, "thin", 1, "close", 1, "dogged", 1,
		"daring", 1, "brave", 1, "stealthy", 1, "permanent", 1,
		"enticing", 1, "idle", 1, "busy", 1, "regular", 50,
		"final", 40, "ironic", 40, "even", 20, "bold", 20, "silent", 10,
	)
	textAdverbs = newDistribution(
		"sometimes", 1, "always", 1, "never", 1, "furiously", 50,
		"slyly", 50, "carefully", 50, "blithely", 40, "quickly", 30,
		"fluffily", 20, "slowly", 1, "quietly", 1, "ruthlessly", 1,
		"thinly", 1, "closely", 1, "doggedly", 1, "daringly", 1,
		"bravely", 1, "stealthily", 1, "permanently", 1, "enticingly", 1,
		"idly", 1, "busily", 1, "regularly", 1, "finally", 1,
		"ironically", 1, "evenly", 1, "boldly", 1, "silently", 1,
	)
	textPrepositions = newDistribution(
		"about", 50, "above", 50, "according to", 50, "across", 50,
		"after", 50, "against", 40, "along", 40, "alongside of", 30,
		"among", 30, "around", 20, "at", 10, "atop", 1, "before", 1,
		"behind", 1, "beneath", 10, "beside", 10, "besides", 10,
		"despite", 10, "during", 10, "except", 10, "for", 10, "from", 10,
		"in place of", 10, "inside", 10, "instead of", 10, "into", 10,
		"near", 10, "of", 10, "on", 10, "outside", 10, "over", 10,
		"past", 10, "since", 10, "through", 10, "throughout", 10,
		"to", 10, "toward", 10, "under", 10, "until", 10, "up", 10,
		"upon", 10, "whithout", 1, "with", 20, "within", 20, "without", 1,
	)
	textAuxiliaries = uniform(
		"do", "may", "might", "shall", "will", "would", "can", "could",
		"should", "ought to", "must", "will have to", "shall have to",
		"could have to", "should have to", "must have to", "need to", "try to",
	)
	textTerminators = newDistribution(".", 50, ";", 1, ":", 1, "?", 1, "!", 1, "--", 1)
)

// Sentence grammars. Tokens: N noun phrase, V verb phrase, P preposition
// followed by a noun phrase, T terminator.
var textGrammar = newDistribution(
	"N V T", 3,
	"N V P T", 3,
	"N V N T", 3,
	"N P V N T", 1,
	"N P V P T", 1,
)

var nounPhraseGrammar = newDistribution(
	"N", 10,
	"J N", 20,
	"J, J N", 10,
	"D J N", 50,
)

var verbPhraseGrammar = newDistribution(
	"V", 30,
	"X V", 1,
	"V D", 40,
	"X V D", 1,
)
