package dedup

import "strings"

// tokenSet lowercases a text and splits it on whitespace into a set of
// distinct tokens.
func tokenSet(text string) map[string]struct{} {
	tokens := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// commonTokens counts distinct tokens present in both sets.
func commonTokens(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			count++
		}
	}
	return count
}

// mightBeSimilar is the lexical pre-filter: it reports whether two texts
// share at least minCommon distinct lowercase words. Only texts that pass
// are worth an oracle call.
func mightBeSimilar(textA, textB string, minCommon int) bool {
	return commonTokens(tokenSet(textA), tokenSet(textB)) >= minCommon
}
