package classifier

import (
	"regexp"
	"sort"

	"uni_advisor/internal/textnorm"
)

// Tokens are runs of two or more word characters.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// analyze turns a raw review into its unigram and bigram features. The
// normalizer stands in for lower-casing, so features keep their case.
func analyze(text string) []string {
	toks := tokenRe.FindAllString(textnorm.Normalize(text), -1)
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(toks)-1)
	out = append(out, toks...)
	for i := 0; i+1 < len(toks); i++ {
		out = append(out, toks[i]+" "+toks[i+1])
	}
	return out
}

// vocabulary maps feature text to column index, assigned in sorted order.
type vocabulary map[string]int

func buildVocabulary(docs [][]string) vocabulary {
	seen := make(map[string]struct{})
	for _, d := range docs {
		for _, f := range d {
			seen[f] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	v := make(vocabulary, len(keys))
	for i, k := range keys {
		v[k] = i
	}
	return v
}

// counts returns the sparse count vector of feats; unknown features are dropped.
func (v vocabulary) counts(feats []string) map[int]float64 {
	out := make(map[int]float64, len(feats))
	for _, f := range feats {
		if j, ok := v[f]; ok {
			out[j]++
		}
	}
	return out
}
