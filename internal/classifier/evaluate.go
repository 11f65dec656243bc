package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"uni_advisor/internal/domain"
)

// Split shuffles a copy of reviews with seed and holds out ceil(testSize*n)
// of them for testing. Both sides must end up non-empty.
func Split(reviews []domain.Review, testSize float64, seed int64) (train, test []domain.Review, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("classifier: test size %v outside (0, 1)", testSize)
	}
	n := len(reviews)
	nTest := int(math.Ceil(testSize * float64(n)))
	if nTest == 0 || nTest >= n {
		return nil, nil, fmt.Errorf("classifier: cannot split %d examples with test size %v", n, testSize)
	}
	shuffled := make([]domain.Review, n)
	copy(shuffled, reviews)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[nTest:], shuffled[:nTest], nil
}

type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is a held-out evaluation summary. Classes[0] is negative, Classes[1] positive.
type Report struct {
	Total    int
	Correct  int
	Accuracy float64
	Classes  [2]ClassMetrics
}

// Evaluate predicts every test review and compares against its rating label.
func Evaluate(m *Model, test []domain.Review) Report {
	var confusion [2][2]int // [actual][predicted]
	for _, r := range test {
		confusion[classOf(Label(r))][classOf(m.Predict(r.Text))]++
	}
	rep := Report{Total: len(test)}
	for c := 0; c < 2; c++ {
		tp := confusion[c][c]
		rep.Correct += tp
		predicted := confusion[0][c] + confusion[1][c]
		actual := confusion[c][0] + confusion[c][1]
		cm := ClassMetrics{Support: actual}
		if predicted > 0 {
			cm.Precision = float64(tp) / float64(predicted)
		}
		if actual > 0 {
			cm.Recall = float64(tp) / float64(actual)
		}
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}
		rep.Classes[c] = cm
	}
	if rep.Total > 0 {
		rep.Accuracy = float64(rep.Correct) / float64(rep.Total)
	}
	return rep
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %v\n", r.Accuracy)
	fmt.Fprintf(&b, "%10s %10s %10s %10s %10s\n", "", "precision", "recall", "f1-score", "support")
	for c, name := range []string{"False", "True"} {
		cm := r.Classes[c]
		fmt.Fprintf(&b, "%10s %10.2f %10.2f %10.2f %10d\n", name, cm.Precision, cm.Recall, cm.F1, cm.Support)
	}
	fmt.Fprintf(&b, "%10s %10s %10s %10.2f %10d\n", "accuracy", "", "", r.Accuracy, r.Total)
	return b.String()
}
