package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"uni_advisor/internal/domain"
)

func rev(text string, rating float64) domain.Review {
	return domain.Review{Text: text, Rating: &rating}
}

func trainingSet() []domain.Review {
	return []domain.Review{
		rev("great teachers and great campus", 9),
		rev("great library", 8),
		rev("amazing support staff", 10),
		rev("terrible food and terrible housing", 2),
		rev("terrible management", 1),
		rev("boring lectures", 3),
		{Text: "no rating at all"},
	}
}

func TestAnalyze_UnigramsAndBigrams(t *testing.T) {
	require.Equal(t, []string{"Great", "campus", "Great campus"}, analyze("Great campus!"))
	require.Equal(t, []string{"emptydocument"}, analyze("the and of"))
	require.Nil(t, analyze("! ?"))
}

func TestLabel(t *testing.T) {
	require.True(t, Label(rev("x", 6)))
	require.False(t, Label(rev("x", 5)))
	require.False(t, Label(domain.Review{Text: "x"}))
}

func TestTrainAndPredict(t *testing.T) {
	m, err := Train(trainingSet())
	require.NoError(t, err)

	neg, pos := m.ClassCounts()
	require.Equal(t, 4, neg)
	require.Equal(t, 3, pos)
	require.Greater(t, m.VocabularySize(), 10)

	require.True(t, m.Predict("great campus"))
	require.False(t, m.Predict("terrible housing"))

	p := m.PredictProba("great campus")
	require.Greater(t, p, 0.5)
	require.LessOrEqual(t, p, 1.0)
	require.Less(t, m.PredictProba("terrible housing"), 0.5)
}

func TestPredict_UnseenTextFallsBackToPrior(t *testing.T) {
	m, err := Train(trainingSet())
	require.NoError(t, err)
	// no known features: prior P(pos) = 3/7
	require.False(t, m.Predict("zzz qqq"))
	require.InDelta(t, 3.0/7.0, m.PredictProba("zzz qqq"), 1e-9)
}

func TestTrain_StopWordOnlyDocuments(t *testing.T) {
	m, err := Train([]domain.Review{rev("the and of", 9), rev("awful", 1)})
	require.NoError(t, err)
	require.True(t, m.Predict("it is"))
	require.False(t, m.Predict("awful"))
}

func TestTrain_SingleClass(t *testing.T) {
	m, err := Train([]domain.Review{rev("nice", 9), rev("fine place", 7)})
	require.NoError(t, err)
	require.True(t, m.Predict("anything"))
	require.InDelta(t, 1.0, m.PredictProba("nice"), 1e-12)
}

func TestTrain_Errors(t *testing.T) {
	_, err := Train(nil)
	require.ErrorIs(t, err, ErrNoExamples)
	_, err = Train([]domain.Review{rev("!!", 9)})
	require.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestSplitAndEvaluate(t *testing.T) {
	data := trainingSet()
	train, test, err := Split(data, 0.2, 42)
	require.NoError(t, err)
	require.Len(t, test, 2) // ceil(0.2 * 7)
	require.Len(t, train, 5)

	again, _, _ := Split(data, 0.2, 42)
	require.Equal(t, train, again, "split must be deterministic for a seed")

	m, err := Train(data)
	require.NoError(t, err)
	rep := Evaluate(m, data)
	require.Equal(t, 7, rep.Total)
	require.Equal(t, rep.Classes[0].Support+rep.Classes[1].Support, rep.Total)
	require.False(t, math.IsNaN(rep.Accuracy))
	require.Contains(t, rep.String(), "precision")

	_, _, err = Split(data[:1], 0.2, 1)
	require.Error(t, err)
}
