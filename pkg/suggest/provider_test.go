package suggest

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passage = "The third thing that I need to tell you is that this thing does not think thoroughly."

func init() {
	log.SetLevel(log.ErrorLevel)
}

func trained(t *testing.T, times int) *AutocompleteProvider {
	t.Helper()
	p := NewProvider()
	for i := 0; i < times; i++ {
		p.Train(passage)
	}
	return p
}

func TestGetWordsScenarios(t *testing.T) {
	p := trained(t, 1)

	testCases := []struct {
		fragment string
		expected []Candidate
	}{
		{"thi", []Candidate{{"thing", 2}, {"this", 1}, {"third", 1}, {"think", 1}}},
		{"nee", []Candidate{{"need", 1}}},
		{"th", []Candidate{
			{"thing", 2}, {"that", 2}, {"thoroughly", 1}, {"this", 1},
			{"third", 1}, {"think", 1}, {"the", 1},
		}},
		{"foo", []Candidate{}},
		{"", []Candidate{}},
	}

	for _, tc := range testCases {
		t.Run(tc.fragment, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.GetWords(tc.fragment))
		})
	}
}

func TestTrainAccumulates(t *testing.T) {
	p := trained(t, 2)
	assert.Equal(t,
		[]Candidate{{"thing", 4}, {"this", 2}, {"third", 2}, {"think", 2}},
		p.GetWords("thi"))

	once := trained(t, 1)
	for _, c := range once.GetWords("t") {
		assert.Equal(t, 2*c.Confidence, p.index.Confidence(c.Word), c.Word)
	}
}

func TestGetWordsCaseInsensitive(t *testing.T) {
	p := trained(t, 1)
	assert.Equal(t, p.GetWords("thi"), p.GetWords("THI"))
	assert.Equal(t, p.GetWords("thi"), p.GetWords("tHi"))
}

func TestGetWordsIncludesExactWord(t *testing.T) {
	p := trained(t, 1)
	assert.Equal(t, []Candidate{{"need", 1}}, p.GetWords("need"))
	assert.Empty(t, p.GetWords("needs"))
}

func TestGetWordsKeepsFragmentPunctuation(t *testing.T) {
	p := NewProvider()
	p.Train("don't do that. Don't!")
	assert.Equal(t, []Candidate{{"don't", 2}}, p.GetWords("don'"))
	assert.Equal(t, []Candidate{{"don't", 2}, {"do", 1}}, p.GetWords("do"))
	assert.Empty(t, p.GetWords("'do"))
}

func TestGetWordsOrderInvariant(t *testing.T) {
	p := NewProvider()
	p.Train(strings.Repeat("alpha ", 3) + "alps alto alpine alpaca " + strings.Repeat("also ", 3) + "al")

	results := p.GetWords("al")
	require.Len(t, results, 7)
	for i := 1; i < len(results); i++ {
		a, b := results[i-1], results[i]
		ordered := a.Confidence > b.Confidence || (a.Confidence == b.Confidence && a.Word > b.Word)
		assert.True(t, ordered, "%v should rank before %v", a, b)
	}
}

func TestGetWordsResultIsACopy(t *testing.T) {
	p := trained(t, 1)
	results := p.GetWords("thi")
	results[0].Confidence = 100
	results[0].Word = "mutated"

	assert.Equal(t, Candidate{"thing", 2}, p.GetWords("thi")[0])
}

func TestProviderStates(t *testing.T) {
	p := NewProvider()
	assert.False(t, p.Trained())
	assert.Empty(t, p.GetWords("a"))

	p.Train("   \n\t ")
	assert.False(t, p.Trained())

	p.Train("-- ... !!")
	assert.False(t, p.Trained())

	p.Train("apple")
	assert.True(t, p.Trained())
	assert.Equal(t, map[string]int{"words": 1, "tokens": 1, "maxConfidence": 1}, p.Stats())
}

func TestNewProviderFrom(t *testing.T) {
	t.Run("trains once", func(t *testing.T) {
		p, err := NewProviderFrom(strings.NewReader(passage))
		require.NoError(t, err)
		assert.Equal(t, []Candidate{{"need", 1}}, p.GetWords("nee"))
		assert.Equal(t, 17, p.Stats()["tokens"])
	})

	t.Run("nil source", func(t *testing.T) {
		p, err := NewProviderFrom(nil)
		require.NoError(t, err)
		assert.False(t, p.Trained())
	})

	t.Run("read error", func(t *testing.T) {
		_, err := NewProviderFrom(failingReader{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errBroken)
	})
}

var errBroken = errors.New("broken pipe")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBroken
}
