package suggest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyIndexAdd(t *testing.T) {
	fi := NewFrequencyIndex()
	fi.Add(map[string]int{"go": 2, "gopher": 1})
	fi.Add(map[string]int{"go": 3, "": 4, "zero": 0})

	assert.Equal(t, 5, fi.Confidence("go"))
	assert.Equal(t, 1, fi.Confidence("gopher"))
	assert.Equal(t, 0, fi.Confidence(""))
	assert.Equal(t, 0, fi.Confidence("zero"))
	assert.Equal(t, 2, fi.Len())
	assert.Equal(t, map[string]int{"words": 2, "tokens": 6, "maxConfidence": 5}, fi.Stats())
}

func TestFrequencyIndexSearch(t *testing.T) {
	fi := NewFrequencyIndex()
	fi.Add(map[string]int{"go": 1, "gopher": 2, "golang": 3, "rust": 4})

	assert.ElementsMatch(t,
		[]Candidate{{"go", 1}, {"gopher", 2}, {"golang", 3}},
		fi.Search("go"))
	assert.ElementsMatch(t, []Candidate{{"gopher", 2}}, fi.Search("gop"))
	assert.Empty(t, fi.Search("gox"))
	assert.Empty(t, fi.Search(""))
	assert.NotNil(t, fi.Search("nothing"))
}

func TestFrequencyIndexConcurrentAccess(t *testing.T) {
	fi := NewFrequencyIndex()
	const writers, rounds = 4, 250

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				fi.Add(map[string]int{"pair": 2})
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				for _, c := range fi.Search("pa") {
					if c.Confidence%2 != 0 {
						t.Errorf("observed partial count %d", c.Confidence)
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*rounds*2, fi.Confidence("pair"))
}
