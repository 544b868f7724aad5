package mood

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	t.Run("One Line Per Feeling", func(t *testing.T) {
		got := Report("Suzie", []string{"happy", "excited", "nervous"})
		want := []string{
			"Suzie is feeling happy today.",
			"Suzie is feeling excited today.",
			"Suzie is feeling nervous today.",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("report mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("No Feelings", func(t *testing.T) {
		got := Report("X", nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
