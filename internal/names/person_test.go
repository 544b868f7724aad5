package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonName(t *testing.T) {
	t.Run("No Middle Name", func(t *testing.T) {
		p := NewPersonName("George", "Washington")
		assert.False(t, p.HasMiddleName())
		assert.Equal(t, "George", p.First())
		assert.Equal(t, "Washington", p.Last())

		_, ok := p.Middle()
		assert.False(t, ok)
		assert.Equal(t, "George Washington", p.Full())
	})

	t.Run("With Middle Name", func(t *testing.T) {
		p := NewPersonName("Barack", "Obama", WithMiddle("Hussein"))
		assert.True(t, p.HasMiddleName())

		mid, ok := p.Middle()
		assert.True(t, ok)
		assert.Equal(t, "Hussein", mid)
		assert.Equal(t, "Barack Hussein Obama", p.Full())
	})

	t.Run("Empty Middle Name Is Still Present", func(t *testing.T) {
		p := NewPersonName("Jane", "Doe", WithMiddle(""))
		assert.True(t, p.HasMiddleName())

		mid, ok := p.Middle()
		assert.True(t, ok)
		assert.Empty(t, mid)
		// Full skips the empty part so no double space appears.
		assert.Equal(t, "Jane Doe", p.Full())
	})
}
