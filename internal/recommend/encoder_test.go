package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHotEncode(t *testing.T) {
	enc := OneHotEncoder{Length: 5}

	features, err := enc.Encode(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 0}, features)
}

func TestOneHotEncodeBounds(t *testing.T) {
	enc := OneHotEncoder{Length: 5}

	tests := []struct {
		name   string
		userID int64
	}{
		{"negative id", -1},
		{"id equal to length", 5},
		{"id beyond length", 84090},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Encode(tt.userID)
			require.Error(t, err)
			var oob *ErrFeatureOutOfRange
			require.ErrorAs(t, err, &oob)
			assert.Equal(t, tt.userID, oob.UserID)
			assert.Equal(t, 5, oob.Length)
		})
	}
}
