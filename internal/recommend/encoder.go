// Package recommend computes ranked job recommendations from a precomputed
// factorization model.
package recommend

import "fmt"

// Encoder builds the raw feature vector for a user. The encoding scheme is an
// injected policy: the default one-hot-by-user-id encoder reproduces the
// historical behavior, but nothing in the scorer depends on it.
type Encoder interface {
	Encode(userID int64) ([]float64, error)
}

// ErrFeatureOutOfRange indicates a user id that cannot be encoded into the
// model's feature space.
type ErrFeatureOutOfRange struct {
	UserID int64
	Length int
}

func (e *ErrFeatureOutOfRange) Error() string {
	return fmt.Sprintf("user id %d outside feature range [0, %d)", e.UserID, e.Length)
}

// OneHotEncoder encodes a user as a zero vector of Length with a single 1 at
// the user id index.
type OneHotEncoder struct {
	Length int
}

// Encode returns the one-hot feature vector for userID.
func (e OneHotEncoder) Encode(userID int64) ([]float64, error) {
	if userID < 0 || userID >= int64(e.Length) {
		return nil, &ErrFeatureOutOfRange{UserID: userID, Length: e.Length}
	}
	features := make([]float64, e.Length)
	features[userID] = 1
	return features, nil
}
