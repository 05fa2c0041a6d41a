package fallback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDo_PrimarySucceeds(t *testing.T) {
	called := false
	v, err := Do(
		func() (string, error) { return "fresh", nil },
		func(error) (string, error) { called = true; return "stale", nil },
	)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.False(t, called)
}

func TestDo_SecondaryRecovers(t *testing.T) {
	boom := errors.New("upstream down")
	var seen error
	v, err := Do(
		func() (int, error) { return 0, boom },
		func(err error) (int, error) { seen = err; return 7, nil },
	)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.ErrorIs(t, seen, boom)
}

func TestDo_SecondaryGivesUp(t *testing.T) {
	boom := errors.New("upstream down")
	notFound := errors.New("not found")
	_, err := Do(
		func() (*struct{}, error) { return nil, boom },
		func(error) (*struct{}, error) { return nil, notFound },
	)
	assert.ErrorIs(t, err, notFound)
}
