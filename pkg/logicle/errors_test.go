package logicle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("building scale: %w", illegalParameter("W is too large"))

	assert.ErrorIs(t, err, ErrIllegalParameter)
	assert.NotErrorIs(t, err, ErrIllegalArgument)
	assert.Equal(t, IllegalParameter, KindOf(err))
	assert.Equal(t, "building scale: logicle: W is too large", err.Error())

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "W is too large", e.Message)

	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, "did not converge", DidNotConverge.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())

	assert.Equal(t, "logicle: illegal argument value 1.5", illegalValue(1.5).Error())
	assert.Equal(t, "logicle: illegal argument value -3", illegalIndex(-3).Error())
}
