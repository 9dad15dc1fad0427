package co2trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdditiveForecaster(t *testing.T) {
	fc, err := NewAdditiveForecaster()
	require.Nil(t, err)
	require.NotNil(t, fc)
}

func TestAdditiveForecasterNilReceiver(t *testing.T) {
	var fc *AdditiveForecaster
	assert.ErrorIs(t, fc.Fit(nil, nil), ErrNilForecaster)

	_, err := fc.Predict(nil)
	assert.ErrorIs(t, err, ErrNilForecaster)
}
