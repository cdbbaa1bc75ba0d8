package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAudioBook(t *testing.T) {
	tests := []struct {
		name          string
		duration      float64
		expectedShow  string
		expectedDebug string
	}{
		{
			name:          "fractional duration",
			duration:      3.5,
			expectedShow:  "Audio book X. Author Y. Duration 3.5",
			expectedDebug: "AudioBook(name='X', author='Y', duration=3.5)",
		},
		{
			name:          "integral duration keeps decimal point",
			duration:      5,
			expectedShow:  "Audio book X. Author Y. Duration 5.0",
			expectedDebug: "AudioBook(name='X', author='Y', duration=5.0)",
		},
		{
			name:          "tiny duration uses exponent",
			duration:      0.00002,
			expectedShow:  "Audio book X. Author Y. Duration 2e-05",
			expectedDebug: "AudioBook(name='X', author='Y', duration=2e-05)",
		},
		{
			name:          "infinite duration is positive",
			duration:      math.Inf(1),
			expectedShow:  "Audio book X. Author Y. Duration inf",
			expectedDebug: "AudioBook(name='X', author='Y', duration=inf)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := NewAudioBook("X", "Y", tt.duration)
			require.NoError(t, err)

			assert.Equal(t, "X", book.Name())
			assert.Equal(t, "Y", book.Author())
			assert.Equal(t, tt.duration, book.Duration())
			assert.Equal(t, tt.expectedShow, book.String())
			assert.Equal(t, tt.expectedDebug, book.GoString())
		})
	}

	for _, duration := range []float64{0, -1.5, math.Inf(-1), math.NaN()} {
		t.Run("rejects non-positive duration", func(t *testing.T) {
			book, err := NewAudioBook("X", "Y", duration)
			assert.Nil(t, book)
			assert.ErrorIs(t, err, ErrInvalidValue)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, AudioBookType, fieldErr.Type)
			assert.Equal(t, "duration", fieldErr.Field)
		})
	}
}

func TestNewAudioBookFromValue(t *testing.T) {
	t.Run("accepts float64", func(t *testing.T) {
		book, err := NewAudioBookFromValue("X", "Y", 3.5)
		require.NoError(t, err)
		assert.Equal(t, 3.5, book.Duration())
	})

	t.Run("accepts float32", func(t *testing.T) {
		book, err := NewAudioBookFromValue("X", "Y", float32(2.5))
		require.NoError(t, err)
		assert.Equal(t, 2.5, book.Duration())
	})

	mismatched := []struct {
		name  string
		value any
	}{
		{"positive int", 5},
		{"positive int64", int64(5)},
		{"positive uint", uint(5)},
		{"numeric string", "3.5"},
		{"bool", true},
		{"nil", nil},
	}

	for _, tt := range mismatched {
		t.Run("type mismatch for "+tt.name, func(t *testing.T) {
			book, err := NewAudioBookFromValue("X", "Y", tt.value)
			assert.Nil(t, book)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			assert.NotErrorIs(t, err, ErrInvalidValue)
		})
	}

	t.Run("type is checked before value", func(t *testing.T) {
		_, err := NewAudioBookFromValue("X", "Y", -5)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	for _, value := range []any{0.0, -2.5, float32(-1), math.NaN()} {
		t.Run("invalid value", func(t *testing.T) {
			book, err := NewAudioBookFromValue("X", "Y", value)
			assert.Nil(t, book)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestAudioBookSetDuration(t *testing.T) {
	book, err := NewAudioBook("Dune", "Herbert", 21.25)
	require.NoError(t, err)

	require.NoError(t, book.SetDuration(18.5))
	assert.Equal(t, 18.5, book.Duration())
	assert.Equal(t, "Audio book Dune. Author Herbert. Duration 18.5", book.String())

	t.Run("failed assignment keeps previous value", func(t *testing.T) {
		assert.ErrorIs(t, book.SetDuration(0), ErrInvalidValue)
		assert.ErrorIs(t, book.SetDurationValue(20), ErrTypeMismatch)
		assert.ErrorIs(t, book.SetDurationValue(-20.0), ErrInvalidValue)
		assert.Equal(t, 18.5, book.Duration())
	})

	t.Run("dynamic assignment", func(t *testing.T) {
		require.NoError(t, book.SetDurationValue(12.0))
		assert.Equal(t, 12.0, book.Duration())
	})
}
