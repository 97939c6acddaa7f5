package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/purposeinplay/go-invoicewords/amount"
	"github.com/purposeinplay/go-invoicewords/numwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeConvert(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"convert"}, args...))

	err := root.Execute()

	return out.String(), err
}

func TestConvert(t *testing.T) {
	t.Run("Words", func(t *testing.T) {
		out, err := executeConvert(t, "21", "1500", "75000.50")
		require.NoError(t, err)

		assert.Equal(t, "vingt-et-un\nmille-cinq-cents\nsoixante-quinze-mille\n", out)
	})

	t.Run("Upper", func(t *testing.T) {
		out, err := executeConvert(t, "--upper", "80")
		require.NoError(t, err)

		assert.Equal(t, "QUATRE-VINGTS\n", out)
	})

	t.Run("Mention", func(t *testing.T) {
		out, err := executeConvert(t, "--mention", "75000")
		require.NoError(t, err)

		assert.Equal(t, "Arrêtée à la somme de SOIXANTE-QUINZE-MILLE Francs CFA.\n", out)
	})

	t.Run("NotANumber", func(t *testing.T) {
		_, err := executeConvert(t, "mille")
		assert.True(t, errors.Is(err, amount.ErrInvalidValue))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := executeConvert(t, "1000000000000")
		assert.True(t, errors.Is(err, numwords.ErrOutOfRange))
	})

	t.Run("LargeExponent", func(t *testing.T) {
		_, err := executeConvert(t, "1e5000000")
		assert.True(t, errors.Is(err, amount.ErrTooLarge))
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, err := executeConvert(t)
		assert.Error(t, err)
	})
}
