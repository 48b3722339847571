package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olxsync/internal/normalize"
)

func TestDisplaySize(t *testing.T) {
	t.Run("PassThrough", func(t *testing.T) {
		assert.Equal(t, "14.1", normalize.DisplaySize("14.1 inch"))
		assert.Equal(t, "17", normalize.DisplaySize("17 inch panel"))
	})

	t.Run("VocabularyFixup", func(t *testing.T) {
		assert.Equal(t, "13.3", normalize.DisplaySize("13.4-inch"))
	})

	t.Run("Default", func(t *testing.T) {
		assert.Equal(t, "15.6", normalize.DisplaySize("no number here"))
		assert.Equal(t, "15.6", normalize.DisplaySize(""))
	})

	t.Run("FirstNumberWins", func(t *testing.T) {
		assert.Equal(t, "15.6", normalize.DisplaySize("15.6 (1920x1080)"))
	})
}

func TestOS(t *testing.T) {
	assert.Equal(t, "Win 11", normalize.OS("Windows 11 Home"))
	assert.Equal(t, "Win 10", normalize.OS("Windows 10 Pro 64-bit"))
	assert.Equal(t, "Mac OS", normalize.OS("macOS Sonoma"))
	assert.Equal(t, "Linux", normalize.OS("Ubuntu Linux"))
	assert.Equal(t, "Other", normalize.OS("FreeDOS"))
	assert.Equal(t, "Other", normalize.OS(""))

	t.Run("MatchPriority", func(t *testing.T) {
		// Both markers present: the earlier rule wins.
		assert.Equal(t, "Win 10", normalize.OS("Windows 10 with Linux subsystem"))
		assert.Equal(t, "Win 11", normalize.OS("Windows 11 downgrade from Windows 10"))
	})
}

func TestCPU(t *testing.T) {
	assert.Equal(t, "Intel", normalize.CPU("Intel Core i7-1255U"))
	assert.Equal(t, "Intel", normalize.CPU("INTEL CELERON"))
	assert.Equal(t, "AMD", normalize.CPU("AMD Ryzen 5 5500U"))
	assert.Equal(t, "AMD", normalize.CPU("amd ryzen"))
	assert.Equal(t, "Other", normalize.CPU("Apple M2"))
}

func TestGraphics(t *testing.T) {
	assert.Equal(t, "Discrete", normalize.Graphics("Plug-in-Card"))
	assert.Equal(t, "Integrated", normalize.Graphics("Integrated"))
	assert.Equal(t, "Integrated", normalize.Graphics(""))
	// Substring is not enough, the marker is an exact match.
	assert.Equal(t, "Integrated", normalize.Graphics("Plug-in-Card (MXM)"))
}

func TestParseQuantity(t *testing.T) {
	t.Run("Buckets", func(t *testing.T) {
		q := normalize.ParseQuantity("20+")
		require.True(t, q.Bucketed)
		assert.Equal(t, 20, q.Units)

		q = normalize.ParseQuantity("10+")
		require.True(t, q.Bucketed)
		assert.Equal(t, 10, q.Units)
	})

	t.Run("PassThrough", func(t *testing.T) {
		q := normalize.ParseQuantity("7")
		require.False(t, q.Bucketed)
		assert.Equal(t, "7", q.Raw)
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		data, err := json.Marshal(normalize.ParseQuantity("20+"))
		require.NoError(t, err)
		assert.Equal(t, "20", string(data))

		// Non-bucket values go to the marketplace as the raw string.
		data, err = json.Marshal(normalize.ParseQuantity("7"))
		require.NoError(t, err)
		assert.Equal(t, `"7"`, string(data))
	})
}

func TestDefaultAttributes(t *testing.T) {
	attrs := normalize.DefaultAttributes()
	assert.Equal(t, "15.6", attrs.Display)
	assert.Equal(t, "Other", attrs.OS)
	assert.Equal(t, "Other", attrs.CPU)
	assert.Equal(t, "8 GB", attrs.RAM)
	assert.Equal(t, "Integrated", attrs.Graphics)
}
