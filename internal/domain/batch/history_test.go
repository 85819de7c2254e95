package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryLifecycle(t *testing.T) {
	h, err := NewHistory(3, []uint{1, 2}, 7)
	require.NoError(t, err)
	assert.Equal(t, HistoryInProgress, h.Status())

	err = h.MarkDownloaded()
	assert.Error(t, err, "in-progress report cannot be downloaded")

	h.MarkReady("county_report_abc.html")
	assert.Equal(t, HistoryReadyToDownload, h.Status())
	assert.Equal(t, "county_report_abc.html", h.FileName())

	require.NoError(t, h.MarkDownloaded())
	assert.Equal(t, HistoryDownloaded, h.Status())

	// downloading again is a no-op, not an error
	require.NoError(t, h.MarkDownloaded())
}

func TestHistoryMarkFailed(t *testing.T) {
	h, err := NewHistory(3, []uint{1}, 7)
	require.NoError(t, err)

	h.MarkFailed("template render: boom")
	assert.Equal(t, HistoryFailed, h.Status())
	assert.Equal(t, "template render: boom", h.Failure())
	assert.Error(t, h.MarkDownloaded())
}

func TestNewHistoryValidation(t *testing.T) {
	_, err := NewHistory(0, []uint{1}, 7)
	assert.Error(t, err)

	_, err = NewHistory(3, nil, 7)
	assert.Error(t, err)
}
