package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() Data {
	return Data{
		GeneratedAt: time.Now(),
		Batches: []BatchSection{
			{
				BatchID:        1,
				CountyName:     "Travis",
				CountyNumber:   "227",
				ProcessingType: "WALK",
				ProcessingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Groups: []TransactionGroup{
					{
						TypeName: "Title Transfer",
						Tickets: []TicketLine{
							{TicketID: 100, CustomerName: "Jane Roe", EstimationFee: 125.50,
								Checks: []CheckLine{{CheckNumber: "4471", Amount: 125.50}}},
							{TicketID: 101, CustomerName: "John Doe", EstimationFee: -10.25},
						},
					},
				},
			},
			{
				BatchID:        2,
				CountyName:     "Williamson",
				ProcessingType: "DROP",
				ProcessingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Comment:        `reprint <script>alert("x")</script> requested`,
				Groups: []TransactionGroup{
					{TypeName: "Renewal", Tickets: []TicketLine{{TicketID: 102, CustomerName: "Ann Smith", EstimationFee: 80}}},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.Render(sampleData())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Travis County")
	assert.Contains(t, html, "#227")
	assert.Contains(t, html, "Jane Roe")
	assert.Contains(t, html, "4471")
	assert.Contains(t, html, "$125.50")
	assert.Contains(t, html, "($10.25)")
	assert.Contains(t, html, "03/10/2025")

	// one page per batch, separated by explicit page breaks
	assert.Equal(t, 2, strings.Count(html, `<div class="batch">`))
	assert.Contains(t, html, "page-break-after: always")
}

func TestRenderSanitizesComments(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.Render(sampleData())
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "reprint")
}

func TestFileStorageRoundTrip(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	name, err := s.Save([]byte("<html>report</html>"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "county_report_"))

	content, err := s.Open(name)
	require.NoError(t, err)
	assert.Equal(t, "<html>report</html>", string(content))

	_, err = s.Open("../" + name)
	assert.Error(t, err)
}
