package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventoryservice/pkg/domain/model"
)

func TestHTMLRendererViews(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	t.Run("Listing", func(t *testing.T) {
		var buf strings.Builder
		page := listingPage{
			Products: []model.Product{{Name: "Widget", Price: 10, Quantity: 5, Unit: "pcs"}},
			Username: "alice",
		}
		require.NoError(t, renderer.Render(&buf, viewIndex, page))
		assert.Contains(t, buf.String(), "Widget")
		assert.Contains(t, buf.String(), "alice")
	})

	t.Run("Report", func(t *testing.T) {
		var buf strings.Builder
		page := reportPage{Report: []model.ReportRow{{Name: "Widget", Quantity: 5, TotalValue: 50}}}
		require.NoError(t, renderer.Render(&buf, viewReport, page))
		assert.Contains(t, buf.String(), "50")
	})

	t.Run("Forms", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, renderer.Render(&buf, viewLogin, nil))
		require.NoError(t, renderer.Render(&buf, viewRegister, nil))
	})
}
