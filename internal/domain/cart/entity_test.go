// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() View {
	return View{
		CartID:        "gid://shopify/Cart/abc",
		TotalQuantity: 3,
		Lines: []LineView{
			{LineID: "line-1", MerchandiseID: "var-1", Quantity: 2},
			{LineID: "line-2", MerchandiseID: "var-2", Quantity: 1},
		},
	}
}

func TestApplyAddMergesExistingLine(t *testing.T) {
	v := snapshot()
	out := v.ApplyAdd("var-1", 3)

	require.Len(t, out.Lines, 2)
	assert.Equal(t, 5, out.Lines[0].Quantity)
	assert.Equal(t, 6, out.TotalQuantity)

	// The receiver stays untouched
	assert.Equal(t, 2, v.Lines[0].Quantity)
	assert.Equal(t, 3, v.TotalQuantity)
}

func TestApplyAddInsertsNewLine(t *testing.T) {
	out := snapshot().ApplyAdd("var-3", 1)

	require.Len(t, out.Lines, 3)
	assert.Equal(t, "var-3", out.Lines[2].MerchandiseID)
	assert.Equal(t, 4, out.TotalQuantity)
}

func TestApplyUpdateReplacesQuantity(t *testing.T) {
	out := snapshot().ApplyUpdate("var-1", 7)

	require.Len(t, out.Lines, 2)
	assert.Equal(t, 7, out.Lines[0].Quantity)
	assert.Equal(t, 8, out.TotalQuantity)
}

func TestApplyUpdateZeroDropsLine(t *testing.T) {
	out := snapshot().ApplyUpdate("var-1", 0)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, "var-2", out.Lines[0].MerchandiseID)
	assert.Equal(t, 1, out.TotalQuantity)
}

func TestApplyUpdateMissingLineAdds(t *testing.T) {
	out := snapshot().ApplyUpdate("var-9", 2)

	require.Len(t, out.Lines, 3)
	assert.Equal(t, 5, out.TotalQuantity)
}

func TestApplyRemove(t *testing.T) {
	out := snapshot().ApplyRemove("var-2")

	require.Len(t, out.Lines, 1)
	assert.Nil(t, out.LineForMerchandise("var-2"))

	// Removing an absent line is a no-op
	again := out.ApplyRemove("var-2")
	assert.Equal(t, out.TotalQuantity, again.TotalQuantity)
}

func TestLineForMerchandise(t *testing.T) {
	v := snapshot()

	line := v.LineForMerchandise("var-2")
	require.NotNil(t, line)
	assert.Equal(t, "line-2", line.LineID)

	assert.Nil(t, v.LineForMerchandise("missing"))
}
