package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "currency prefix", in: "MVR 1250.00", want: "1250.00"},
		{name: "thousands separator", in: "MVR 1,250", want: "1250.00"},
		{name: "lowercase prefix no space", in: "mvr450", want: "450.00"},
		{name: "bare number", in: "99.5", want: "99.50"},
		{name: "surrounding spaces", in: "  300 ", want: "300.00"},
		{name: "zero", in: "0", want: "0.00"},
		{name: "empty", in: "", wantErr: true},
		{name: "only prefix", in: "MVR", wantErr: true},
		{name: "words", in: "a lot", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePrice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderRowRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	slip := "https://example.com/slip.png"
	in := NewOrder{
		CustomerName:  "Aisha",
		CustomerPhone: "+960 7771234",
		Items: []LineItem{{
			ProductName:  "Invaders Jersey",
			Price:        "MVR 450",
			Size:         "M",
			SizeCategory: "adult",
			SleeveType:   "short",
			JerseyName:   "AISHA",
			JerseyNumber: "7",
			Quantity:     2,
		}},
		TotalPrice:      "MVR 900",
		TransferSlipURI: &slip,
	}

	row, err := orderToRow("order-1", in, createdAt)
	require.NoError(t, err)
	assert.Equal(t, "900.00", row.TotalPrice)
	assert.Equal(t, string(StatusPending), row.Status)
	assert.Equal(t, createdAt, row.CreatedAt)
	assert.JSONEq(t, `[{"productName":"Invaders Jersey","productImage":"","price":"MVR 450","size":"M",
		"sizeCategory":"adult","sleeveType":"short","jerseyName":"AISHA","jerseyNumber":"7","quantity":2}]`, row.Items)

	order, err := orderFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, in.Items, order.Items)
	assert.Equal(t, &slip, order.TransferSlipURI)
	assert.Equal(t, StatusPending, order.Status)
}

func TestOrderToRow_InvalidTotal(t *testing.T) {
	_, err := orderToRow("order-1", NewOrder{TotalPrice: "free"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestOrderFromRow_Items(t *testing.T) {
	tests := []struct {
		name    string
		items   string
		want    int
		wantErr bool
	}{
		{name: "empty column", items: "", want: 0},
		{name: "json null", items: "null", want: 0},
		{name: "empty array", items: "[]", want: 0},
		{name: "one item", items: `[{"productName":"Tee","quantity":1}]`, want: 1},
		{name: "corrupt", items: `{"oops"`, want: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := orderFromRow(&repository.Order{ID: "o", Items: tt.items})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NotNil(t, order.Items)
			assert.Len(t, order.Items, tt.want)
		})
	}
}

func TestPatchColumns(t *testing.T) {
	name := "Away Kit"
	image := "https://example.com/away.png"
	assert.Equal(t, []repository.Column{
		{Name: "name", Value: name},
		{Name: "image", Value: image},
	}, merchPatchColumns(MerchPatch{Name: &name, Image: &image}))
	assert.Empty(t, merchPatchColumns(MerchPatch{}))

	pos := "Forward"
	number := "9"
	assert.Equal(t, []repository.Column{
		{Name: "position", Value: pos},
		{Name: "number", Value: number},
	}, heroPatchColumns(HeroPatch{Position: &pos, Number: &number}))
	assert.Empty(t, heroPatchColumns(HeroPatch{}))
}

func TestBankInfoValue(t *testing.T) {
	value, err := bankInfoToValue(DefaultBankInfo())
	require.NoError(t, err)
	assert.JSONEq(t, `{"bankName":"Bank of Maldives (BML)","accountName":"Club Invaders","accountNumber":"7730000123456"}`, value)

	info, err := bankInfoFromValue(value)
	require.NoError(t, err)
	assert.Equal(t, DefaultBankInfo(), info)

	_, err = bankInfoFromValue("not json")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Len(t, DefaultMerch(), 4)

	heroes := DefaultHeroes()
	assert.Len(t, heroes, 12)
	for _, h := range heroes {
		assert.Contains(t, Positions, h.Position, h.Name)
	}
	assert.Equal(t, "Ahmed Rasheed", heroes[0].Name)
	assert.Equal(t, "Goalkeeper", heroes[0].Position)
}
