package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))

	// Chuỗi không hợp lệ trả về ObjectID zero
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("khong-hop-le"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "agua mineral", NormalizeName("  Agua Mineral "))
	assert.Equal(t, "bebidas", NormalizeName("BEBIDAS"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC), parsed.UTC())

	parsed, err = ParseISODate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	// Chuỗi rỗng trả về thời điểm hiện tại
	before := time.Now()
	parsed, err = ParseISODate("")
	require.NoError(t, err)
	assert.WithinDuration(t, before, parsed, 2*time.Second)

	_, err = ParseISODate("15/08/2026")
	assert.Error(t, err)
}

func TestConvertStruct(t *testing.T) {
	type input struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	type model struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	var out model
	_, err := ConvertStruct(input{Name: "Taco", Price: 25.5}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Taco", out.Name)
	assert.Equal(t, 25.5, out.Price)
}
