package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	day := time.Date(2024, time.March, 7, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "CS/070324/0001", Number(day, 1))
	assert.Equal(t, "CS/070324/0042", Number(day, 42))
	assert.Equal(t, "CS/070324/12345", Number(day, 12345))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "311224", DayKey(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "010125", DayKey(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func sampleReceipt() models.Receipt {
	return models.Receipt{
		Number:   "CS/070324/0003",
		IssuedAt: time.Date(2024, time.March, 7, 14, 5, 0, 0, time.UTC),
		Cashier:  "ani",
		Lines: []models.CartLine{
			{Name: "Kopi Susu", UnitPrice: 5000, Qty: 3},
			{Name: "Roti Bakar", UnitPrice: 12500, Qty: 1},
		},
		Total: 27500,
	}
}

func TestLines_Layout(t *testing.T) {
	lines := Lines("Kasir Hijau", sampleReceipt())

	require.Len(t, lines, 16)
	assert.Equal(t, "         Kasir Hijau", lines[0])
	assert.Equal(t, strings.Repeat("=", 30), lines[1])
	assert.Equal(t, "Receipt : CS/070324/0003", lines[2])
	assert.Equal(t, "Time    : 07 Mar 24 14:05", lines[3])
	assert.Equal(t, strings.Repeat("-", 30), lines[4])
	assert.Equal(t, "3 Kopi Susu             15.000", lines[5])
	assert.Equal(t, "1 Roti Bakar            12.500", lines[6])
	assert.Equal(t, strings.Repeat("-", 30), lines[7])
	assert.Equal(t, "Subtotal 2 Items          27.500", lines[8])
	assert.Equal(t, "Total Due                 27.500", lines[9])
	assert.Equal(t, "", lines[10])
	assert.Equal(t, "Debit/Credit Card", lines[11])
	assert.Equal(t, "Total Paid                27.500", lines[12])
	assert.Equal(t, strings.Repeat("=", 30), lines[13])
	assert.Equal(t, "Paid 07 Mar 24 14:05", lines[14])
	assert.Equal(t, "Printed by: ani", lines[15])
}

func TestText_JoinsWithNewlines(t *testing.T) {
	lines := Lines("Kasir Hijau", sampleReceipt())
	txt := Text(lines)

	assert.Equal(t, len(lines)-1, strings.Count(txt, "\n"))
	assert.True(t, strings.HasPrefix(txt, "         Kasir Hijau\n"))
	assert.True(t, strings.HasSuffix(txt, "Printed by: ani"))
}

func TestLines_LongStoreNameNotPadded(t *testing.T) {
	name := strings.Repeat("X", 40)
	assert.Equal(t, name, Lines(name, models.Receipt{})[0])
}
