package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "delicious-bistro", Slugify("Delicious Bistro!"))
	assert.Equal(t, "caf-luna", Slugify("  Café   Luna  "))
	assert.Equal(t, "pizza-pasta-2", Slugify("Pizza & Pasta #2"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "sushi", Slugify("Sushi"))
}
