package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, Load(""))
	assert.Equal(t, time.UTC, Load("Nowhere/Atlantis"))
	assert.Equal(t, "Europe/Paris", Load("Europe/Paris").String())
}

func TestClock(t *testing.T) {
	t.Parallel()

	paris := Load("Europe/Paris")
	assert.Equal(t, paris, Clock(paris)().Location())
}
