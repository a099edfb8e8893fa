package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditions_IconsBelongToEnumeration(t *testing.T) {
	assert.Len(t, Conditions, 9)
	for _, c := range Conditions {
		assert.True(t, ValidIcon(c.Icon), "condition %q has unknown icon %q", c.Description, c.Icon)
		assert.NotEmpty(t, c.Description)
	}
}

func TestIconInfoFor(t *testing.T) {
	info := IconInfoFor("01d")
	assert.Equal(t, "amber", info.Color)
	assert.Equal(t, "amber-50", info.BgColor)
	assert.Equal(t, "Clear Sky", info.Label)

	// Night variants have their own presentation.
	assert.Equal(t, "indigo", IconInfoFor("01n").Color)
}

func TestIconInfoFor_UnknownCode(t *testing.T) {
	assert.Equal(t, DefaultIconInfo, IconInfoFor("99x"))
	assert.Equal(t, DefaultIconInfo, IconInfoFor(""))
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range Severities {
		assert.True(t, s.Valid())
	}
	assert.False(t, Severity("catastrophic").Valid())
}
