package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormState_IsSubmitting(t *testing.T) {
	assert.False(t, FormState{}.IsSubmitting())
	assert.False(t, FormState{Status: StatusIdle}.IsSubmitting())
	assert.True(t, FormState{Status: StatusPending}.IsSubmitting())
	assert.False(t, FormState{Status: StatusFailed}.IsSubmitting())
}

func TestFormState_HasResults(t *testing.T) {
	assert.False(t, FormState{}.HasResults())
	assert.True(t, FormState{Results: []LookupResult{{AccountNumber: "123"}}}.HasResults())
}

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
