package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhenEmptyYieldsNoCondition(t *testing.T) {
	assert.Nil(t, When())
}

func TestWhenDeduplicatesAndSorts(t *testing.T) {
	condition := When(PlatformMacOS, PlatformIOS, PlatformMacOS)
	require.NotNil(t, condition)
	assert.Equal(t, []Platform{PlatformIOS, PlatformMacOS}, condition.Platforms)
}

func TestConditionEqual(t *testing.T) {
	assert.True(t, When(PlatformIOS).Equal(When(PlatformIOS)))
	assert.True(t, When(PlatformIOS, PlatformMacOS).Equal(When(PlatformMacOS, PlatformIOS)))
	assert.False(t, When(PlatformIOS).Equal(When(PlatformMacOS)))
	assert.False(t, When(PlatformIOS).Equal(nil))

	var unconditional *PlatformCondition
	assert.True(t, unconditional.Equal(nil))
}

func TestPlatformIsValid(t *testing.T) {
	for _, p := range []Platform{PlatformIOS, PlatformMacOS, PlatformTVOS, PlatformWatchOS, PlatformVisionOS} {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, Platform("android").IsValid())
}
