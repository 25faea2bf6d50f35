package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/blossom-gen/pkg/gamedata"
)

func TestLoad_UnknownVersion(t *testing.T) {
	_, err := gamedata.Load("nonexistent-version")
	require.Error(t, err)
}

func TestRegisterAndLoad(t *testing.T) {
	called := false
	gamedata.Register("test-version", func() *gamedata.GameData {
		called = true
		return &gamedata.GameData{Version: "test-version"}
	})

	gd, err := gamedata.Load("test-version")
	require.NoError(t, err)
	require.NotNil(t, gd)
	assert.True(t, called, "factory function was not called")
	assert.Equal(t, "test-version", gd.Version)
}

func TestRegisteredVersions(t *testing.T) {
	gamedata.Register("rv-test", func() *gamedata.GameData {
		return &gamedata.GameData{}
	})

	versions := gamedata.RegisteredVersions()
	assert.Contains(t, versions, "rv-test")
	assert.IsNonDecreasing(t, versions)
}
