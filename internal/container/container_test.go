package container

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Data.Directory = t.TempDir()
	cfg.Sync.TimeoutSeconds = 5
	cfg.Sync.Retries = 1
	cfg.Categories.File = "does-not-exist.yaml"
	return cfg
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(testConfig(t), logrus.New())
	require.NoError(t, err)

	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Config())
	assert.NotNil(t, c.Store())
	assert.NotNil(t, c.Repository())
	assert.NotNil(t, c.Settings())
	assert.NotNil(t, c.Categorizer())
	assert.NotNil(t, c.Syncer())
	assert.NotNil(t, c.Importer())
}

func TestNewContainerNilConfig(t *testing.T) {
	_, err := NewContainer(nil, logrus.New())
	assert.Error(t, err)
}

func TestNewContainerNilLoggerFallsBack(t *testing.T) {
	c, err := NewContainer(testConfig(t), nil)
	require.NoError(t, err)
	assert.NotNil(t, c.Logger())
}
