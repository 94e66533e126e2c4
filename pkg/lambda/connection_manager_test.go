package lambda

import (
	"context"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magento-commerce-actions/internal/config"
	"magento-commerce-actions/pkg/server"
)

func TestInitializeRejectsMissingHost(t *testing.T) {
	cm := &ContainerManager{}

	err := cm.Initialize(&config.Config{Magento: config.MagentoConfig{Timeout: time.Second}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAGENTO_HOST")
	assert.False(t, cm.IsHealthy())
}

func TestInitializeBuildsContainerOnce(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cm := &ContainerManager{}
	cfg := &config.Config{Magento: config.MagentoConfig{Host: "magento.internal", Timeout: time.Second}}

	require.NoError(t, cm.Initialize(cfg, server.WithLogger(logger)))
	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)

	require.NoError(t, cm.Initialize(cfg, server.WithLogger(logger)))
	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, cm.IsHealthy())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())
}
