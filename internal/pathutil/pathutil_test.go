package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{configFileName: "config.yml", dbFileName: "focusflow.db"}

	p.applyEnvironmentOverrides("  ")
	assert.Equal(t, "config.yml", p.configFileName)

	p.applyEnvironmentOverrides("dev")
	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "focusflow_dev.db", p.dbFileName)
	assert.Equal(t, "focusflow_dev.sqlite", p.sqliteFileName)
	assert.Equal(t, "offline_dev.db", p.offlineFileName)
	assert.Equal(t, "status_dev.json", p.statusFileName)
	assert.Equal(t, "focusflow_dev.log", p.logFileName)
}
