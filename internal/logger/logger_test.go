package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	defer Init("info")

	Init("debug")
	assert.Equal(t, log.DebugLevel, L().GetLevel())

	Init("not-a-level")
	assert.Equal(t, log.InfoLevel, L().GetLevel())

	Init("")
	assert.Equal(t, log.InfoLevel, L().GetLevel())
}
