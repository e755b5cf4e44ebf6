package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, "2222", GetEnv("ASCIIWAVE_TEST_UNSET_PORT", "2222"))
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv("ASCIIWAVE_TEST_PORT", "2323")
		assert.Equal(t, "2323", GetEnv("ASCIIWAVE_TEST_PORT", "2222"))
	})

	t.Run("set empty", func(t *testing.T) {
		t.Setenv("ASCIIWAVE_TEST_HOST_KEY", "")
		assert.Equal(t, "", GetEnv("ASCIIWAVE_TEST_HOST_KEY", "/keys/host"))
	})
}

func TestListenAddr(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "[::]:2222", ListenAddr("ASCIIWAVE_TEST_UNSET_HOST", "ASCIIWAVE_TEST_UNSET_PORT", "::", "2222"))
	})

	t.Run("overridden", func(t *testing.T) {
		t.Setenv("ASCIIWAVE_TEST_HOST", "127.0.0.1")
		t.Setenv("ASCIIWAVE_TEST_PORT", "2323")
		assert.Equal(t, "127.0.0.1:2323", ListenAddr("ASCIIWAVE_TEST_HOST", "ASCIIWAVE_TEST_PORT", "::", "2222"))
	})
}
