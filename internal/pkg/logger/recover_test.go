package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverPanic_StopsPropagation(t *testing.T) {
	assert.NotPanics(t, func() {
		func() {
			defer RecoverPanic("test")
			panic("boom")
		}()
	})
}

func TestRecoverPanic_NoopWithoutPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		func() {
			defer RecoverPanic("test")
		}()
	})
}
