package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSessionFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		token string
		size  int
	}{
		{name: "Token preenchido", token: "abc.def.ghi", size: 12},
		{name: "Token vazio", token: "  ", size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fingerprint := SessionFingerprint(tt.token)
			assert.Len(t, fingerprint, tt.size)
		})
	}

	assert.Equal(t, SessionFingerprint("x"), SessionFingerprint(" x "))
	assert.NotEqual(t, SessionFingerprint("x"), SessionFingerprint("y"))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("branch"))
	assert.False(t, keepInDevelopment("user_agent"))
}
