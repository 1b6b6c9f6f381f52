package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atharsaifi001-eng/NEAT-RE/internal/config"
)

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient(context.Background(), config.RedisConfig{URL: "not-a-url://"})
	assert.Error(t, err)
}
