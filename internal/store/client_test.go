package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/bpso-complaint-intake/internal/config"
)

func TestNewClientRequiresCredentialsForAWS(t *testing.T) {
	cfg := &config.Config{AWSRegion: "ap-southeast-1"}

	_, err := NewClient(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNewClientLocalEndpointWithoutCredentials(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:        "ap-southeast-1",
		DynamoDBEndpoint: "http://localhost:8000",
	}

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}
