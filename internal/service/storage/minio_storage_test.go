package storage

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/placement-dashboard/internal/config"
)

func TestNewMinIOStorage(t *testing.T) {
	s, err := NewMinIOStorage(config.StorageConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "dashboard-exports",
		Region:    "us-east-1",
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "dashboard-exports", s.bucket)
	assert.Equal(t, 24*time.Hour, s.presignExpiry)
	assert.False(t, s.bucketEnsured)

	var _ ObjectStorage = s
}

func TestNewMinIOStorage_PresignExpiry(t *testing.T) {
	s, err := NewMinIOStorage(config.StorageConfig{
		Endpoint:      "localhost:9000",
		Bucket:        "dashboard-exports",
		PresignExpiry: time.Hour,
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, s.presignExpiry)
}
