package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zoocast/catalog-api/pkg/config"
)

func TestNewServerAppliesServerConfig(t *testing.T) {
	cfg := config.ServerConfig{
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   7 * time.Second,
		MaxHeaderBytes: 4096,
	}

	server := NewServer("127.0.0.1:8080", cfg)

	assert.Equal(t, "127.0.0.1:8080", server.httpServer.Addr)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 7*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 4096, server.httpServer.MaxHeaderBytes)
	assert.Same(t, server.Engine(), server.httpServer.Handler)
}
