package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
)

func testConfig(addr string) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = addr
	return c
}

func TestNewApp_GeneratesSecretWhenEmpty(t *testing.T) {
	c := testConfig("127.0.0.1:0")

	app, err := newApp(c, logging.Nop{})
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Len(t, c.SecretKey, 64)

	c2 := testConfig("127.0.0.1:0")
	_, err = newApp(c2, logging.Nop{})
	require.NoError(t, err)
	assert.NotEqual(t, c.SecretKey, c2.SecretKey)
}

func TestNewApp_KeepsConfiguredSecret(t *testing.T) {
	c := testConfig("127.0.0.1:0")
	c.SecretKey = "configured"

	_, err := newApp(c, logging.Nop{})
	require.NoError(t, err)
	assert.Equal(t, "configured", c.SecretKey)
}

func TestNewApp_RejectsNonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		c := testConfig("127.0.0.1:0")
		c.ChallengeTTL = ttl

		app, err := newApp(c, logging.Nop{})
		assert.ErrorIs(t, err, config.ErrInvalidTTL)
		assert.Nil(t, app)

		c = testConfig("127.0.0.1:0")
		c.SessionTTL = ttl

		app, err = newApp(c, logging.Nop{})
		assert.ErrorIs(t, err, config.ErrInvalidTTL)
		assert.Nil(t, app)
	}
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	app, err := newApp(testConfig("127.0.0.1:0"), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_Run_FailsOnBadAddress(t *testing.T) {
	app, err := newApp(testConfig("127.0.0.1:99999"), logging.Nop{})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not report listen failure")
	}
}
