package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/infrastructure/storage"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	ctx := context.Background()
	st, err := storage.Open(ctx, config.DBConfig{Driver: config.StorageMemory}, logger.Nop())
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Ping(ctx))
	require.NoError(t, st.Repos.Clients.Create(ctx, &entity.Client{FullName: "Ana", TaxID: "1", Email: "ana@x.com"}))

	c, err := st.Repos.Clients.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.DBConfig{Driver: "mongo"}, logger.Nop())
	assert.Error(t, err)
}
