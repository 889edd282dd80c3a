package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/remark/internal/server"
	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/pkg/parent"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults when the file is missing", func(t *testing.T) {
		cfg, err := server.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, store.DriverPostgres, cfg.DB.Driver)
		assert.Equal(t, 10*time.Second, cfg.Comments.DefaultTimeout)
		assert.Equal(t, "Authorization", cfg.Auth.HeaderKey)
		assert.Len(t, cfg.ParentTypes, 2)
	})

	t.Run("should read parent types from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
db:
  driver: memory
parent_types:
  - name: question
    validator:
      type: expr
      config:
        expression: 'len(id) == 24'
  - name: project
`), 0o600))

		cfg, err := server.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, store.DriverMemory, cfg.DB.Driver)
		require.Len(t, cfg.ParentTypes, 2)
		assert.Equal(t, parent.ValidatorTypeExpr, cfg.ParentTypes[0].Validator.Type)
		assert.Equal(t, parent.ValidatorTypeNone, cfg.ParentTypes[1].Validator.Type)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("db:\n  driver: mongo\n"), 0o600))

		_, err := server.LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("should reject duplicate parent types", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("parent_types:\n  - name: question\n  - name: question\n"), 0o600))

		_, err := server.LoadConfig(path)

		assert.ErrorContains(t, err, "duplicate parent types")
	})
}
