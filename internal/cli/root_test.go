package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
	mock_storage "github.com/invaderrssofficial-source/invaders.final/internal/storage/mocks"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "invaders", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate", "seed", "init-admin"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestConfigFlagDefaultsToEnv(t *testing.T) {
	t.Setenv(configEnv, "/etc/invaders.yaml")

	flag := NewRootCommand().PersistentFlags().Lookup("config")

	require.NotNil(t, flag)
	assert.Equal(t, "/etc/invaders.yaml", flag.DefValue)
}

func TestServeTransportFlag(t *testing.T) {
	serve, _, err := NewRootCommand().Find([]string{"serve"})
	require.NoError(t, err)

	flag := serve.Flags().Lookup("transport")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func clearStoreEnv(t *testing.T) {
	for _, key := range []string{"STORE_URL", "SUPABASE_URL", "DATABASE_URL", "STORE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY"} {
		t.Setenv(key, "")
	}
}

func TestStoreCommands_MissingConfig(t *testing.T) {
	clearStoreEnv(t)
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600))

	for _, name := range []string{"serve", "migrate", "seed", "init-admin"} {
		t.Run(name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetArgs([]string{name, "--config", path})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.ExecuteContext(context.Background())

			assert.ErrorIs(t, err, config.ErrMissingStoreConfig)
		})
	}
}

func TestStoreCommands_BadConfigFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "failed to read config")
}

func TestInitAdmin(t *testing.T) {
	ctx := context.Background()
	auth := config.AuthConfig{AdminUsername: "admin", AdminPassword: "s3cret"}

	tests := []struct {
		name    string
		auth    config.AuthConfig
		prepare func(m *mock_storage.MockUserRepository)
		wantOut string
		wantErr string
	}{
		{
			name: "creates missing admin",
			auth: auth,
			prepare: func(m *mock_storage.MockUserRepository) {
				m.EXPECT().Exists(ctx, "admin").Return(false, nil)
				m.EXPECT().CreateUser(ctx, "admin", "s3cret").Return(nil)
			},
			wantOut: "Admin user created successfully.\n",
		},
		{
			name: "keeps existing admin",
			auth: auth,
			prepare: func(m *mock_storage.MockUserRepository) {
				m.EXPECT().Exists(ctx, "admin").Return(true, nil)
			},
			wantOut: "Admin user already exists.\n",
		},
		{
			name:    "missing credentials",
			auth:    config.AuthConfig{AdminUsername: "admin"},
			prepare: func(*mock_storage.MockUserRepository) {},
			wantErr: ErrMissingAdminCredentials.Error(),
		},
		{
			name: "lookup error",
			auth: auth,
			prepare: func(m *mock_storage.MockUserRepository) {
				m.EXPECT().Exists(ctx, "admin").Return(false, errors.New("relation \"users\" does not exist"))
			},
			wantErr: "failed to look up admin user: relation \"users\" does not exist",
		},
		{
			name: "create error",
			auth: auth,
			prepare: func(m *mock_storage.MockUserRepository) {
				m.EXPECT().Exists(ctx, "admin").Return(false, nil)
				m.EXPECT().CreateUser(ctx, "admin", "s3cret").Return(errors.New("duplicate key"))
			},
			wantErr: "failed to create admin user: duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mock_storage.NewMockUserRepository(gomock.NewController(t))
			tt.prepare(users)
			var out bytes.Buffer

			err := initAdmin(ctx, users, tt.auth, &out)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

type seederFunc func(ctx context.Context) (storage.SeedResult, error)

func (f seederFunc) SeedCatalog(ctx context.Context) (storage.SeedResult, error) { return f(ctx) }

func TestSeed(t *testing.T) {
	var out bytes.Buffer
	err := seed(context.Background(), seederFunc(func(context.Context) (storage.SeedResult, error) {
		return storage.SeedResult{Merch: 4, Heroes: 12, BankInfo: true}, nil
	}), &out)

	require.NoError(t, err)
	assert.Equal(t, "merch items inserted: 4\nheroes inserted: 12\nbank info written: true\n", out.String())

	err = seed(context.Background(), seederFunc(func(context.Context) (storage.SeedResult, error) {
		return storage.SeedResult{}, errors.New("failed to count heroes: timeout")
	}), &out)
	assert.EqualError(t, err, "failed to count heroes: timeout")
}
