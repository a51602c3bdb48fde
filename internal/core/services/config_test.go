package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timexy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/timexy/internal/core/domain"
)

func TestNewConfigService(t *testing.T) {
	service := NewConfigService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestConfigService_Get_ReturnsDefaults(t *testing.T) {
	service := NewConfigService(memory.NewConfigStore())

	cfg, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Equal(t, DefaultLanguage, service.GetLanguage())
}

func TestConfigService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("timexy.label", "TIME")
	_ = store.Set("timexy.kb_id_type", "timestamp")
	_ = store.Set("timexy.overwrite", true)
	_ = store.Set("timexy.language", "de")

	service := NewConfigService(store)

	cfg, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.Config{Label: "TIME", KBIDType: domain.KBIDTimestamp, Overwrite: true}, cfg)
	assert.Equal(t, "de", service.GetLanguage())
}

func TestConfigService_Get_InvalidKBIDType(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("timexy.kb_id_type", "iso8601")

	_, err := NewConfigService(store).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestConfigService_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantKey string
		want    any
		wantErr error
	}{
		{key: "label", value: "TIME", wantKey: "timexy.label", want: "TIME"},
		{key: "label", value: "", wantErr: domain.ErrInvalidConfiguration},
		{key: "kb_id_type", value: "timestamp", wantKey: "timexy.kb_id_type", want: "timestamp"},
		{key: "kb_id_type", value: "unix", wantErr: domain.ErrInvalidConfiguration},
		{key: "overwrite", value: "true", wantKey: "timexy.overwrite", want: true},
		{key: "overwrite", value: "maybe", wantErr: domain.ErrInvalidConfiguration},
		{key: "language", value: "fr", wantKey: "timexy.language", want: "fr"},
		{key: "language", value: "xx", wantErr: domain.ErrUnsupportedLanguage},
		{key: "colour", value: "blue", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewConfigService(store)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				for _, key := range []string{keyLabel, keyKBIDType, keyOverwrite, keyLanguage} {
					_, ok := store.Get(key)
					assert.False(t, ok, key)
				}
				return
			}
			require.NoError(t, err)
			got, ok := store.Get(tt.wantKey)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigService_SetThenGet(t *testing.T) {
	service := NewConfigService(memory.NewConfigStore())

	require.NoError(t, service.Set("overwrite", "1"))
	require.NoError(t, service.Set("kb_id_type", "timestamp"))
	require.NoError(t, service.Save())

	cfg, err := service.Get()
	require.NoError(t, err)
	assert.True(t, cfg.Overwrite)
	assert.Equal(t, domain.KBIDTimestamp, cfg.KBIDType)
	assert.Equal(t, domain.DefaultLabel, cfg.Label)
}
