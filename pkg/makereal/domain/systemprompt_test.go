package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
)

func TestSystemPromptFromConfig(t *testing.T) {
	systemPrompt, err := domain.SystemPromptFromConfig(common.NewConfig(nil))
	require.NoError(t, err)
	assert.Empty(t, systemPrompt)

	systemPrompt, err = domain.SystemPromptFromConfig(common.NewConfig(map[string]any{domain.ConfigKeyUseSystemPrompt: true}))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, systemPrompt)

	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("Only reply with HTML.\r\n\r\n"), 0644))
	systemPrompt, err = domain.SystemPromptFromConfig(common.NewConfig(map[string]any{domain.ConfigKeySystemPromptPath: path}))
	require.NoError(t, err)
	assert.Equal(t, "Only reply with HTML.", systemPrompt)

	_, err = domain.SystemPromptFromConfig(common.NewConfig(map[string]any{domain.ConfigKeySystemPromptPath: path + ".missing"}))
	assert.Error(t, err)
}
