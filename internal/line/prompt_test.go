package line

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fujiya-taiken/line-ai-bridge/internal/storeinfo"
)

func TestBuildSystemPrompt_InterpolatesMenu(t *testing.T) {
	info := storeinfo.Info{Menu: []storeinfo.MenuItem{{Name: "ほうとう体験", Price: 3500}}}

	prompt := BuildSystemPrompt(info)
	require.Contains(t, prompt, "富士家")
	require.Contains(t, prompt, "現在のメニュー: ほうとう体験 (3500円)")
}

func TestBuildSystemPrompt_EmptyCatalog(t *testing.T) {
	prompt := BuildSystemPrompt(storeinfo.Info{})
	require.Contains(t, prompt, "メニュー情報がありません。")
}
