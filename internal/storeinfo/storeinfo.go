package storeinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Info is the static shop catalog loaded once at startup. It is reference
// data for the generative prompt only; nothing else reads it.
type Info struct {
	Menu []MenuItem `json:"menu"`
}

type MenuItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

const noMenuText = "メニュー情報がありません。"

// Load reads the catalog file. A missing file, unreadable file or malformed
// JSON degrades to an empty catalog rather than failing startup.
func Load(path string, logger *zap.Logger) Info {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("store info file not readable, using empty catalog",
			zap.String("path", path),
			zap.Error(err),
		)
		return Info{}
	}

	var info Info
	if err := json.Unmarshal(raw, &info); err != nil {
		logger.Warn("store info file not parseable, using empty catalog",
			zap.String("path", path),
			zap.Error(err),
		)
		return Info{}
	}

	return info
}

// MenuDescriptions renders the menu as "name (price円)" pairs for prompt
// interpolation.
func (i Info) MenuDescriptions() string {
	if len(i.Menu) == 0 {
		return noMenuText
	}

	parts := make([]string, 0, len(i.Menu))
	for _, item := range i.Menu {
		parts = append(parts, fmt.Sprintf("%s (%d円)", item.Name, item.Price))
	}
	return strings.Join(parts, ", ")
}
