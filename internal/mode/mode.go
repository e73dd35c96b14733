// Package mode holds what mode controllers share: injected services and the
// messages they send to the root model.
package mode

import (
	"github.com/zjrosen/pagesmith/internal/cachemanager"
	"github.com/zjrosen/pagesmith/internal/config"
	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
)

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Session    *session.Session
	Config     *config.Config
	ConfigPath string
	Keys       keys.KeyMap
	Clipboard  shared.Clipboard
	Clock      shared.Clock
	IDs        shared.IDGenerator
	// Previews caches rendered block cards. Nil disables caching.
	Previews cachemanager.CacheManager[string, string]
	// TemplatePath is the user template file being edited, empty for a
	// built-in template.
	TemplatePath string
}

// ShowToastMsg asks the root model to show a toast.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}
