// Package locales embeds the message catalogues and looks up translated
// strings by key.
package locales

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalogue exists for the requested one
const DefaultLanguage = "en_GB"

//go:embed */LC_MESSAGES/default.po
var catalogues embed.FS

// poGet is called through a variable so vet does not treat the lookup as a
// printf-style call with a non-constant format string
var poGet = (*gotext.Po).Get

var (
	mu      sync.RWMutex
	current = load(DefaultLanguage)
)

func load(lang string) *gotext.Po {
	data, err := catalogues.ReadFile(path.Join(lang, "LC_MESSAGES", "default.po"))
	if err != nil {
		return nil
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// SetLanguage switches the catalogue. It reports false, keeping the current
// catalogue, when lang has none.
func SetLanguage(lang string) bool {
	po := load(lang)
	if po == nil {
		return false
	}
	mu.Lock()
	current = po
	mu.Unlock()
	return true
}

// Get returns the translation for key. Unknown keys come back unchanged.
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	if po == nil {
		return key
	}
	return poGet(po, key)
}

// Getf formats the translation for key with vars
func Getf(key string, vars ...any) string {
	return fmt.Sprintf(Get(key), vars...)
}
