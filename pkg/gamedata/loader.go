package gamedata

import (
	"fmt"
	"sort"
	"sync"
)

var (
	versionsMu sync.RWMutex
	versions   = map[string]func() *GameData{}
)

// Register makes a data set available under name. Version packages call it from init.
func Register(name string, factory func() *GameData) {
	versionsMu.Lock()
	defer versionsMu.Unlock()
	versions[name] = factory
}

// Load builds the data set registered under name.
func Load(name string) (*GameData, error) {
	versionsMu.RLock()
	f, ok := versions[name]
	versionsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown version: %s", name)
	}
	return f(), nil
}

// RegisteredVersions returns the registered version names in sorted order.
func RegisteredVersions() []string {
	versionsMu.RLock()
	defer versionsMu.RUnlock()
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
