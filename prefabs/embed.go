package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed schemas/*.json
var SchemasFS embed.FS

// Load returns a prefab's bytes, preferring an on-disk copy so edits show up
// without a rebuild.
func Load(name string) ([]byte, error) {
	for _, p := range diskCandidates(name) {
		if data, err := os.ReadFile(p); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(cleanPrefabPath(name))
}

func ModTime(name string) (time.Time, bool) {
	for _, p := range diskCandidates(name) {
		if info, err := os.Stat(p); err == nil {
			return info.ModTime(), true
		}
	}
	return time.Time{}, false
}

// DiskPath returns the on-disk file Load would read for name, if one exists.
func DiskPath(name string) (string, bool) {
	for _, p := range diskCandidates(name) {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskCandidates(name string) []string {
	if name == "" {
		return nil
	}
	out := []string{diskPrefabPath(cleanPrefabPath(name))}
	if filepath.IsAbs(name) || strings.ContainsRune(filepath.ToSlash(name), '/') {
		out = append(out, name)
	}
	return out
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
