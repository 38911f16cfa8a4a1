package storage

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const defaultExtension = ".jpg"

// objectKey builds <root>/<folder>/<uuid><ext>; the original filename only contributes its extension.
func objectKey(root, folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 6 {
		ext = defaultExtension
	}

	return path.Join(strings.Trim(root, "/"), strings.Trim(folder, "/"), uuid.NewString()+ext)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
