package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// CategoryOther is assigned to files with no or unrecognized extensions.
const CategoryOther = "other"

// categoryExtensions maps each category to the extensions it covers.
// Extensions are lowercase and unique across categories.
var categoryExtensions = map[string][]string{
	"images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".heic"},
	"videos":        {".mp4", ".mov", ".avi", ".mkv", ".webm", ".wmv"},
	"audio":         {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
	"documents":     {".pdf", ".txt", ".rtf", ".md"},
	"spreadsheets":  {".csv", ".xls", ".xlsx", ".ods"},
	"presentations": {".ppt", ".pptx", ".key", ".odp"},
	"archives":      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
	"code": {
		".py", ".js", ".ts", ".jsx", ".tsx", ".html", ".css", ".java",
		".c", ".cpp", ".go", ".rs", ".php", ".json", ".yaml", ".yml", ".sql",
	},
	"executables": {".exe", ".msi", ".bat", ".cmd", ".ps1"},
}

var extensionCategory = func() map[string]string {
	lookup := make(map[string]string)
	for category, exts := range categoryExtensions {
		for _, ext := range exts {
			lookup[ext] = category
		}
	}
	return lookup
}()

// Category maps a filename to its semantic category by extension.
// Matching is case-insensitive; unknown or missing extensions yield
// CategoryOther.
func Category(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if category, ok := extensionCategory[ext]; ok {
		return category
	}
	return CategoryOther
}

// Categories returns all known category labels, sorted, including
// CategoryOther.
func Categories() []string {
	names := make([]string, 0, len(categoryExtensions)+1)
	for category := range categoryExtensions {
		names = append(names, category)
	}
	names = append(names, CategoryOther)
	sort.Strings(names)
	return names
}
