package classify

import (
	"path/filepath"
	"strings"
)

// BucketUnknown is assigned when no source rule matches.
const BucketUnknown = "manual_or_unknown"

// fileContext carries the lowercased pieces of a path that source rules
// inspect.
type fileContext struct {
	name   string // base filename
	parent string // directory portion of the path
	ext    string // extension including the dot
}

// SourceRule pairs a bucket label with the predicate that assigns it.
type SourceRule struct {
	Bucket string
	Match  func(fileContext) bool
}

// SourceRules is the ordered heuristic table for workflow inference.
// Rules are evaluated top to bottom and the first match wins, so reordering
// entries changes bucket assignment.
var SourceRules = []SourceRule{
	{Bucket: "whatsapp", Match: nameOrParentContains("whatsapp")},
	{Bucket: "telegram", Match: nameOrParentContains("telegram")},
	{Bucket: "discord", Match: nameOrParentContains("discord")},
	{Bucket: "slack", Match: nameOrParentContains("slack")},
	{Bucket: "screenshots", Match: func(c fileContext) bool {
		return strings.HasPrefix(c.name, "screenshot") ||
			strings.Contains(c.name, "screen shot") ||
			strings.HasPrefix(c.name, "snip")
	}},
	{Bucket: "camera_exports", Match: func(c fileContext) bool {
		return strings.HasPrefix(c.name, "img_") ||
			strings.HasPrefix(c.name, "dsc_") ||
			strings.HasPrefix(c.name, "pxl_")
	}},
	{Bucket: "browser_downloads", Match: func(c fileContext) bool {
		return strings.Contains(c.name, "chrome") ||
			strings.Contains(c.name, "edge") ||
			strings.Contains(c.name, "firefox")
	}},
	{Bucket: "browser_partial_downloads", Match: extIn(".crdownload", ".part")},
	{Bucket: "meetings", Match: func(c fileContext) bool {
		return strings.Contains(c.name, "zoom") ||
			strings.Contains(c.name, "meeting") ||
			strings.Contains(c.name, "teams")
	}},
	{Bucket: "torrent", Match: extIn(".torrent")},
}

// SourceBucket infers the workflow bucket for a file from its path and name.
func SourceBucket(path string) string {
	ctx := fileContext{
		name:   strings.ToLower(filepath.Base(path)),
		parent: strings.ToLower(filepath.Dir(path)),
		ext:    strings.ToLower(filepath.Ext(path)),
	}
	for _, rule := range SourceRules {
		if rule.Match(ctx) {
			return rule.Bucket
		}
	}
	return BucketUnknown
}

func nameOrParentContains(needle string) func(fileContext) bool {
	return func(c fileContext) bool {
		return strings.Contains(c.name, needle) || strings.Contains(c.parent, needle)
	}
}

func extIn(exts ...string) func(fileContext) bool {
	return func(c fileContext) bool {
		for _, ext := range exts {
			if c.ext == ext {
				return true
			}
		}
		return false
	}
}
