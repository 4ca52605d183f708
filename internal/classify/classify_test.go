package classify

import (
	"path/filepath"
	"testing"
	"time"
)

func TestCategoryTable(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"photo.jpg", "images"},
		{"photo.JPEG", "images"},
		{"clip.mkv", "videos"},
		{"song.flac", "audio"},
		{"notes.md", "documents"},
		{"report.pdf", "documents"},
		{"budget.xlsx", "spreadsheets"},
		{"deck.pptx", "presentations"},
		{"bundle.tar", "archives"},
		{"main.go", "code"},
		{"setup.exe", "executables"},
		{"weird.xyz123", "other"},
		{"README", "other"},
		{".gitignore", "other"},
	}
	for _, tc := range cases {
		if got := Category(tc.name); got != tc.want {
			t.Errorf("Category(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCategoryCoversWholeTable(t *testing.T) {
	for category, exts := range categoryExtensions {
		for _, ext := range exts {
			if got := Category("file" + ext); got != category {
				t.Errorf("Category(file%s) = %q, want %q", ext, got, category)
			}
		}
	}
}

func TestSourceBucketRules(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{filepath.Join("inbox", "WhatsApp Image 2024.jpg"), "whatsapp"},
		{filepath.Join("WhatsApp", "photo.jpg"), "whatsapp"},
		{filepath.Join("inbox", "Telegram Desktop.png"), "telegram"},
		{filepath.Join("inbox", "discord_export.zip"), "discord"},
		{filepath.Join("Slack Downloads", "doc.pdf"), "slack"},
		{filepath.Join("inbox", "Screenshot 2024-01-01.png"), "screenshots"},
		{filepath.Join("inbox", "Screen Shot at 9.00.png"), "screenshots"},
		{filepath.Join("inbox", "Snip_001.png"), "screenshots"},
		{filepath.Join("inbox", "IMG_2041.heic"), "camera_exports"},
		{filepath.Join("inbox", "DSC_0001.jpg"), "camera_exports"},
		{filepath.Join("inbox", "PXL_20240101.jpg"), "camera_exports"},
		{filepath.Join("inbox", "chrome-download.bin"), "browser_downloads"},
		{filepath.Join("inbox", "setup.part"), "browser_partial_downloads"},
		{filepath.Join("inbox", "big.crdownload"), "browser_partial_downloads"},
		{filepath.Join("inbox", "zoom_recording.mp4"), "meetings"},
		{filepath.Join("inbox", "weekly meeting notes.txt"), "meetings"},
		{filepath.Join("inbox", "ubuntu.torrent"), "torrent"},
		{filepath.Join("inbox", "invoice.pdf"), BucketUnknown},
	}
	for _, tc := range cases {
		if got := SourceBucket(tc.path); got != tc.want {
			t.Errorf("SourceBucket(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// A screenshot inside a WhatsApp directory belongs to whatsapp: earlier rules
// win, and the messenger rules precede the screenshot rule.
func TestSourceBucketFirstMatchWins(t *testing.T) {
	path := filepath.Join("backup", "WhatsApp", "Screenshot 2024.png")
	if got := SourceBucket(path); got != "whatsapp" {
		t.Fatalf("SourceBucket(%q) = %q, want whatsapp", path, got)
	}
}

func TestSourceRuleOrdering(t *testing.T) {
	wantOrder := []string{
		"whatsapp",
		"telegram",
		"discord",
		"slack",
		"screenshots",
		"camera_exports",
		"browser_downloads",
		"browser_partial_downloads",
		"meetings",
		"torrent",
	}
	if len(SourceRules) != len(wantOrder) {
		t.Fatalf("rule count = %d, want %d", len(SourceRules), len(wantOrder))
	}
	for i, rule := range SourceRules {
		if rule.Bucket != wantOrder[i] {
			t.Errorf("rule %d = %q, want %q", i, rule.Bucket, wantOrder[i])
		}
	}
}

func TestDateBucket(t *testing.T) {
	modified := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	if got := DateBucket(modified); got != "2024-03" {
		t.Fatalf("DateBucket = %q, want 2024-03", got)
	}
}
