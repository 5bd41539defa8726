package model

import (
	"encoding/json"
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		a, b     string
		expected string
	}{
		{"holiday_01.jpg", "holiday_02.jpg", "holiday_0"},
		{"abc", "abd", "ab"},
		{"same", "same", "same"},
		{"", "anything", ""},
		{"x", "y", ""},
		{"short", "shorter", "short"},
		{"Фильм а.mp4", "Фильм б.mp4", "Фильм "},
		{"ä", "ö", ""},
		{"a\xffb", "a\xfeb", "a"},
	}

	for _, test := range tests {
		result := LongestCommonPrefix(test.a, test.b)
		if !utf8.ValidString(result) && utf8.ValidString(test.a) {
			t.Errorf("LongestCommonPrefix(%q, %q) = %q, split a character", test.a, test.b, result)
		}
		if result != test.expected {
			t.Errorf("LongestCommonPrefix(%q, %q) = %q, expected %q", test.a, test.b, result, test.expected)
		}
	}
}

func TestGroupFilesByPrefix(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected []FileGroup
	}{
		{
			name:     "empty",
			files:    nil,
			expected: []FileGroup{},
		},
		{
			name:  "numbered series collapses into one group",
			files: []string{"clip_02.mp4", "clip_01.mp4", "clip_10.mp4"},
			expected: []FileGroup{
				{Prefix: "clip", Files: []string{"clip_01.mp4", "clip_02.mp4", "clip_10.mp4"}},
			},
		},
		{
			name:  "short shared prefix stays apart",
			files: []string{"ab1.txt", "ab2.txt"},
			expected: []FileGroup{
				{Prefix: "ab1.txt", Files: []string{"ab1.txt"}},
				{Prefix: "ab2.txt", Files: []string{"ab2.txt"}},
			},
		},
		{
			name:  "mixed groups and singles",
			files: []string{"b.txt", "report-2024.pdf", "report-2025.pdf", "a.txt"},
			expected: []FileGroup{
				{Prefix: "a.txt", Files: []string{"a.txt"}},
				{Prefix: "b.txt", Files: []string{"b.txt"}},
				{Prefix: "report", Files: []string{"report-2024.pdf", "report-2025.pdf"}},
			},
		},
		{
			name:  "prefix trimmed to nothing",
			files: []string{"2024-01.jpg", "2024-02.jpg"},
			expected: []FileGroup{
				{Prefix: "", Files: []string{"2024-01.jpg", "2024-02.jpg"}},
			},
		},
		{
			name:  "non-ASCII names group on whole characters",
			files: []string{"Фильм б.mp4", "Фильм а.mp4"},
			expected: []FileGroup{
				{Prefix: "Фильм ", Files: []string{"Фильм а.mp4", "Фильм б.mp4"}},
			},
		},
		{
			name:  "minimum counts characters not bytes",
			files: []string{"Фи1.mp4", "Фи2.mp4"},
			expected: []FileGroup{
				{Prefix: "Фи1.mp4", Files: []string{"Фи1.mp4"}},
				{Prefix: "Фи2.mp4", Files: []string{"Фи2.mp4"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := GroupFilesByPrefix(test.files, DefaultMinGroupPrefix)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("GroupFilesByPrefix(%v) = %+v, expected %+v", test.files, result, test.expected)
			}
			for _, group := range result {
				if !utf8.ValidString(group.DisplayName()) {
					t.Errorf("display name %q is not valid UTF-8", group.DisplayName())
				}
			}
		})
	}
}

func TestGroupFilesByPrefix_DoesNotModifyInput(t *testing.T) {
	files := []string{"zeta.txt", "alpha.txt"}
	GroupFilesByPrefix(files, DefaultMinGroupPrefix)
	if files[0] != "zeta.txt" || files[1] != "alpha.txt" {
		t.Errorf("input slice was reordered: %v", files)
	}
}

func TestGroupFilesByPrefix_CustomMinPrefix(t *testing.T) {
	groups := GroupFilesByPrefix([]string{"ab1.txt", "ab2.txt"}, 2)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group with min prefix 2, got %d: %+v", len(groups), groups)
	}
	if groups[0].Prefix != "ab" {
		t.Errorf("expected prefix 'ab', got %q", groups[0].Prefix)
	}

	// non-positive falls back to the default
	groups = GroupFilesByPrefix([]string{"ab1.txt", "ab2.txt"}, 0)
	if len(groups) != 2 {
		t.Errorf("expected 2 groups with default min prefix, got %d", len(groups))
	}
}

func TestFileGroup_DisplayName(t *testing.T) {
	tests := []struct {
		group    FileGroup
		expected string
	}{
		{FileGroup{Prefix: "a", Files: []string{"a.txt"}}, "a.txt"},
		{FileGroup{Prefix: "clip", Files: []string{"clip_1.mp4", "clip_2.mp4"}}, "clip"},
		{FileGroup{Prefix: "", Files: []string{"1.jpg", "2.jpg"}}, "1.jpg"},
		{FileGroup{Prefix: "none"}, "none"},
	}

	for _, test := range tests {
		if result := test.group.DisplayName(); result != test.expected {
			t.Errorf("DisplayName() for %+v = %q, expected %q", test.group, result, test.expected)
		}
	}
}

func TestDirectoryListing_JSON(t *testing.T) {
	listing := NewDirectoryListing()
	if !listing.IsEmpty() {
		t.Error("new listing should be empty")
	}

	data, err := json.Marshal(listing)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"folders":[],"files":[]}` {
		t.Errorf("unexpected JSON for empty listing: %s", data)
	}

	listing.Folders = append(listing.Folders, "A")
	listing.Files = append(listing.Files, "a.txt", "b.txt")
	if listing.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", listing.Len())
	}
}
