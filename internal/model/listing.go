package model

// DirectoryListing holds the immediate children of a directory split into
// folders and files. Both lists hold final path components only and are
// sorted in byte order.
type DirectoryListing struct {
	Folders []string `json:"folders"`
	Files   []string `json:"files"`
}

// NewDirectoryListing returns an empty listing whose lists serialize as [].
func NewDirectoryListing() *DirectoryListing {
	return &DirectoryListing{
		Folders: make([]string, 0),
		Files:   make([]string, 0),
	}
}

// IsEmpty reports whether the listing has neither folders nor files
func (l *DirectoryListing) IsEmpty() bool {
	return len(l.Folders) == 0 && len(l.Files) == 0
}

// Len returns the total number of entries
func (l *DirectoryListing) Len() int {
	return len(l.Folders) + len(l.Files)
}
