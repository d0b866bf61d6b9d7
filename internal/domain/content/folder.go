package content

// Folder is an upload destination namespace for stored images.
type Folder string

const (
	FolderServices Folder = "services"
	FolderProjects Folder = "projects"
	FolderTeam     Folder = "team"
)

func Folders() []Folder {
	return []Folder{FolderServices, FolderProjects, FolderTeam}
}

func (f Folder) Valid() bool {
	switch f {
	case FolderServices, FolderProjects, FolderTeam:
		return true
	}
	return false
}

func ParseFolder(s string) (Folder, error) {
	f := Folder(s)
	if !f.Valid() {
		return "", ErrInvalidFolder
	}
	return f, nil
}
