package entities

// RemoteFile is the state of a path at a given ref. An absent file is a valid
// value with Exists set to false and no SHA.
type RemoteFile struct {
	Path    string
	Exists  bool
	Content string
	SHA     string
}

// AbsentFile returns the absent variant for the given path.
func AbsentFile(path string) RemoteFile {
	return RemoteFile{Path: path}
}
