package ops

import (
	"github.com/spf13/afero"
)

// Walk appends to out the path of every non-directory entry below root whose
// base name matches m. Entries are visited in the order the filesystem lists
// them and subdirectories are descended into before their later siblings.
//
// A root that does not exist or is not a directory yields nothing. The first
// error opening or listing a directory stops the walk and is returned as is;
// matches already appended to out are kept.
//
// Symlinks to directories are followed. There is no cycle detection.
func Walk(fsys afero.Fs, root string, m Matcher, out *[]string) error {
	if !isDir(fsys, root) {
		return nil
	}
	return walkDir(fsys, root, m, out)
}

func walkDir(fsys afero.Fs, dir string, m Matcher, out *[]string) error {
	names, err := readDirNames(fsys, dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		path := joinEntry(dir, name)
		if isDir(fsys, path) {
			if err := walkDir(fsys, path, m, out); err != nil {
				return err
			}
			continue
		}
		if m.MatchString(name) {
			*out = append(*out, path)
		}
	}

	return nil
}

// readDirNames lists dir without sorting
func readDirNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

// isDir follows symlinks; a dangling link is not a directory
func isDir(fsys afero.Fs, path string) bool {
	fi, err := fsys.Stat(path)
	return err == nil && fi.IsDir()
}
