package dump

import (
	"path"

	"github.com/disiqueira/gotree/v3"
)

// fileTree builds a rendered directory tree from slash-separated relative
// paths, creating intermediate directory nodes on demand.
type fileTree struct {
	root gotree.Tree
	dirs map[string]gotree.Tree
}

func newFileTree(rootLabel string) fileTree {
	return fileTree{root: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t fileTree) dir(dirPath string) gotree.Tree {
	if dirPath == "." || dirPath == "/" {
		return t.root
	}
	node := t.dirs[dirPath]
	if node == nil {
		parent := t.dir(path.Dir(dirPath))
		node = parent.Add(path.Base(dirPath) + "/")
		t.dirs[dirPath] = node
	}
	return node
}

func (t fileTree) insert(filePath string) {
	t.dir(path.Dir(filePath)).Add(path.Base(filePath))
}

// GenerateTree renders the collected files as an ASCII tree rooted at the
// working directory. Duplicate paths appear once.
func GenerateTree(contents []FileContent, rootLabel string) string {
	tree := newFileTree(rootLabel)
	seen := make(map[string]bool, len(contents))

	for _, content := range contents {
		if seen[content.Path] {
			continue
		}
		seen[content.Path] = true
		tree.insert(content.Path)
	}

	return tree.root.Print()
}
