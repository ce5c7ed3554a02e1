package types

// EntryKind distinguishes file leaves from directory containers in a
// repository listing.
type EntryKind int

const (
	File EntryKind = iota
	Directory
)

// RepoRef identifies a repository by owner and name. It is only ever
// produced by a successful URL parse.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// TreeEntry is one flat record from a recursive repository listing. Path is
// slash-separated and relative to the repository root.
type TreeEntry struct {
	Path string
	Kind EntryKind
}

// Issue carries the fields of a repository issue that the summarizer
// consumes. The JSON keys match the shape embedded in the issue-summary
// prompt.
type Issue struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Body   string   `json:"description"`
	State  string   `json:"state"`
	Labels []string `json:"labels"`
}
