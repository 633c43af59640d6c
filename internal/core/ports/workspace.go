package ports

// WorkspaceProvider is the content-addressed workspace cache: for a given
// Identity.UniqueID it hands back the single directory the engine must use,
// allocating one on first sight and recognizing it as a cache hit on every
// subsequent call with the same uniqueID (including across process
// restarts, for providers backed by durable storage).
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceProvider interface {
	// Workspace returns the directory assigned to uniqueID. hit is true iff
	// the provider had already assigned a directory to uniqueID (which
	// therefore may hold a usable results file); it is false the first time
	// uniqueID is seen, in which case the provider creates the directory and
	// its transformed/ subdirectory. Files already on disk there are not
	// removed.
	Workspace(uniqueID string) (path string, hit bool, err error)
}
