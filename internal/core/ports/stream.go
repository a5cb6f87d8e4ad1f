package ports

import "io"

// StreamOpener opens the output streams descriptor files are written to.
//
//go:generate go run go.uber.org/mock/mockgen -source=stream.go -destination=mocks/mock_stream.go -package=mocks
type StreamOpener interface {
	// OpenForWrite returns a stream whose content replaces the file at path when closed.
	// The returned error carries the system error text of the failed open.
	OpenForWrite(path string) (io.WriteCloser, error)
}
