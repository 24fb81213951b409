package graphindex

import (
	"context"
	"strings"
)

// storageCall records one query execution against the fake storage.
type storageCall struct {
	Query  string
	Params map[string]any
}

// fakeStorage is an in-test GraphStorage that records every query and
// answers through scriptable respond functions. The default behavior
// returns a single row, which satisfies the writers' precondition checks.
type fakeStorage struct {
	Writes []storageCall
	Reads  []storageCall

	// RespondWrite and RespondRead override the default single-row answer
	// when set.
	RespondWrite func(query string, params map[string]any) ([]map[string]any, error)
	RespondRead  func(query string, params map[string]any) ([]map[string]any, error)
}

var _ GraphStorage = (*fakeStorage)(nil)

func (f *fakeStorage) RunWrite(_ context.Context, query string, params map[string]any) ([]map[string]any, error) {
	f.Writes = append(f.Writes, storageCall{Query: query, Params: params})

	if f.RespondWrite != nil {
		return f.RespondWrite(query, params)
	}
	return []map[string]any{{}}, nil
}

func (f *fakeStorage) RunRead(_ context.Context, query string, params map[string]any) ([]map[string]any, error) {
	f.Reads = append(f.Reads, storageCall{Query: query, Params: params})

	if f.RespondRead != nil {
		return f.RespondRead(query, params)
	}
	return []map[string]any{{}}, nil
}

// writesMatching returns the recorded write calls whose query contains the
// given fragment.
func (f *fakeStorage) writesMatching(fragment string) []storageCall {
	matches := make([]storageCall, 0)
	for _, call := range f.Writes {
		if strings.Contains(call.Query, fragment) {
			matches = append(matches, call)
		}
	}
	return matches
}
