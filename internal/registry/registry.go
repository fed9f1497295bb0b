package registry

import (
	"github.com/balwant1707/activepieces/piece"
)

// Static serves piece metadata from a fixed in-memory catalog.
type Static struct {
	pieces map[string]piece.Metadata
}

func NewStatic(pieces []piece.Metadata) *Static {
	byName := make(map[string]piece.Metadata, len(pieces))
	for _, p := range pieces {
		byName[p.Name] = p
	}

	return &Static{pieces: byName}
}

func (s *Static) Lookup(req piece.LookupRequest) (piece.LookupResponse, error) {
	meta, ok := s.pieces[req.Name]
	return piece.LookupResponse{Piece: meta, Found: ok}, nil
}
