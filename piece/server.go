package piece

type Server struct {
	Impl Registry
}

func (s *Server) Lookup(req LookupRequest, res *LookupResponse) error {
	r, err := s.Impl.Lookup(req)
	if err != nil {
		return err
	}

	*res = r
	return nil
}
