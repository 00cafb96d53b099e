package mock

import "net/http/httptest"

// HTTPTestDispatchServer runs a DispatchService behind an httptest server.
type HTTPTestDispatchServer struct {
	*DispatchService
	Server *httptest.Server
	URL    string
}

func NewHTTPTestServer(opts ...Option) (*HTTPTestDispatchServer, error) {
	service, err := NewDispatchService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestDispatchServer{DispatchService: service}
	server.Server = httptest.NewServer(service.Handler())
	server.URL = server.Server.URL
	return server, nil
}

func (s *HTTPTestDispatchServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
