package piece

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// PluginName is the name registry plugins are dispensed under.
const PluginName = "registry"

var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "ACTIVEPIECES_PLUGIN",
	MagicCookieValue: "registry",
}

type LookupRequest struct {
	Name string
}

type LookupResponse struct {
	Piece Metadata
	Found bool
}

// Metadata describes a piece known to a registry. Versions holds the
// published versions in no particular order.
type Metadata struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

type Registry interface {
	Lookup(LookupRequest) (LookupResponse, error)
}

type Plugin struct {
	Impl Registry
}

func (p *Plugin) Server(*plugin.MuxBroker) (any, error) {
	return &Server{Impl: p.Impl}, nil
}

func (*Plugin) Client(b *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &Client{client: c}, nil
}
