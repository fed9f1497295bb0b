package registry

import (
	"fmt"
	"os/exec"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/balwant1707/activepieces/piece"
)

// Dispense starts the registry plugin at path and returns a client for it
// along with a close function that kills the plugin process.
func Dispense(path string) (piece.Registry, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: piece.Handshake,
		Plugins: map[string]plugin.Plugin{
			piece.PluginName: &piece.Plugin{},
		},
		Cmd:    exec.Command(path),
		Logger: hclog.NewNullLogger(),
	})

	var proto plugin.ClientProtocol
	connect := func() error {
		var err error
		proto, err = client.Client()
		return err
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("connecting to registry plugin: %w", err)
	}

	raw, err := proto.Dispense(piece.PluginName)
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("dispensing registry plugin: %w", err)
	}

	reg, ok := raw.(piece.Registry)
	if !ok {
		client.Kill()
		return nil, nil, fmt.Errorf("invalid registry plugin: %T", raw)
	}

	return reg, client.Kill, nil
}
