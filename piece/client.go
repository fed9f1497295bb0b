package piece

import (
	"net/rpc"
)

type Client struct {
	client *rpc.Client
}

func (c *Client) Lookup(req LookupRequest) (LookupResponse, error) {
	var res LookupResponse
	if err := c.client.Call("Plugin.Lookup", req, &res); err != nil {
		return LookupResponse{}, err
	}

	return res, nil
}
