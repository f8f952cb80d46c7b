package cache

import (
	"errors"
	"net"
	"time"
)

// Client implements KV over a Unix socket, letting several processes
// share one bbolt-backed daemon (bbolt allows a single opener).
type Client struct {
	socketPath string
}

func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

var _ KV = (*Client)(nil)

func (c *Client) roundTrip(req Request) (Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, 500*time.Millisecond)
	if err != nil {
		return Response{}, err
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(&req); err != nil {
		return Response{}, err
	}
	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return Response{}, err
	}
	if !resp.OK {
		return Response{}, errors.New(resp.Error)
	}
	return resp, nil
}

func (c *Client) Get(key string) (string, bool, error) {
	resp, err := c.roundTrip(Request{Op: "get", Key: key})
	if err != nil {
		return "", false, err
	}
	return resp.Value, resp.Found, nil
}

func (c *Client) Set(key, value string) error {
	_, err := c.roundTrip(Request{Op: "set", Key: key, Value: value})
	return err
}

func (c *Client) Remove(key string) error {
	_, err := c.roundTrip(Request{Op: "remove", Key: key})
	return err
}

func (c *Client) Keys() ([]string, error) {
	resp, err := c.roundTrip(Request{Op: "keys"})
	if err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

func (c *Client) RemoveMany(keys []string) error {
	_, err := c.roundTrip(Request{Op: "remove_many", Keys: keys})
	return err
}
