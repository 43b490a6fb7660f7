package aztecfeed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/gorilla/websocket"
)

var ErrFeed = errors.New("aztecfeed: server error")

// Client speaks the feed protocol over one websocket connection. Requests are
// serialized; each one waits for its response.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("aztecfeed: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// Set publishes v and returns the submission reference reported by the server.
func (c *Client) Set(ctx context.Context, v aztecfield.Fr) (string, error) {
	res, err := c.roundTrip(ctx, Request{Action: ActionSet, Value: numberOf(v)})
	if err != nil {
		return "", err
	}
	return res.TxHash, nil
}

func (c *Client) Get(ctx context.Context) (aztecfield.Fr, error) {
	res, err := c.roundTrip(ctx, Request{Action: ActionGet})
	if err != nil {
		return aztecfield.Zero, err
	}
	return parseNumber(res.Value)
}

func (c *Client) roundTrip(ctx context.Context, req Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// the zero deadline clears any previous one
	deadline, _ := ctx.Deadline()
	_ = c.conn.SetWriteDeadline(deadline)
	_ = c.conn.SetReadDeadline(deadline)

	if err := c.conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("aztecfeed: write %s: %w", req.Action, err)
	}
	var res Response
	if err := c.conn.ReadJSON(&res); err != nil {
		return nil, fmt.Errorf("aztecfeed: read %s: %w", req.Action, err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrFeed, res.Error)
	}
	return &res, nil
}
