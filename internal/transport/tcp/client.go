package tcp

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

const (
	greetingSize = 1024
	dialTimeout  = 10 * time.Second
)

type Client struct {
	logger *slog.Logger
	conn   net.Conn
	reader *bufio.Reader
}

// Dial - connects to the game server.
func Dial(ctx context.Context, logger *slog.Logger, addr string) (*Client, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return New(logger, conn), nil
}

func New(logger *slog.Logger, conn net.Conn) *Client {
	return &Client{
		logger: logger.With("component", "tcp"),
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

// Handshake - discards the greeting the server sends right after the connection opens.
func (that *Client) Handshake(ctx context.Context) error {
	stop := that.watch(ctx)
	defer stop()

	greeting := make([]byte, greetingSize)
	n, err := that.reader.Read(greeting)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to read greeting: %w", err)
	}

	that.logger.Debug("greeting received", "bytes", n)

	return nil
}

// ReadState - blocks until the next state message arrives.
func (that *Client) ReadState(ctx context.Context) (entity.Snapshot, error) {
	stop := that.watch(ctx)
	defer stop()

	first, err := that.readLine(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}

	lines := []string{first}
	if strings.TrimSpace(first) != fmt.Sprint(int(entity.GameOver)) {
		for len(lines) < messageLines {
			line, err := that.readLine(ctx)
			if err != nil {
				return entity.Snapshot{}, err
			}
			lines = append(lines, line)
		}
	}

	snapshot, err := DecodeSnapshot(lines)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to decode state: %w", err)
	}

	return snapshot, nil
}

func (that *Client) SendMove(ctx context.Context, move entity.Move) error {
	if deadline, ok := ctx.Deadline(); ok {
		if err := that.conn.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	if _, err := that.conn.Write(EncodeMove(move)); err != nil {
		return fmt.Errorf("failed to send move: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	return that.conn.Close()
}

func (that *Client) readLine(ctx context.Context) (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("failed to read message: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// watch - unblocks pending reads once ctx is done.
func (that *Client) watch(ctx context.Context) func() bool {
	return context.AfterFunc(ctx, func() {
		_ = that.conn.SetReadDeadline(time.Now())
	})
}
