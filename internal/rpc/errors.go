package rpc

import (
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

// rpcError turns manager errors into JSON-RPC errors with HTTP-like codes.
func rpcError(err error) error {
	var verr *newsportal.ValidationError

	switch {
	case errors.As(err, &verr):
		return zenrpc.NewStringError(400, verr.Error())
	case errors.Is(err, newsportal.ErrTooManyItems), errors.Is(err, newsportal.ErrDuplicateItem):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(404, "not found")
	case errors.Is(err, newsportal.ErrVersionConflict):
		return zenrpc.NewStringError(409, err.Error())
	default:
		return err
	}
}
