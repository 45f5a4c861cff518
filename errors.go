package vtkernel

import "errors"

// ErrDisconnected is returned by Session.WriteInput and Session.Resize
// once the underlying shell has exited and its PTY channel has closed.
var ErrDisconnected = errors.New("vtkernel: shell disconnected")
