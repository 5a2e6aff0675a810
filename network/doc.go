// Package network exposes a running game to remote hosts over websocket.
//
// # Core Components
//
// Server: an http.Handler serving the websocket endpoint (/ws) and a
// read-only JSON view of the game (/state).
//
// WsMessage: the envelope exchanged on the websocket, a type tag and a JSON
// payload.
//
// # Protocol
//
// On connection the server sends a "state" message with the current view.
// The client sends "action" messages (a spider.Action: move, select or deal);
// every applied action is followed by a "state" message to every connected
// client. Actions that are not applied are answered with an "error" message
// to the sender only. A "new" message restarts the game with the configured
// difficulty and is followed by a "state" message to every client.
//
// Hit-testing of pointer events stays on the client: the server only deals
// in tableau positions.
package network
