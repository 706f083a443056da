// Package accountsdk provides the request/response types of the accountd
// HTTP API plus a small client for talking to it. The server handlers and
// the end-to-end tests share these types so the wire contract lives in
// exactly one place.
package accountsdk
