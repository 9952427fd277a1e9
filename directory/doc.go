// Package directory is a client for a remote identity directory server.
//
// A Client is created by Open, which performs the application-level trust
// handshake before returning; every principal operation runs against that
// established trust, so an unestablished client is not representable. The
// client distinguishes three kinds of outcome on every call: a confirmed
// positive, a confirmed negative (the server said no), and an unknown
// caused by a transport fault. Transport faults on principal operations
// never surface as errors; they degrade to the operation's sentinel result
// and are reported through the injected logger.
package directory
