// Package mongo is the MongoDB driver of package dbconn.
//
// Driver.Open builds a client from the connection string and dbconn.Options
// (timeouts, pool bounds, retryable reads and writes, address family) and
// verifies it with a ping before handing it to the manager. Server heartbeats
// are folded into connection-level events: the manager is told the connection
// is down once every known server fails its heartbeat and up again as soon as
// one answers.
//
// # Usage
//
//	mgr := dbconn.New(cfg, mongo.NewDriver(), dbconn.WithLogger(log))
//	h, err := mgr.Connect(ctx)
//	if err != nil {
//		return err
//	}
//	users := h.(*mongo.Client).Database().Collection("users")
//
// Describe never touches the network; mongodb+srv strings are reported by
// their SRV name and resolved only when the client connects.
//
// # Errors
//
// Open failures wrap ErrFailedToConnectToMongo together with the driver error,
// so dbconn.Classify still sees the underlying network cause.
package mongo
