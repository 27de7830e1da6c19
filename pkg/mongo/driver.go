package mongo

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

const (
	schemeMongoDB    = "mongodb://"
	schemeMongoDBSRV = "mongodb+srv://"
)

// Supports reports whether uri is a MongoDB connection string.
func Supports(uri string) bool {
	return strings.HasPrefix(uri, schemeMongoDB) || strings.HasPrefix(uri, schemeMongoDBSRV)
}

// Driver opens MongoDB clients for a dbconn.Manager.
type Driver struct{}

// NewDriver returns the MongoDB driver.
func NewDriver() *Driver { return &Driver{} }

// Describe parses uri without any network access. SRV strings are not
// resolved: the SRV name is reported as the single host.
func (d *Driver) Describe(uri string) (dbconn.Target, error) {
	switch {
	case strings.HasPrefix(uri, schemeMongoDBSRV):
		u, err := url.Parse(uri)
		if err != nil {
			return dbconn.Target{}, errors.Join(ErrInvalidConnectionString, err)
		}
		if u.Hostname() == "" || u.Port() != "" || strings.Contains(u.Host, ",") {
			return dbconn.Target{}, errors.Join(ErrInvalidConnectionString,
				errors.New("mongodb+srv requires a single host name without port"))
		}
		return dbconn.Target{Hosts: []string{u.Hostname()}, Database: strings.TrimPrefix(u.Path, "/")}, nil
	case strings.HasPrefix(uri, schemeMongoDB):
		cs, err := connstring.ParseAndValidate(uri)
		if err != nil {
			return dbconn.Target{}, errors.Join(ErrInvalidConnectionString, err)
		}
		return dbconn.Target{Hosts: cs.Hosts, Database: cs.Database}, nil
	default:
		return dbconn.Target{}, ErrUnsupportedScheme
	}
}

// Open connects a client and verifies it with a ping. Server heartbeats are
// translated into dbconn events delivered to notify.
func (d *Driver) Open(ctx context.Context, uri string, opts dbconn.Options, notify func(dbconn.Event)) (dbconn.Handle, error) {
	target, err := d.Describe(uri)
	if err != nil {
		return nil, err
	}

	tracker := newHeartbeatTracker(notify)
	co := options.Client().
		ApplyURI(uri).
		SetAppName(opts.AppName).
		SetServerSelectionTimeout(opts.ServerSelectionTimeout).
		SetConnectTimeout(opts.ConnectTimeout).
		SetHeartbeatInterval(opts.HeartbeatInterval).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetMinPoolSize(opts.MinPoolSize).
		SetRetryWrites(opts.RetryWrites).
		SetRetryReads(opts.RetryReads).
		SetDialer(newFamilyDialer(opts)).
		SetServerMonitor(tracker.serverMonitor())
	if opts.SocketTimeout > 0 {
		co.SetTimeout(opts.SocketTimeout)
	}

	client, err := mongo.Connect(co)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	return &Client{client: client, database: target.Database}, nil
}

// Client is the dbconn.Handle of a MongoDB connection.
type Client struct {
	client   *mongo.Client
	database string
}

// Ping runs the admin ping command.
func (c *Client) Ping(ctx context.Context) error {
	return Healthcheck(c.client)(ctx)
}

// Close disconnects the client and drains its pool.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Client returns the underlying driver client.
func (c *Client) Client() *mongo.Client { return c.client }

// Database returns the database named in the connection string, or "test"
// when the string names none.
func (c *Client) Database() *mongo.Database {
	name := c.database
	if name == "" {
		name = "test"
	}
	return c.client.Database(name)
}

// familyDialer pins TCP dials to the configured address family.
type familyDialer struct {
	network string
	dialer  *net.Dialer
}

func newFamilyDialer(opts dbconn.Options) *familyDialer {
	return &familyDialer{
		network: opts.Network(),
		dialer:  &net.Dialer{Timeout: opts.ConnectTimeout},
	}
}

func (f *familyDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if network == "tcp" {
		network = f.network
	}
	return f.dialer.DialContext(ctx, network, address)
}
