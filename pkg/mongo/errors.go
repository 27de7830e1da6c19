package mongo

import "errors"

var (
	ErrFailedToConnectToMongo  = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed       = errors.New("mongo healthcheck failed")
	ErrInvalidConnectionString = errors.New("invalid mongo connection string")
	ErrUnsupportedScheme       = errors.New("connection string scheme must be mongodb:// or mongodb+srv://")
)
